package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set via ldflags, for example:
//
//	-X go.jacobcolvin.com/jdcr/version.Version=v1.2.3
var (
	Version   string
	Branch    string
	BuildUser string
	BuildDate string
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"             yaml:"version"`
	Revision  string `json:"revision"            yaml:"revision"`
	Branch    string `json:"branch,omitempty"    yaml:"branch,omitempty"`
	BuildUser string `json:"buildUser,omitempty" yaml:"buildUser,omitempty"`
	BuildDate string `json:"buildDate,omitempty" yaml:"buildDate,omitempty"`
	GoVersion string `json:"goVersion"           yaml:"goVersion"`
	Platform  string `json:"platform"            yaml:"platform"`
}

// Get returns the [Info] of the running binary. Without ldflags, the
// version falls back to the main module version from the build info.
func Get() Info {
	info := Info{
		Version:   Version,
		Revision:  "unknown",
		Branch:    Branch,
		BuildUser: BuildUser,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "" {
		info.Version = bi.Main.Version
	}

	info.Revision = revision(bi.Settings)

	return info
}

// String formats i as a single line.
func (i Info) String() string {
	var sb strings.Builder

	v := i.Version
	if v == "" {
		v = "(devel)"
	}

	fmt.Fprintf(&sb, "jdcr %s (revision %s, %s, %s)", v, i.Revision, i.GoVersion, i.Platform)

	if i.BuildDate != "" {
		fmt.Fprintf(&sb, " built %s", i.BuildDate)
		if i.BuildUser != "" {
			fmt.Fprintf(&sb, " by %s", i.BuildUser)
		}
	}

	return sb.String()
}

func revision(settings []debug.BuildSetting) string {
	rev := "unknown"
	dirty := false

	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if dirty {
		return rev + "-dirty"
	}

	return rev
}
