package profile

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultMemProfileRate matches the runtime's default sampling rate.
const DefaultMemProfileRate = 512 * 1024

// Flags names the profile flags: one flag per [Kind] made of Prefix and
// the kind, plus Rate for the memory profile rate.
type Flags struct {
	Prefix string
	Rate   string
}

// NewConfig returns a [Config] using these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags:          f,
		Paths:          make(map[Kind]string),
		MemProfileRate: DefaultMemProfileRate,
	}
}

func (f Flags) name(k Kind) string {
	return f.Prefix + string(k)
}

// Config holds the profile output paths. A kind without a path is not
// written.
//
// Create instances with [NewConfig] and register flags with
// [Config.RegisterFlags].
type Config struct {
	Paths          map[Kind]string
	Flags          Flags
	MemProfileRate int
}

// NewConfig returns a [Config] registering --profile-<kind> and
// --profile-mem-rate.
func NewConfig() *Config {
	return Flags{Prefix: "profile-", Rate: "profile-mem-rate"}.NewConfig()
}

// RegisterFlags adds the profile flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	for _, k := range AllKinds() {
		flags.Var(&pathValue{paths: c.Paths, kind: k}, c.Flags.name(k),
			fmt.Sprintf("write the %s profile to `FILE`", k))
	}

	flags.IntVar(&c.MemProfileRate, c.Flags.Rate, DefaultMemProfileRate,
		"bytes allocated per memory profile sample")
}

// RegisterCompletions registers shell completions for the profile flags on
// cmd. Path flags complete files; the rate flag completes nothing.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Rate, cobra.NoFileCompletions)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Rate, err)
	}

	return nil
}

// NewProfiler returns a [Profiler] for a copy of c.
func (c *Config) NewProfiler() *Profiler {
	paths := make(map[Kind]string, len(c.Paths))
	for k, p := range c.Paths {
		if p != "" {
			paths[k] = p
		}
	}

	return &Profiler{paths: paths, memRate: c.MemProfileRate}
}

// pathValue binds one entry of [Config.Paths] to a flag.
type pathValue struct {
	paths map[Kind]string
	kind  Kind
}

func (v *pathValue) String() string {
	if v.paths == nil {
		return ""
	}

	return v.paths[v.kind]
}

func (v *pathValue) Set(s string) error {
	v.paths[v.kind] = strings.TrimSpace(s)

	return nil
}

func (v *pathValue) Type() string {
	return "string"
}
