package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// ErrUnknownColorMode indicates an unrecognized --color value.
var ErrUnknownColorMode = errors.New("unknown color mode")

// ColorMode selects when escape sequences are written.
type ColorMode string

const (
	// ColorAuto writes color when the output is a terminal that supports it.
	ColorAuto ColorMode = "auto"
	// ColorAlways always writes color.
	ColorAlways ColorMode = "always"
	// ColorNever strips all escape sequences.
	ColorNever ColorMode = "never"
)

var allColorModes = []ColorMode{ColorAuto, ColorAlways, ColorNever}

// ParseColorMode returns the [ColorMode] named by s, case-insensitively.
// The empty string is [ColorAuto].
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
}

// Flags names the render flags.
type Flags struct {
	Color  string
	Expand string
}

// NewConfig returns a [Config] using these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds render flag values.
//
// Create instances with [NewConfig] and register flags with
// [Config.RegisterFlags].
type Config struct {
	Flags  Flags
	Color  string
	Expand bool
}

// NewConfig returns a [Config] registering --color and --expand.
func NewConfig() *Config {
	return Flags{Color: "color", Expand: "expand"}.NewConfig()
}

// RegisterFlags adds the render flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	modes := make([]string, 0, len(allColorModes))
	for _, m := range allColorModes {
		modes = append(modes, string(m))
	}

	flags.StringVar(&c.Color, c.Flags.Color, string(ColorAuto),
		"when to use color: "+strings.Join(modes, ", "))
	flags.BoolVar(&c.Expand, c.Flags.Expand, false,
		"show folded markup instead of placeholders")
}

// RegisterCompletions registers shell completions for the render flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	modes := make([]string, 0, len(allColorModes))
	for _, m := range allColorModes {
		modes = append(modes, string(m))
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.Color,
		cobra.FixedCompletions(modes, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Color, err)
	}

	return nil
}

// Writer wraps w so that rendered output suits the color mode: all escape
// sequences are stripped for [ColorNever] and for [ColorAuto] when w is not
// a terminal, and colors are reduced to what the terminal supports
// otherwise.
func (c *Config) Writer(w io.Writer) (*colorprofile.Writer, error) {
	mode, err := ParseColorMode(c.Color)
	if err != nil {
		return nil, err
	}

	profile := colorprofile.NoTTY

	switch mode {
	case ColorAlways:
		profile = colorprofile.TrueColor
	case ColorAuto:
		if isTerminal(w) {
			profile = colorprofile.Detect(w, os.Environ())
		}
	case ColorNever:
	}

	return &colorprofile.Writer{Forward: w, Profile: profile}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
