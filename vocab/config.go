package vocab

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags names the vocabulary flags.
type Flags struct {
	Path string
}

// NewConfig returns a [Config] using these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds vocabulary flag values.
//
// Create instances with [NewConfig], register flags with
// [Config.RegisterFlags], and resolve the vocabulary with [Config.Load].
type Config struct {
	Flags Flags
	Path  string
}

// NewConfig returns a [Config] registering --vocabulary.
func NewConfig() *Config {
	return Flags{Path: "vocabulary"}.NewConfig()
}

// RegisterFlags adds the vocabulary flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Path, c.Flags.Path, "",
		"YAML vocabulary file (default: built-in tags)")
}

// RegisterCompletions completes the vocabulary flag with YAML files.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Path,
		cobra.FixedCompletions([]string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Path, err)
	}

	return nil
}

// Load returns the vocabulary at the configured path, or [Default] when no
// path is set.
func (c *Config) Load() (*Vocabulary, error) {
	if c.Path == "" {
		return Default(), nil
	}

	return Load(c.Path)
}
