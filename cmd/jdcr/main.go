// Command jdcr improves the readability of Javadoc comments in a terminal.
//
// It finds the doc comments of a Java source file, styles the values of
// HTML markup such as <b> and <code>, and folds the markup itself, entity
// references and inline tag delimiters into short placeholders.
//
// # Usage
//
//	jdcr highlight [--output text|json|yaml] <file.java|->
//	jdcr fold      [--output text|json|yaml] <file.java|->
//	jdcr render    [--color auto|always|never] [--expand] <file.java|->
//	jdcr view      <file.java>
//	jdcr schema
//	jdcr vocabulary
//	jdcr version
//
// # Global Flags
//
//	--vocabulary FILE   YAML vocabulary replacing the built-in tags
//	--log-level LEVEL   error, warn, info or debug
//	--log-format FMT    json, logfmt or text
//	--profile-KIND FILE write a cpu, heap, allocs, goroutine, block or mutex profile
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jdcr/engine"
	"go.jacobcolvin.com/jdcr/log"
	"go.jacobcolvin.com/jdcr/profile"
	"go.jacobcolvin.com/jdcr/vocab"
)

// Sentinel errors returned by commands.
var (
	ErrReadInput   = errors.New("read input")
	ErrWriteOutput = errors.New("write output")
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands.
type app struct {
	logger   *slog.Logger
	vocab    *vocab.Vocabulary
	logCfg   *log.Config
	vocCfg   *vocab.Config
	profCfg  *profile.Config
	profiler *profile.Profiler
}

func newRootCommand() *cobra.Command {
	a := &app{
		logCfg:  log.NewConfig(),
		vocCfg:  vocab.NewConfig(),
		profCfg: profile.NewConfig(),
	}

	root := &cobra.Command{
		Use:   "jdcr",
		Short: "Render Javadoc comment markup readably",
		Long: `jdcr finds the doc comments of a Java source file, styles the values of
HTML markup such as <b> and <code>, and folds the markup itself into short
placeholders.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			err := a.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a.profiler = a.profCfg.NewProfiler()

			return a.profiler.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.profiler.Stop()
		},
	}

	a.logCfg.RegisterFlags(root.PersistentFlags())
	a.vocCfg.RegisterFlags(root.PersistentFlags())
	a.profCfg.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newHighlightCommand(a),
		newFoldCommand(a),
		newRenderCommand(a),
		newViewCommand(a),
		newSchemaCommand(),
		newVocabularyCommand(),
		newVersionCommand(),
	)

	for _, err := range []error{
		a.logCfg.RegisterCompletions(root),
		a.vocCfg.RegisterCompletions(root),
		a.profCfg.RegisterCompletions(root),
	} {
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	return root
}

// setup installs the logger and loads the vocabulary.
func (a *app) setup(stderr io.Writer) error {
	logger, err := a.logCfg.NewLogger(stderr)
	if err != nil {
		return err
	}

	a.logger = logger
	slog.SetDefault(logger)

	a.vocab, err = a.vocCfg.Load()
	if err != nil {
		return err
	}

	a.logger.Debug("loaded vocabulary",
		slog.String("path", a.vocCfg.Path),
		slog.Int("rules", len(a.vocab.Rules)),
		slog.Int("placeholders", len(a.vocab.Placeholders)),
	)

	return nil
}

// engine returns an engine using the loaded vocabulary and logger.
func (a *app) engine() *engine.Engine {
	return engine.New(
		engine.WithVocabulary(a.vocab),
		engine.WithLogger(a.logger),
	)
}

// readSource reads the file at path, or stdin when path is "-".
func readSource(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadInput, err)
		}
	}

	return string(data), nil
}
