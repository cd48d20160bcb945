package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jdcr/fold"
	"go.jacobcolvin.com/jdcr/render"
)

func newRenderCommand(a *app) *cobra.Command {
	cfg := render.NewConfig()

	cmd := &cobra.Command{
		Use:   "render <file.java|->",
		Short: "Print a source file with doc comment markup styled and folded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			w, err := cfg.Writer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			report := a.engine().Run(src)

			state := fold.NewState(report.Regions)
			if cfg.Expand {
				state.ToggleAll()
			}

			a.logger.Debug("rendering",
				slog.String("profile", w.Profile.String()),
				slog.Bool("expand", cfg.Expand),
			)

			return writeString(w, render.NewRenderer().Render(src, report.Highlights, state))
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	completionErr := cfg.RegisterCompletions(cmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	return cmd
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
