package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jdcr/engine"
)

// ErrUnknownOutput indicates an unrecognized --output value.
var ErrUnknownOutput = errors.New("unknown output format")

var outputFormats = []string{"text", "json", "yaml"}

// listing prints one kind of report entry.
type listing struct {
	value func(r *engine.Report) any
	text  func(w io.Writer, src string, r *engine.Report)
	use   string
	short string
}

func newHighlightCommand(a *app) *cobra.Command {
	return newListCommand(a, listing{
		use:   "highlight <file.java|->",
		short: "List the styled ranges of doc comment markup",
		value: func(r *engine.Report) any { return r.Highlights },
		text: func(w io.Writer, src string, r *engine.Report) {
			for _, h := range r.Highlights {
				fmt.Fprintf(w, "%s\t%s\t%s\t%q\n", h.Range, h.Style, orDash(h.Tag), h.Range.Substring(src))
			}
		},
	})
}

func newFoldCommand(a *app) *cobra.Command {
	return newListCommand(a, listing{
		use:   "fold <file.java|->",
		short: "List the fold regions of doc comment markup",
		value: func(r *engine.Report) any { return r.Regions },
		text: func(w io.Writer, src string, r *engine.Report) {
			for _, reg := range r.Regions {
				fmt.Fprintf(w, "%s\t%s\t%q\t%q\n", reg.Range, reg.Group, reg.Range.Substring(src), reg.Placeholder)
			}
		},
	})
}

func newListCommand(a *app, l listing) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   l.use,
		Short: l.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			report := a.engine().Run(src)

			return writeListing(cmd.OutOrStdout(), output, src, report, l)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text",
		"output format: "+strings.Join(outputFormats, ", "))

	completionErr := cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(outputFormats, cobra.ShellCompDirectiveNoFileComp))
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	return cmd
}

func writeListing(w io.Writer, format, src string, r *engine.Report, l listing) error {
	var (
		out []byte
		err error
	)

	switch format {
	case "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		l.text(tw, src, r)

		err = tw.Flush()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		return nil

	case "json":
		out, err = json.MarshalIndent(l.value(r), "", "  ")
		out = append(out, '\n')

	case "yaml":
		out, err = yaml.Marshal(l.value(r))

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, format)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
