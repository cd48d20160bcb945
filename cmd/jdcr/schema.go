package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/jdcr/vocab"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of vocabulary files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := vocab.Schema()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return writeString(cmd.OutOrStdout(), string(out)+"\n")
		},
	}
}

func newVocabularyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vocabulary",
		Short: "Print the built-in vocabulary as YAML",
		Long: `vocabulary prints the built-in tags and placeholders in the format read by
--vocabulary, as a starting point for a custom vocabulary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := yaml.Marshal(vocab.DefaultFile())
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWriteOutput, err)
			}

			return writeString(cmd.OutOrStdout(), string(out))
		},
	}
}
