package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plagcheck/internal/document"
	"plagcheck/internal/textutil"
)

type tokenizeOutput struct {
	Path       string   `json:"path"`
	Encoding   string   `json:"encoding"`
	Tokens     []string `json:"tokens"`
	Normalized string   `json:"normalized"`
}

func newTokenizeCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var showNormalized bool

	cmd := &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Show the tokens and normalized text produced for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := document.ValidatePath(args[0], "input", cfg.MaxFileBytes())
			if err != nil {
				return err
			}
			doc, err := document.ReadLimit(path, cfg.MaxFileBytes())
			if err != nil {
				return err
			}
			c, err := ctx.checker(cmd.Context(), cmd, "")
			if err != nil {
				return err
			}

			result := tokenizeOutput{
				Path:       doc.Path,
				Encoding:   doc.Encoding,
				Tokens:     c.Tokenize(doc.Text),
				Normalized: textutil.Normalize(doc.Text),
			}
			if jsonOut {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Encoding: %s\n", result.Encoding)
			fmt.Fprintf(out, "Tokens (%d): %s\n", len(result.Tokens), strings.Join(result.Tokens, " / "))
			if showNormalized {
				fmt.Fprintf(out, "Normalized: %s\n", result.Normalized)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the tokens as JSON")
	cmd.Flags().BoolVar(&showNormalized, "normalized", false, "Also print the normalized text")
	return cmd
}
