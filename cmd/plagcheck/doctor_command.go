package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plagcheck/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var inputs []string
	var output string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, segmenter, thesaurus, and file access",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), cfg)
			for i, in := range inputs {
				results = append(results, preflight.CheckInputFile(fmt.Sprintf("input %d", i+1), in, cfg.MaxFileBytes()))
			}
			if strings.TrimSpace(output) != "" {
				results = append(results, preflight.CheckOutputPath("result", output))
			}

			if jsonOut {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				lines := renderSectionHeader("plagcheck doctor", colorize)
				if ctx.configExists {
					lines = append(lines, renderStatusLine("Config file", statusInfo, ctx.configPath, colorize))
				} else {
					lines = append(lines, renderStatusLine("Config file", statusInfo, "defaults (no file)", colorize))
				}
				for _, r := range results {
					kind := statusOK
					if !r.Passed {
						kind = statusError
					}
					lines = append(lines, renderStatusLine(r.Name, kind, r.Detail, colorize))
				}
				fmt.Fprintln(out, strings.Join(lines, "\n"))
			}

			if !preflight.AllPassed(results) {
				return fmt.Errorf("one or more checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print check results as JSON")
	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "Also check that a document is readable (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Also check that a result file can be written")
	return cmd
}
