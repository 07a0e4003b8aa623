package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"plagcheck/internal/batch"
	"plagcheck/internal/document"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var workers int
	var jsonOut bool
	var weights string

	cmd := &cobra.Command{
		Use:   "batch <manifest>",
		Short: "Compare every pair listed in a TOML manifest",
		Long: "Compare every [[pair]] of a manifest on a worker pool. Relative paths are\n" +
			"resolved against the manifest directory; pairs without a result path are\n" +
			"written to output_dir as <original>_vs_<candidate>.txt.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			manifest, err := batch.LoadManifest(args[0])
			if err != nil {
				return err
			}
			c, err := ctx.checker(cmd.Context(), cmd, weights)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = cfg.Batch.Workers
			}

			summary := batch.NewRunner(c, workers, logger).Run(cmd.Context(), manifest.Pairs)
			if jsonOut {
				if err := writeJSON(cmd, summary); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), renderBatchSummary(summary))
				fmt.Fprintf(cmd.OutOrStdout(), "%d succeeded, %d failed in %s\n",
					summary.Succeeded, summary.Failed, summary.Elapsed.Round(time.Millisecond))
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d pairs failed", summary.Failed, len(summary.Outcomes))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent comparisons (default from [batch] workers)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print outcomes as JSON")
	cmd.Flags().StringVar(&weights, "weights", "", "Fusion weights as frequency,cosine,edit_distance")
	return cmd
}

func renderBatchSummary(summary batch.Summary) string {
	rows := make([][]string, 0, len(summary.Outcomes))
	for _, o := range summary.Outcomes {
		similarity := "-"
		status := "ok"
		if o.OK() {
			similarity = document.FormatPercent(o.Report.Percent) + "%"
		} else {
			status = o.Error
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", o.Pair),
			filepath.Base(o.Request.Original),
			filepath.Base(o.Request.Candidate),
			similarity,
			o.Request.Result,
			status,
		})
	}
	return renderTable(
		[]string{"#", "Original", "Candidate", "Similarity", "Result", "Status"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
	)
}
