package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"plagcheck/internal/checker"
	"plagcheck/internal/document"
)

type compareOptions struct {
	breakdown bool
	json      bool
	weights   string
}

func runCompare(cmd *cobra.Command, ctx *commandContext, original, candidate, result string, opts compareOptions) error {
	c, err := ctx.checker(cmd.Context(), cmd, opts.weights)
	if err != nil {
		return err
	}
	report, err := c.Run(cmd.Context(), checker.Request{
		Original:  original,
		Candidate: candidate,
		Result:    result,
	})
	if err != nil {
		return err
	}

	if opts.json {
		return writeJSON(cmd, report)
	}
	out := cmd.OutOrStdout()
	if opts.breakdown {
		fmt.Fprintln(out, renderBreakdown(report))
	}
	fmt.Fprintf(out, "Check complete: similarity %s%%, result saved to %s\n",
		document.FormatPercent(report.Percent), report.ResultPath)
	return nil
}

func renderBreakdown(report checker.Report) string {
	res := report.Similarity
	w := res.Weights.Normalized()
	rows := [][]string{
		{"Word frequency", formatScore(res.Frequency), formatScore(w.Frequency)},
		{"Cosine (synonyms)", formatScore(res.Cosine), formatScore(w.Cosine)},
		{"Edit distance", formatScore(res.EditDistance), formatScore(w.EditDistance)},
		{"Combined", formatScore(res.Combined), ""},
	}
	return renderTable([]string{"Scorer", "Score", "Weight"}, rows, []columnAlignment{alignLeft, alignRight, alignRight})
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
