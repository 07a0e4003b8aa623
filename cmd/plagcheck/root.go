package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var opts compareOptions

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "plagcheck <original> <candidate> <result>",
		Short: "Compare a candidate document against an original and report similarity",
		Long: "plagcheck scores how much of a candidate document repeats an original.\n" +
			"Word frequency, synonym-aware cosine, and edit distance scores are fused\n" +
			"into one percentage, which is written with two decimals to the result file.",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, ctx, args[0], args[1], args[2], opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&opts.breakdown, "breakdown", false, "Print the individual scores as a table")
	rootCmd.Flags().BoolVar(&opts.json, "json", false, "Print the full comparison report as JSON")
	rootCmd.Flags().StringVar(&opts.weights, "weights", "", "Fusion weights as frequency,cosine,edit_distance (e.g. 1,1,1)")

	rootCmd.AddCommand(newBatchCommand(ctx))
	rootCmd.AddCommand(newTokenizeCommand(ctx))
	rootCmd.AddCommand(newThesaurusCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd
}
