package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plagcheck/internal/config"
	"plagcheck/internal/thesaurus"
)

func newThesaurusCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thesaurus",
		Short: "Inspect and convert synonym tables",
	}
	cmd.AddCommand(newThesaurusLookupCommand(ctx))
	cmd.AddCommand(newThesaurusBuildCommand())
	return cmd
}

func newThesaurusLookupCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "lookup <word>...",
		Short: "Print the synonyms the configured thesaurus returns for each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			src := thesaurus.Source{Path: cfg.Thesaurus.Path, SQLitePath: cfg.Thesaurus.SQLitePath}
			table, err := thesaurus.Load(cmd.Context(), src)
			if err != nil {
				return err
			}

			results := make(map[string][]string, len(args))
			rows := make([][]string, 0, len(args))
			for _, word := range args {
				syns := table.Synonyms(word)
				results[word] = syns
				rows = append(rows, []string{word, strings.Join(syns, ", ")})
			}
			if jsonOut {
				return writeJSON(cmd, results)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Thesaurus: %s\n", src.Describe())
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Word", "Synonyms"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print synonyms as JSON")
	return cmd
}

func newThesaurusBuildCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "build <source.toml> <target.db>",
		Short:       "Convert a TOML thesaurus into a SQLite synonym store",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve source path: %w", err)
			}
			target, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve target path: %w", err)
			}
			table, err := thesaurus.LoadFile(source)
			if err != nil {
				return err
			}
			if err := thesaurus.WriteSQLite(cmd.Context(), target, table, overwrite); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d terms to %s\n", table.Len(), target)
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing database")
	return cmd
}
