package main

import (
	"context"
	"time"

	"pandavocab/internal/domain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newGenerateCommand(a *app) *cobra.Command {
	var level, count int

	command := &cobra.Command{
		Use:   "generate",
		Short: "Print a fresh HSK word list, generated live or taken from the built-in tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			source, err := a.source(ctx)
			if err != nil {
				return err
			}

			result, err := source.Vocabulary(ctx, level, count)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if result.Fallback {
				color.New(color.FgYellow, color.Bold).Fprintf(w, "WARNING: using built-in vocabulary (%v)\n", result.Warning)
			}
			color.New(color.Bold).Fprintf(w, "HSK %d, %d words\n", level, len(result.Entries))
			printEntries(w, result.Entries)
			return nil
		},
	}

	command.Flags().IntVar(&level, "level", domain.MinLevel, "HSK level (1-9)")
	command.Flags().IntVar(&count, "count", domain.DefaultCount, "Number of words")

	return command
}
