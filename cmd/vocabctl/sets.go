package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"pandavocab/internal/domain"
	"pandavocab/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSetsCommand(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "sets",
		Short: "List, create, delete, import and show vocabulary sets",
	}

	command.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved sets, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(store *service.SetStore) error {
					printSets(cmd.OutOrStdout(), store.List())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "create NAME",
			Short: "Create an empty set",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(store *service.SetStore) error {
					sets, err := store.Create(args[0])
					if err != nil {
						return err
					}
					color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Created set %q (%s)\n", sets[0].Name, sets[0].ID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a set",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(store *service.SetStore) error {
					if _, err := store.Get(args[0]); err != nil {
						return err
					}
					if _, err := store.Delete(args[0]); err != nil {
						return err
					}
					color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Deleted set %s\n", args[0])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "import ID FILE.xlsx",
			Short: "Merge a spreadsheet (hanzi, pinyin, meaning) into a set",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				file, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", args[1], err)
				}
				defer file.Close()

				return a.withStore(func(store *service.SetStore) error {
					result, err := service.NewImportService(a.parser, a.logger).Import(store, args[0], file)
					if err != nil {
						return err
					}
					color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), result.Message())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "show ID",
			Short: "Print every word of a set",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(store *service.SetStore) error {
					set, err := store.Get(args[0])
					if err != nil {
						return err
					}
					w := cmd.OutOrStdout()
					color.New(color.Bold).Fprintf(w, "%s (%d words)\n", set.Name, len(set.Items))
					printEntries(w, set.Items)
					if !service.Playable(set) {
						color.New(color.FgYellow).Fprintf(w, "Needs at least %d words to be playable\n", domain.MinPlayable)
					}
					return nil
				})
			},
		},
	)

	return command
}

func printSets(w io.Writer, sets []domain.VocabularySet) {
	if len(sets) == 0 {
		fmt.Fprintln(w, "No sets saved")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tWORDS\tCREATED")
	for _, set := range sets {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", set.ID, set.Name, len(set.Items), set.CreatedAt.Format("2006-01-02"))
	}
	tw.Flush()
}

func printEntries(w io.Writer, entries []domain.VocabularyEntry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, e := range entries {
		fmt.Fprintf(tw, "%d.\t%s\t%s\t%s\n", i+1, e.Hanzi, e.Pinyin, e.Meaning)
	}
	tw.Flush()
}
