package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"file-mover/internal/display"
	"file-mover/internal/journal"
)

var errJournalDisabled = errors.New("journal is disabled (journal_path = \"off\")")

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent file dispositions from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.JournalEnabled() {
				return errJournalDisabled
			}

			store, err := journal.Open(cfg.JournalPath)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No dispositions recorded yet")
				return nil
			}

			elider := display.Elider{
				MaxLength: cfg.Display.MaxLength,
				Keep:      cfg.Display.Keep,
				Marker:    cfg.Display.Marker,
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					e.File,
					e.Outcome,
					elider.Elide(e.Destination),
					e.Error,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"When", "File", "Outcome", "Destination", "Error"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	return cmd
}
