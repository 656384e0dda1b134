package main

import (
	"fmt"

	"github.com/Nomadcxx/jellyname/internal/history"
	"github.com/Nomadcxx/jellyname/internal/paths"
	"github.com/Nomadcxx/jellyname/internal/ui"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent rename operations",
		Long: `Show the most recent rename operations from the history database.

Every attempted move is recorded: applied, planned (validate mode) and
failed, with the failure reason.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runStarted = true
			return runHistory(limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "number of entries to show")

	return cmd
}

func runHistory(limit int) error {
	historyPath, err := paths.HistoryPath()
	if err != nil {
		return err
	}

	hist, err := history.Open(historyPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer hist.Close()

	entries, err := hist.Recent(limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(entries) == 0 {
		ui.InfoMsg("no rename operations recorded yet")
		return nil
	}

	for _, entry := range entries {
		status := entry.Status
		switch entry.Status {
		case history.StatusApplied:
			status = ui.Success(status)
		case history.StatusFailed:
			status = ui.Error(status)
		default:
			status = ui.Dim(status)
		}

		fmt.Printf("%s  %s\n  %s\n  -> %s\n",
			entry.ExecutedAt.Format("2006-01-02 15:04:05"),
			status,
			ui.Path(entry.SourcePath),
			ui.Path(entry.TargetPath))
		if entry.Reason != "" {
			fmt.Printf("  %s\n", ui.Dim(entry.Reason))
		}
	}

	stats, err := hist.Stats()
	if err != nil {
		return nil
	}
	fmt.Printf("\n%d applied, %d planned, %d failed\n",
		stats[history.StatusApplied], stats[history.StatusPlanned], stats[history.StatusFailed])

	return nil
}
