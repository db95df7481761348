package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rfcdex/rfcdex/internal/core/domain"
)

const (
	statusRunHistory = 5
	timeRounding     = time.Second
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show corpus freshness and recent sync runs",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if err := requireRetrieval(); err != nil {
		return err
	}

	count, err := retrievalService.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("counting corpus: %w", err)
	}
	cmd.Printf("Documents: %d\n", count)

	if syncState != nil {
		last, err := syncState.LastUpdated(cmd.Context())
		if err != nil {
			return fmt.Errorf("reading sync state: %w", err)
		}
		if last.IsZero() {
			cmd.Println("Last update: never")
		} else {
			age := time.Since(last).Round(timeRounding)
			freshness := "fresh"
			if age > domain.StalenessWindow {
				freshness = "stale"
			}
			cmd.Printf("Last update: %s (%s ago, %s)\n",
				last.Local().Format(time.RFC1123), age, freshness)
		}
	}

	if runStore == nil {
		return nil
	}

	runs, err := runStore.ListRuns(cmd.Context(), statusRunHistory)
	if err != nil {
		return fmt.Errorf("listing sync runs: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	cmd.Println("\nRecent sync runs:")
	for _, run := range runs {
		outcome := "ok"
		if !run.Succeeded() {
			outcome = "failed: " + run.Error
		}
		cmd.Printf("  %s  %4d docs  %s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04"), run.Documents, outcome)
	}
	return nil
}
