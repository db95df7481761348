package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the local corpus from the RFC Editor",
	Long: `Downloads the full corpus archive and re-ingests it, regardless of
how fresh the local copy is. Documents already present keep their
bookmarks; duplicates are skipped.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	if syncScheduler == nil {
		return errors.New("sync scheduler not configured")
	}

	cmd.Println("Refreshing corpus...")
	run, err := syncScheduler.Refresh(cmd.Context())
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	cmd.Printf("Done in %s: %d documents ingested, %d skipped.\n",
		run.EndedAt.Sub(run.StartedAt).Round(timeRounding), run.Documents, run.Skipped)
	return nil
}
