package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

const defaultLatestCount = 10

var latestCmd = &cobra.Command{
	Use:   "latest [count]",
	Short: "List the most recent RFCs in the corpus",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLatest,
}

func init() {
	rootCmd.AddCommand(latestCmd)
}

func runLatest(cmd *cobra.Command, args []string) error {
	if err := requireRetrieval(); err != nil {
		return err
	}

	n := defaultLatestCount
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			return fmt.Errorf("%q is not a positive count", args[0])
		}
		n = parsed
	}

	records, err := retrievalService.Latest(cmd.Context(), n)
	if err != nil {
		return fmt.Errorf("listing latest: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("The corpus is empty. Run `rfcdex sync` to populate it.")
		return nil
	}

	for _, rec := range records {
		cmd.Printf("  %s\n", recordLabel(rec))
	}
	return nil
}
