package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfcdex/rfcdex/internal/core/domain"
	"github.com/rfcdex/rfcdex/internal/core/services"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the corpus by keyword",
	Long: `Performs a ranked full-text search across every indexed document.
Punctuation in the query is treated as whitespace, so "HTTP/2" and
"HTTP 2" find the same documents.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", services.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := requireRetrieval(); err != nil {
		return err
	}

	hits, err := retrievalService.ByKeyword(cmd.Context(), args[0], searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(hits, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printHits(cmd, hits)
	return nil
}

func printHits(cmd *cobra.Command, hits []domain.SearchHit) {
	if len(hits) == 0 {
		cmd.Println("No results found.")
		return
	}

	for i, hit := range hits {
		title := hit.Title
		if title == "" {
			title = fmt.Sprintf("RFC %d", hit.Number)
		}
		cmd.Printf("  [%d] %s\n", i+1, title)
	}
}
