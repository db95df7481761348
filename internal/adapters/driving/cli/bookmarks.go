package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rfcdex/rfcdex/internal/core/domain"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarked RFCs",
	RunE:  runBookmarksList,
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add [rfc-number]",
	Short: "Bookmark an RFC",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setBookmark(cmd, args[0], true)
	},
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "remove [rfc-number]",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setBookmark(cmd, args[0], false)
	},
}

func init() {
	bookmarksCmd.AddCommand(bookmarksAddCmd)
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)
	rootCmd.AddCommand(bookmarksCmd)
}

func runBookmarksList(cmd *cobra.Command, _ []string) error {
	if err := requireRetrieval(); err != nil {
		return err
	}

	records, err := retrievalService.Bookmarked(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing bookmarks: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No bookmarks.")
		return nil
	}

	for _, rec := range records {
		cmd.Printf("  %s\n", recordLabel(rec))
	}
	return nil
}

func setBookmark(cmd *cobra.Command, arg string, marked bool) error {
	if err := requireRetrieval(); err != nil {
		return err
	}

	number, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%q is not an RFC number", arg)
	}

	if err := retrievalService.SetBookmark(cmd.Context(), number, marked); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("RFC %d is not in the local corpus", number)
		}
		return fmt.Errorf("updating bookmark: %w", err)
	}

	if marked {
		cmd.Printf("Bookmarked RFC %d.\n", number)
	} else {
		cmd.Printf("Removed bookmark for RFC %d.\n", number)
	}
	return nil
}

// recordLabel formats a record for list output.
func recordLabel(rec domain.Record) string {
	if rec.Title != "" {
		return rec.Title
	}
	return fmt.Sprintf("RFC %d", rec.Number)
}
