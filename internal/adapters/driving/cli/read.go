package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rfcdex/rfcdex/internal/core/domain"
)

var readCmd = &cobra.Command{
	Use:   "read [rfc-number]",
	Short: "Read an RFC by number",
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%q is not an RFC number", args[0])
	}
	return showRecord(cmd, number)
}

// showRecord prints one document: header line, category, then the body.
func showRecord(cmd *cobra.Command, number int) error {
	if err := requireRetrieval(); err != nil {
		return err
	}

	rec, err := retrievalService.ByNumber(cmd.Context(), number)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("RFC %d is not in the local corpus", number)
		}
		return fmt.Errorf("reading RFC %d: %w", number, err)
	}

	title := rec.Title
	if title == "" {
		title = fmt.Sprintf("RFC %d", rec.Number)
	}

	marker := ""
	if rec.Bookmarked {
		marker = " *"
	}

	cmd.Printf("%s%s\n", title, marker)
	cmd.Printf("Category: %s\n\n", rec.Category)
	cmd.Println(rec.Body)
	return nil
}
