package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui"
)

// runTUI launches the interactive menu. Reached when the binary is run
// with no arguments on a terminal.
func runTUI(cmd *cobra.Command) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{Retrieval: retrievalService})
	if err != nil {
		return fmt.Errorf("creating interactive menu: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive menu: %w", err)
	}
	return nil
}
