package tui

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/messages"
	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/styles"
	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/views/document"
	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/views/menu"
	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/views/prompt"
	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/views/results"
	"github.com/rfcdex/rfcdex/internal/core/services"
)

// viewType identifies which view is currently active.
type viewType int

const (
	viewMenu viewType = iota
	viewPrompt
	viewResults
	viewDocument
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView     *menu.View
	promptView   *prompt.View
	resultsView  *results.View
	documentView *document.View

	// currentView tracks which view is active.
	currentView viewType

	// fromResults records whether the open document was reached through
	// a listing, so Esc can return there.
	fromResults bool

	// err holds the last error shown on the menu.
	err error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		promptView:   prompt.NewView(s),
		resultsView:  results.NewView(s),
		documentView: document.NewView(s),
		currentView:  viewMenu,
		width:        80,
		height:       24,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) {
	if ctx != nil {
		a.ctx = ctx
	}
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages and routes them to the active view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Every view tracks its own dimensions.
		a.menuView, _ = a.menuView.Update(msg)
		a.resultsView, _ = a.resultsView.Update(msg)
		a.documentView, _ = a.documentView.Update(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateActiveView(msg)

	case messages.ActionSelected:
		return a.handleAction(msg.Action)

	case messages.PromptSubmitted:
		return a.handlePrompt(msg)

	case messages.SearchCompleted:
		if msg.Err != nil {
			return a.failToMenu(msg.Err)
		}
		a.resultsView.SetHits(msg.Query, msg.Hits)
		a.currentView = viewResults
		return a, nil

	case messages.RecordsLoaded:
		if msg.Err != nil {
			return a.failToMenu(msg.Err)
		}
		a.resultsView.SetRecords(msg.Title, msg.Records)
		a.currentView = viewResults
		return a, nil

	case messages.DocumentLoaded:
		if msg.Err != nil {
			if a.currentView == viewPrompt {
				a.promptView.SetError(msg.Err.Error())
				return a, nil
			}
			return a.failToMenu(msg.Err)
		}
		a.documentView.SetRecord(msg.Record)
		a.fromResults = a.currentView == viewResults
		a.currentView = viewDocument
		return a, nil

	case messages.DocumentRequested:
		return a, a.loadDocument(msg.Number)

	case messages.BookmarkToggleRequested:
		return a, a.toggleBookmark(msg.Number, msg.Marked)

	case messages.BackRequested:
		return a.handleBack()
	}

	return a.updateActiveView(msg)
}

// View renders the active view.
func (a *App) View() string {
	switch a.currentView {
	case viewPrompt:
		return a.promptView.View()
	case viewResults:
		return a.resultsView.View()
	case viewDocument:
		return a.documentView.View()
	default:
		out := a.menuView.View()
		if a.err != nil {
			out += "\n\n" + a.styles.Error.Render(a.err.Error())
		}
		return out
	}
}

func (a *App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case viewPrompt:
		a.promptView, cmd = a.promptView.Update(msg)
	case viewResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	case viewDocument:
		a.documentView, cmd = a.documentView.Update(msg)
	default:
		a.menuView, cmd = a.menuView.Update(msg)
	}
	return a, cmd
}

func (a *App) handleAction(action messages.Action) (tea.Model, tea.Cmd) {
	a.err = nil

	if action == messages.ActionBookmarks {
		return a, a.loadBookmarks()
	}

	a.currentView = viewPrompt
	return a, a.promptView.Open(action)
}

func (a *App) handlePrompt(msg messages.PromptSubmitted) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case messages.ActionReadNumber:
		number, err := strconv.Atoi(msg.Value)
		if err != nil {
			a.promptView.SetError(fmt.Sprintf("%q is not an RFC number", msg.Value))
			return a, nil
		}
		return a, a.loadDocument(number)

	case messages.ActionLatest:
		n, err := strconv.Atoi(msg.Value)
		if err != nil || n <= 0 {
			a.promptView.SetError(fmt.Sprintf("%q is not a positive count", msg.Value))
			return a, nil
		}
		return a, a.loadLatest(n)

	default:
		return a, a.search(msg.Value)
	}
}

func (a *App) handleBack() (tea.Model, tea.Cmd) {
	switch a.currentView {
	case viewDocument:
		if a.fromResults {
			a.currentView = viewResults
			return a, nil
		}
		a.currentView = viewMenu
	default:
		a.currentView = viewMenu
	}
	return a, nil
}

// failToMenu shows the error on the menu and returns there.
func (a *App) failToMenu(err error) (tea.Model, tea.Cmd) {
	a.err = err
	a.currentView = viewMenu
	return a, nil
}

func (a *App) search(query string) tea.Cmd {
	return func() tea.Msg {
		hits, err := a.ports.Retrieval.ByKeyword(a.ctx, query, services.DefaultSearchLimit)
		return messages.SearchCompleted{Query: query, Hits: hits, Err: err}
	}
}

func (a *App) loadDocument(number int) tea.Cmd {
	return func() tea.Msg {
		rec, err := a.ports.Retrieval.ByNumber(a.ctx, number)
		if err != nil {
			return messages.DocumentLoaded{Err: fmt.Errorf("RFC %d: %w", number, err)}
		}
		return messages.DocumentLoaded{Record: rec}
	}
}

func (a *App) loadBookmarks() tea.Cmd {
	return func() tea.Msg {
		records, err := a.ports.Retrieval.Bookmarked(a.ctx)
		return messages.RecordsLoaded{Title: "Bookmarks", Records: records, Err: err}
	}
}

func (a *App) loadLatest(n int) tea.Cmd {
	return func() tea.Msg {
		records, err := a.ports.Retrieval.Latest(a.ctx, n)
		return messages.RecordsLoaded{
			Title:   fmt.Sprintf("Latest %d RFCs", n),
			Records: records,
			Err:     err,
		}
	}
}

func (a *App) toggleBookmark(number int, marked bool) tea.Cmd {
	return func() tea.Msg {
		if err := a.ports.Retrieval.SetBookmark(a.ctx, number, marked); err != nil {
			return messages.DocumentLoaded{Err: fmt.Errorf("bookmarking RFC %d: %w", number, err)}
		}
		// Reload so the marker reflects the stored state.
		rec, err := a.ports.Retrieval.ByNumber(a.ctx, number)
		return messages.DocumentLoaded{Record: rec, Err: err}
	}
}
