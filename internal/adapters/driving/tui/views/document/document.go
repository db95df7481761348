// Package document provides the scrollable full-text view of one RFC.
package document

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/messages"
	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/styles"
	"github.com/rfcdex/rfcdex/internal/core/domain"
)

// headerLines is the vertical space reserved above and below the viewport.
const headerLines = 5

// View represents the document content view.
type View struct {
	styles   *styles.Styles
	viewport viewport.Model
	record   *domain.Record
	width    int
	height   int
	ready    bool
}

// NewView creates a new document view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// SetRecord loads a record into the viewport and scrolls to the top.
func (v *View) SetRecord(rec *domain.Record) {
	v.record = rec
	v.resize()
	v.viewport.SetContent(rec.Body)
	v.viewport.GotoTop()
}

// Record returns the displayed record, or nil.
func (v *View) Record() *domain.Record {
	return v.record
}

// Update handles messages for the document view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.resize()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.BackRequested{}
			}

		case "b":
			if v.record == nil {
				return v, nil
			}
			number := v.record.Number
			marked := !v.record.Bookmarked
			return v, func() tea.Msg {
				return messages.BookmarkToggleRequested{Number: number, Marked: marked}
			}
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the document.
func (v *View) View() string {
	if v.record == nil {
		return v.styles.Muted.Render("No document loaded.")
	}

	var b strings.Builder

	title := v.record.Title
	if title == "" {
		title = fmt.Sprintf("RFC %d", v.record.Number)
	}
	b.WriteString(v.styles.Title.Render(title))
	if v.record.Bookmarked {
		b.WriteString(v.styles.Accent.Render(" *"))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Category: " + v.record.Category.String()))
	b.WriteString("\n\n")

	b.WriteString(v.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Scroll  [b] Bookmark  [Esc] Back"))

	return b.String()
}

func (v *View) resize() {
	height := v.height - headerLines
	if height < 1 {
		height = 1
	}

	if !v.ready {
		v.viewport = viewport.New(v.width, height)
		v.ready = true
		return
	}
	v.viewport.Width = v.width
	v.viewport.Height = height
}
