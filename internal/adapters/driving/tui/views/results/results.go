// Package results provides the listing view for search hits, bookmarks
// and latest documents.
package results

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/messages"
	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/styles"
	"github.com/rfcdex/rfcdex/internal/core/domain"
)

// entry is one selectable line: a number to open and its display label.
type entry struct {
	number     int
	label      string
	bookmarked bool
}

// View represents a selectable listing of documents.
type View struct {
	styles   *styles.Styles
	title    string
	entries  []entry
	selected int
	width    int
	height   int
}

// NewView creates a new results view.
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

// SetHits loads ranked search hits into the listing.
func (v *View) SetHits(query string, hits []domain.SearchHit) {
	v.title = fmt.Sprintf("Results for %q", query)
	v.selected = 0
	v.entries = make([]entry, len(hits))
	for i, hit := range hits {
		v.entries[i] = entry{number: hit.Number, label: titleOrNumber(hit.Title, hit.Number)}
	}
}

// SetRecords loads plain records (bookmarks, latest) into the listing.
func (v *View) SetRecords(title string, records []domain.Record) {
	v.title = title
	v.selected = 0
	v.entries = make([]entry, len(records))
	for i, rec := range records {
		v.entries[i] = entry{
			number:     rec.Number,
			label:      titleOrNumber(rec.Title, rec.Number),
			bookmarked: rec.Bookmarked,
		}
	}
}

// Update handles messages for the results view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.entries)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			if len(v.entries) == 0 {
				return v, nil
			}
			number := v.entries[v.selected].number
			return v, func() tea.Msg {
				return messages.DocumentRequested{Number: number}
			}

		case "esc":
			return v, func() tea.Msg {
				return messages.BackRequested{}
			}
		}
	}

	return v, nil
}

// View renders the listing.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.title))
	b.WriteString("\n\n")

	if len(v.entries) == 0 {
		b.WriteString(v.styles.Muted.Render("Nothing to show."))
		b.WriteString("\n")
	}

	for i, e := range v.entries {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}

		line := cursor + style.Render(e.label)
		if e.bookmarked {
			line += v.styles.Accent.Render(" *")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Open  [Esc] Back"))

	return b.String()
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Len returns the number of listed entries.
func (v *View) Len() int {
	return len(v.entries)
}

func titleOrNumber(title string, number int) string {
	if title != "" {
		return title
	}
	return fmt.Sprintf("RFC %d", number)
}
