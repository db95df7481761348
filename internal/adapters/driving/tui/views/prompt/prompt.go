// Package prompt provides the single-line input view used for number,
// keyword and count entry.
package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/messages"
	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/styles"
)

// View represents a one-line prompt for a menu action.
type View struct {
	styles *styles.Styles
	input  textinput.Model
	action messages.Action
	label  string
	errMsg string
}

// NewView creates a new prompt view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 40

	return &View{
		styles: s,
		input:  ti,
	}
}

// Open prepares the prompt for an action and focuses the input.
func (v *View) Open(action messages.Action) tea.Cmd {
	v.action = action
	v.errMsg = ""
	v.input.Reset()

	switch action {
	case messages.ActionReadNumber:
		v.label = "RFC number"
		v.input.Placeholder = "2616"
	case messages.ActionLatest:
		v.label = "How many"
		v.input.Placeholder = "10"
	default:
		v.label = "Search"
		v.input.Placeholder = "http/2 multiplexing"
	}

	return v.input.Focus()
}

// SetError displays a message under the input, keeping the prompt open.
func (v *View) SetError(msg string) {
	v.errMsg = msg
}

// Update handles messages for the prompt view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			value := strings.TrimSpace(v.input.Value())
			if value == "" {
				return v, nil
			}
			action := v.action
			return v, func() tea.Msg {
				return messages.PromptSubmitted{Action: action, Value: value}
			}

		case "esc":
			return v, func() tea.Msg {
				return messages.BackRequested{}
			}
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the prompt.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.label))
	b.WriteString("\n\n")
	b.WriteString(v.styles.InputField.Render(v.input.View()))
	b.WriteString("\n")

	if v.errMsg != "" {
		b.WriteString(v.styles.Error.Render(v.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[Enter] Go  [Esc] Back"))

	return b.String()
}

// Value returns the current input text.
func (v *View) Value() string {
	return v.input.Value()
}

// Action returns the action the prompt was opened for.
func (v *View) Action() messages.Action {
	return v.action
}
