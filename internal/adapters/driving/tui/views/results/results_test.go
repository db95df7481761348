package results

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfcdex/rfcdex/internal/adapters/driving/tui/messages"
	"github.com/rfcdex/rfcdex/internal/core/domain"
)

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestView_SetHits(t *testing.T) {
	v := NewView(nil)
	v.SetHits("http2", []domain.SearchHit{
		{Number: 7540, Title: "7540 Hypertext Transfer Protocol Version 2 (HTTP/2)"},
		{Number: 9113},
	})

	out := v.View()
	assert.Contains(t, out, `Results for "http2"`)
	assert.Contains(t, out, "7540 Hypertext Transfer Protocol")
	assert.Contains(t, out, "RFC 9113", "untitled hit falls back to the number")
	assert.Equal(t, 2, v.Len())
}

func TestView_SetRecordsResetsSelection(t *testing.T) {
	v := NewView(nil)
	v.SetHits("x", []domain.SearchHit{{Number: 1}, {Number: 2}})
	v, _ = v.Update(keyMsg("j"))
	require.Equal(t, 1, v.Selected())

	v.SetRecords("Bookmarks", []domain.Record{{Number: 1918, Bookmarked: true}})
	assert.Equal(t, 0, v.Selected())
	assert.Contains(t, v.View(), "Bookmarks")
	assert.Contains(t, v.View(), "*")
}

func TestView_EnterOpensDocument(t *testing.T) {
	v := NewView(nil)
	v.SetHits("http2", []domain.SearchHit{{Number: 7540}, {Number: 9113}})
	v, _ = v.Update(keyMsg("j"))

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	req, ok := msg.(messages.DocumentRequested)
	require.True(t, ok)
	assert.Equal(t, 9113, req.Number)
}

func TestView_EnterOnEmptyListDoesNothing(t *testing.T) {
	v := NewView(nil)
	v.SetHits("none", nil)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, v.View(), "Nothing to show.")
}

func TestView_EscGoesBack(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(messages.BackRequested)
	assert.True(t, ok)
}
