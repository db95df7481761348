// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/rfcdex/rfcdex/internal/core/domain"
)

// Action identifies a menu entry's behaviour.
type Action int

const (
	// ActionReadNumber prompts for an RFC number and opens the document.
	ActionReadNumber Action = iota
	// ActionSearchKeyword prompts for a phrase and lists ranked hits.
	ActionSearchKeyword
	// ActionBookmarks lists bookmarked documents.
	ActionBookmarks
	// ActionLatest prompts for a count and lists the newest documents.
	ActionLatest
)

// ActionSelected is sent when a menu entry is chosen.
type ActionSelected struct {
	Action Action
}

// PromptSubmitted carries the text entered at a prompt.
type PromptSubmitted struct {
	Action Action
	Value  string
}

// SearchCompleted carries ranked search hits back to the model.
type SearchCompleted struct {
	Query string
	Hits  []domain.SearchHit
	Err   error
}

// RecordsLoaded carries a record listing (bookmarks, latest) back to the model.
type RecordsLoaded struct {
	Title   string
	Records []domain.Record
	Err     error
}

// DocumentLoaded carries a single document back to the model.
type DocumentLoaded struct {
	Record *domain.Record
	Err    error
}

// DocumentRequested is sent when a listed document should be opened.
type DocumentRequested struct {
	Number int
}

// BookmarkToggleRequested is sent when the open document's bookmark
// should be flipped.
type BookmarkToggleRequested struct {
	Number int
	Marked bool
}

// BackRequested is sent when the active view should return to its parent.
type BackRequested struct{}
