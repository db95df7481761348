// Package tui provides the interactive terminal menu for rfcdex.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/rfcdex/rfcdex/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retrieval provides corpus queries: by number, keyword, bookmarks, latest.
	Retrieval driving.RetrievalService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	return nil
}
