package file

import (
	"context"
	"fmt"
	"time"

	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
)

// Ensure SyncState implements the interface.
var _ driven.SyncStateStore = (*SyncState)(nil)

// SyncState persists the "last updated" baseline in the config store.
type SyncState struct {
	config driven.ConfigStore
}

// NewSyncState creates a sync state store backed by the config store.
func NewSyncState(config driven.ConfigStore) *SyncState {
	return &SyncState{config: config}
}

// LastUpdated returns the persisted baseline. An absent or unparseable
// value is reported as zero time, which callers treat as "never updated".
func (s *SyncState) LastUpdated(_ context.Context) (time.Time, error) {
	raw := s.config.GetString(driven.ConfigKeyLastUpdate)
	if raw == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// A corrupted timestamp forces a refresh rather than an error.
		return time.Time{}, nil
	}
	return t, nil
}

// SetLastUpdated persists a new baseline as RFC3339.
func (s *SyncState) SetLastUpdated(_ context.Context, t time.Time) error {
	if err := s.config.Set(driven.ConfigKeyLastUpdate, t.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("persisting last update: %w", err)
	}
	return nil
}
