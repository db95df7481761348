package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rfcdex/rfcdex/internal/core/domain"
	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
)

// Ensure SyncStore implements the sync ports.
var (
	_ driven.SyncStateStore = (*SyncStore)(nil)
	_ driven.SyncRunStore   = (*SyncStore)(nil)
)

// SyncStore is an in-memory implementation of the sync state and run
// history ports.
type SyncStore struct {
	mu          sync.RWMutex
	lastUpdated time.Time
	runs        []domain.SyncRun
}

// NewSyncStore creates an empty in-memory sync store.
func NewSyncStore() *SyncStore {
	return &SyncStore{}
}

// LastUpdated returns the stored baseline; zero when never set.
func (s *SyncStore) LastUpdated(_ context.Context) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated, nil
}

// SetLastUpdated stores a new baseline.
func (s *SyncStore) SetLastUpdated(_ context.Context, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUpdated = t
	return nil
}

// RecordRun prepends a run to the history.
func (s *SyncStore) RecordRun(_ context.Context, run *domain.SyncRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append([]domain.SyncRun{*run}, s.runs...)
	return nil
}

// ListRuns returns runs, most recent first.
func (s *SyncStore) ListRuns(_ context.Context, limit int) ([]domain.SyncRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.runs) {
		limit = len(s.runs)
	}
	out := make([]domain.SyncRun, limit)
	copy(out, s.runs[:limit])
	return out, nil
}

// PruneRuns drops all but the most recent keep runs.
func (s *SyncStore) PruneRuns(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if keep >= 0 && len(s.runs) > keep {
		s.runs = s.runs[:keep]
	}
	return nil
}
