package driven

import (
	"context"
	"time"

	"github.com/rfcdex/rfcdex/internal/core/domain"
)

// SyncStateStore persists the single "last updated" baseline the scheduler
// decides staleness from.
type SyncStateStore interface {
	// LastUpdated returns the persisted baseline. A zero time (and no
	// error) means the mirror has never been refreshed.
	LastUpdated(ctx context.Context) (time.Time, error)

	// SetLastUpdated persists a new baseline.
	SetLastUpdated(ctx context.Context, t time.Time) error
}

// SyncRunStore keeps a bounded history of refresh runs for status output.
type SyncRunStore interface {
	// RecordRun persists the outcome of a refresh.
	RecordRun(ctx context.Context, run *domain.SyncRun) error

	// ListRuns returns runs, most recent first.
	ListRuns(ctx context.Context, limit int) ([]domain.SyncRun, error)

	// PruneRuns removes all but the most recent keep runs.
	PruneRuns(ctx context.Context, keep int) error
}
