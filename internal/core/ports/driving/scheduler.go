package driving

import (
	"context"
	"time"

	"github.com/rfcdex/rfcdex/internal/core/domain"
)

// SyncScheduler decides when the local mirror is stale and runs refreshes.
type SyncScheduler interface {
	// IsStale reports whether the mirror is older than the staleness
	// window relative to now. A never-updated mirror is always stale.
	IsStale(ctx context.Context, now time.Time) (bool, error)

	// MarkUpdated persists now as the new freshness baseline.
	MarkUpdated(ctx context.Context, now time.Time) error

	// Refresh re-downloads and re-ingests the full corpus, then marks the
	// mirror updated. The outcome is recorded as a SyncRun regardless of
	// success.
	Refresh(ctx context.Context) (*domain.SyncRun, error)
}
