package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/rfcdex/rfcdex/internal/core/domain"
	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
	"github.com/rfcdex/rfcdex/internal/core/ports/driving"
	"github.com/rfcdex/rfcdex/internal/logger"
)

// Ensure Scheduler implements the interface.
var _ driving.SyncScheduler = (*Scheduler)(nil)

// runHistoryKeep bounds the persisted refresh history.
const runHistoryKeep = 50

// Scheduler decides staleness from the persisted baseline and orchestrates
// full refreshes of the local mirror.
type Scheduler struct {
	state   driven.SyncStateStore
	runs    driven.SyncRunStore
	fetcher driven.Fetcher
	ingest  driving.IngestService
}

// NewScheduler creates a sync scheduler. The runs store is optional; when
// nil, refresh history is not recorded.
func NewScheduler(
	state driven.SyncStateStore,
	runs driven.SyncRunStore,
	fetcher driven.Fetcher,
	ingest driving.IngestService,
) *Scheduler {
	return &Scheduler{
		state:   state,
		runs:    runs,
		fetcher: fetcher,
		ingest:  ingest,
	}
}

// IsStale reports whether the mirror is older than the staleness window.
// A zero baseline means the mirror was never refreshed and is stale.
func (s *Scheduler) IsStale(ctx context.Context, now time.Time) (bool, error) {
	last, err := s.state.LastUpdated(ctx)
	if err != nil {
		return false, fmt.Errorf("reading last update: %w", err)
	}
	if last.IsZero() {
		return true, nil
	}
	return now.After(last.Add(domain.StalenessWindow)), nil
}

// MarkUpdated persists now as the new freshness baseline.
func (s *Scheduler) MarkUpdated(ctx context.Context, now time.Time) error {
	return s.state.SetLastUpdated(ctx, now)
}

// Refresh mirrors the full corpus and re-ingests it. Per-file problems are
// skipped inside the ingest loop; any other failure aborts the refresh and
// is recorded on the run. The scheduler applies no retry policy: network
// failure handling belongs to the fetch collaborator's caller.
func (s *Scheduler) Refresh(ctx context.Context) (*domain.SyncRun, error) {
	run := &domain.SyncRun{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	logger.Section("Mirror Refresh")
	logger.Info("Refresh %s starting", run.ID)

	err := s.refresh(ctx, run)

	run.EndedAt = time.Now().UTC()
	if err != nil {
		run.Error = err.Error()
	}
	s.record(ctx, run)

	if err != nil {
		return run, err
	}
	logger.Info("Refresh %s complete: %d documents, %d skipped", run.ID, run.Documents, run.Skipped)
	return run, nil
}

func (s *Scheduler) refresh(ctx context.Context, run *domain.SyncRun) error {
	stage, err := os.MkdirTemp("", "rfcdex-sync-*")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(stage)

	dir, err := s.fetcher.FetchCorpus(ctx, stage)
	if err != nil {
		return fmt.Errorf("fetching corpus: %w", err)
	}

	listing, err := s.fetcher.FetchIndexListing(ctx)
	if err != nil {
		return fmt.Errorf("fetching index listing: %w", err)
	}

	result, err := s.ingest.IngestDir(ctx, dir, listing)
	if result != nil {
		run.Documents = result.Inserted
		run.Skipped = result.Skipped
	}
	if err != nil {
		return fmt.Errorf("ingesting corpus: %w", err)
	}

	if err := s.MarkUpdated(ctx, time.Now().UTC()); err != nil {
		return fmt.Errorf("marking updated: %w", err)
	}
	return nil
}

// record persists the run outcome. Failures here are logged, not fatal:
// history is advisory.
func (s *Scheduler) record(ctx context.Context, run *domain.SyncRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.RecordRun(ctx, run); err != nil {
		logger.Warn("Recording sync run %s: %v", run.ID, err)
		return
	}
	if err := s.runs.PruneRuns(ctx, runHistoryKeep); err != nil {
		logger.Warn("Pruning sync history: %v", err)
	}
}
