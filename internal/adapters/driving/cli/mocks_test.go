package cli

import (
	"context"
	"sort"
	"time"

	"github.com/rfcdex/rfcdex/internal/core/domain"
	"github.com/rfcdex/rfcdex/internal/core/ports/driving"
)

// stubRetrieval implements driving.RetrievalService over a fixed record set.
type stubRetrieval struct {
	records map[int]domain.Record
	hits    []domain.SearchHit

	searchErr error
	lastQuery string
}

var _ driving.RetrievalService = (*stubRetrieval)(nil)

func newStubRetrieval() *stubRetrieval {
	return &stubRetrieval{
		records: map[int]domain.Record{
			1918: {
				Number:   1918,
				Title:    "1918 Address Allocation for Private Internets",
				Body:     "This document describes address allocation.",
				Category: domain.CategoryBestCurrentPractice,
			},
			7540: {
				Number:     7540,
				Title:      "7540 Hypertext Transfer Protocol Version 2 (HTTP/2)",
				Body:       "HTTP/2 enables multiplexing.",
				Category:   domain.CategoryStandardsTrack,
				Bookmarked: true,
			},
		},
	}
}

func (s *stubRetrieval) ByNumber(_ context.Context, number int) (*domain.Record, error) {
	if number <= 0 {
		return nil, domain.ErrInvalidInput
	}
	rec, ok := s.records[number]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (s *stubRetrieval) ByKeyword(_ context.Context, phrase string, _ int) ([]domain.SearchHit, error) {
	s.lastQuery = phrase
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.hits, nil
}

func (s *stubRetrieval) Bookmarked(_ context.Context) ([]domain.Record, error) {
	var out []domain.Record
	for _, rec := range s.records {
		if rec.Bookmarked {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *stubRetrieval) Latest(_ context.Context, n int) ([]domain.Record, error) {
	numbers := make([]int, 0, len(s.records))
	for number := range s.records {
		numbers = append(numbers, number)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(numbers)))
	if n < len(numbers) {
		numbers = numbers[:n]
	}
	out := make([]domain.Record, 0, len(numbers))
	for _, number := range numbers {
		out = append(out, s.records[number])
	}
	return out, nil
}

func (s *stubRetrieval) SetBookmark(_ context.Context, number int, marked bool) error {
	if number <= 0 {
		return domain.ErrInvalidInput
	}
	rec, ok := s.records[number]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Bookmarked = marked
	s.records[number] = rec
	return nil
}

func (s *stubRetrieval) Count(_ context.Context) (int, error) {
	return len(s.records), nil
}

// stubScheduler implements driving.SyncScheduler with canned outcomes.
type stubScheduler struct {
	stale      bool
	refreshErr error
	refreshed  int
}

var _ driving.SyncScheduler = (*stubScheduler)(nil)

func (s *stubScheduler) IsStale(_ context.Context, _ time.Time) (bool, error) {
	return s.stale, nil
}

func (s *stubScheduler) MarkUpdated(_ context.Context, _ time.Time) error {
	return nil
}

func (s *stubScheduler) Refresh(_ context.Context) (*domain.SyncRun, error) {
	s.refreshed++
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	now := time.Now()
	return &domain.SyncRun{
		ID:        "run-1",
		StartedAt: now.Add(-2 * time.Second),
		EndedAt:   now,
		Documents: 42,
		Skipped:   3,
	}, nil
}

// setupTestServices installs stub services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	oldRetrieval := retrievalService
	oldScheduler := syncScheduler

	retrievalService = newStubRetrieval()
	syncScheduler = &stubScheduler{}

	return func() {
		retrievalService = oldRetrieval
		syncScheduler = oldScheduler
	}
}
