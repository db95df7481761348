package services

import (
	"context"
	"sync"
	"time"

	"github.com/rfcdex/rfcdex/internal/core/domain"
	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
)

// --- Mock implementations shared by the service tests ---

// mockCorpus implements driven.CorpusStore.
type mockCorpus struct {
	mu        sync.Mutex
	records   map[int]domain.Record
	insertErr error
}

func newMockCorpus() *mockCorpus {
	return &mockCorpus{records: make(map[int]domain.Record)}
}

func (m *mockCorpus) Insert(_ context.Context, rec *domain.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	if _, ok := m.records[rec.Number]; ok {
		return domain.ErrDuplicateID
	}
	m.records[rec.Number] = *rec
	return nil
}

func (m *mockCorpus) Get(_ context.Context, number int) (*domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[number]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (m *mockCorpus) SetBookmark(_ context.Context, number int, marked bool, createMissing bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[number]
	if !ok {
		if !createMissing {
			return domain.ErrNotFound
		}
		rec = domain.Record{Number: number, Category: domain.CategoryUncategorised}
	}
	rec.Bookmarked = marked
	m.records[number] = rec
	return nil
}

func (m *mockCorpus) Bookmarked(_ context.Context) ([]domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Record
	for _, rec := range m.records {
		if rec.Bookmarked {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockCorpus) Latest(_ context.Context, n int) ([]domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Record
	for _, rec := range m.records {
		out = append(out, rec)
	}
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (m *mockCorpus) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records), nil
}

// mockIndex implements driven.SearchIndex with canned hits.
type mockIndex struct {
	hits      []domain.SearchHit
	lastQuery string
	searchErr error
}

func (m *mockIndex) Search(_ context.Context, phrase string, _ int) ([]domain.SearchHit, error) {
	m.lastQuery = phrase
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.hits, nil
}

func (m *mockIndex) Rebuild(_ context.Context) error { return nil }

// mockSyncState implements driven.SyncStateStore.
type mockSyncState struct {
	mu      sync.Mutex
	last    time.Time
	readErr error
}

func (m *mockSyncState) LastUpdated(_ context.Context) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return time.Time{}, m.readErr
	}
	return m.last, nil
}

func (m *mockSyncState) SetLastUpdated(_ context.Context, t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = t
	return nil
}

// mockRuns implements driven.SyncRunStore.
type mockRuns struct {
	mu     sync.Mutex
	runs   []domain.SyncRun
	pruned int
}

func (m *mockRuns) RecordRun(_ context.Context, run *domain.SyncRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, *run)
	return nil
}

func (m *mockRuns) ListRuns(_ context.Context, _ int) ([]domain.SyncRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SyncRun(nil), m.runs...), nil
}

func (m *mockRuns) PruneRuns(_ context.Context, keep int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruned = keep
	return nil
}

// mockFetcher implements driven.Fetcher against a pre-populated directory.
type mockFetcher struct {
	corpusDir  string
	listing    []string
	fetchErr   error
	listingErr error
}

func (m *mockFetcher) FetchCorpus(_ context.Context, _ string) (string, error) {
	if m.fetchErr != nil {
		return "", m.fetchErr
	}
	return m.corpusDir, nil
}

func (m *mockFetcher) FetchIndexListing(_ context.Context) ([]string, error) {
	if m.listingErr != nil {
		return nil, m.listingErr
	}
	return m.listing, nil
}

func (m *mockFetcher) FetchDocument(_ context.Context, _ int) (*driven.RawDocument, error) {
	return nil, domain.ErrNotFound
}

func (m *mockFetcher) FetchDocuments(_ context.Context, numbers []int) ([]*driven.RawDocument, error) {
	return make([]*driven.RawDocument, len(numbers)), nil
}
