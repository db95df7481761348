// Package memory provides in-memory implementations of the storage ports.
// Used by service tests and as a scratch backend; the sqlite package is
// the durable implementation.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rfcdex/rfcdex/internal/core/domain"
	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
)

// Ensure CorpusStore implements both storage ports.
var (
	_ driven.CorpusStore = (*CorpusStore)(nil)
	_ driven.SearchIndex = (*CorpusStore)(nil)
)

// CorpusStore is an in-memory corpus with a naive search index. Records
// and "index rows" share one map, so the store/index consistency invariant
// holds trivially.
type CorpusStore struct {
	mu      sync.RWMutex
	records map[int]domain.Record
}

// NewCorpusStore creates an empty in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{records: make(map[int]domain.Record)}
}

// Insert stores a new record. The first insert for a number wins.
func (s *CorpusStore) Insert(_ context.Context, rec *domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[rec.Number]; ok {
		return domain.ErrDuplicateID
	}
	s.records[rec.Number] = *rec
	return nil
}

// Get retrieves a record by number.
func (s *CorpusStore) Get(_ context.Context, number int) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[number]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// SetBookmark updates the bookmark flag, optionally fabricating a bare
// record for unknown numbers.
func (s *CorpusStore) SetBookmark(_ context.Context, number int, marked bool, createMissing bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[number]
	if !ok {
		if !createMissing {
			return domain.ErrNotFound
		}
		rec = domain.Record{Number: number, Category: domain.CategoryUncategorised}
	}
	rec.Bookmarked = marked
	s.records[number] = rec
	return nil
}

// Bookmarked returns all bookmarked records, order unspecified.
func (s *CorpusStore) Bookmarked(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Record
	for _, rec := range s.records {
		if rec.Bookmarked {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Latest returns up to n records with the highest numbers, descending.
func (s *CorpusStore) Latest(_ context.Context, n int) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Count returns the number of records.
func (s *CorpusStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Search is a naive ranked scan: a record matches when every token of the
// phrase appears in its title, body or category, case-insensitively. Rank
// follows the bm25 convention (lower is better) using term frequency only.
// Fidelity to the sqlite ranking is not a goal; tests need ordering, not
// exact scores.
func (s *CorpusStore) Search(_ context.Context, phrase string, limit int) ([]domain.SearchHit, error) {
	tokens := strings.Fields(strings.ToLower(phrase))
	if len(tokens) == 0 {
		return []domain.SearchHit{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []domain.SearchHit
	for _, rec := range s.records {
		haystack := strings.ToLower(rec.Title + " " + rec.Body + " " + rec.Category.String())
		freq := 0
		matched := true
		for _, tok := range tokens {
			n := strings.Count(haystack, tok)
			if n == 0 {
				matched = false
				break
			}
			freq += n
		}
		if matched {
			hits = append(hits, domain.SearchHit{
				Number: rec.Number,
				Title:  rec.Title,
				Rank:   -float64(freq),
			})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Rank != hits[j].Rank {
			return hits[i].Rank < hits[j].Rank
		}
		return hits[i].Number < hits[j].Number
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	if hits == nil {
		hits = []domain.SearchHit{}
	}
	return hits, nil
}

// Rebuild is a no-op: the in-memory index is the record map itself.
func (s *CorpusStore) Rebuild(_ context.Context) error {
	return nil
}
