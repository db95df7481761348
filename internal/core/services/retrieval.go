package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rfcdex/rfcdex/internal/core/domain"
	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
	"github.com/rfcdex/rfcdex/internal/core/ports/driving"
	"github.com/rfcdex/rfcdex/internal/logger"
)

// Ensure Retrieval implements the interface.
var _ driving.RetrievalService = (*Retrieval)(nil)

// DefaultSearchLimit caps keyword results when the caller passes no limit.
const DefaultSearchLimit = 25

// Retrieval composes the corpus store and search index into the three
// query modes plus the bookmark mutation.
type Retrieval struct {
	corpus driven.CorpusStore
	index  driven.SearchIndex

	// createOnBookmark preserves the legacy upsert behaviour: bookmarking
	// an unknown number fabricates a bare record instead of failing.
	createOnBookmark bool
}

// NewRetrieval creates a retrieval service.
func NewRetrieval(corpus driven.CorpusStore, index driven.SearchIndex, createOnBookmark bool) *Retrieval {
	return &Retrieval{
		corpus:           corpus,
		index:            index,
		createOnBookmark: createOnBookmark,
	}
}

// ByNumber returns the record for an RFC number. Invalid numbers are
// rejected before the store is consulted.
func (s *Retrieval) ByNumber(ctx context.Context, number int) (*domain.Record, error) {
	if number <= 0 {
		return nil, fmt.Errorf("%w: rfc number must be positive, got %d", domain.ErrInvalidInput, number)
	}
	return s.corpus.Get(ctx, number)
}

// ByKeyword sanitises the phrase and queries the ranked index. An empty
// result set is a valid outcome.
func (s *Retrieval) ByKeyword(ctx context.Context, phrase string, limit int) ([]domain.SearchHit, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	phrase = SanitiseQuery(phrase)
	if strings.TrimSpace(phrase) == "" {
		logger.Debug("Empty phrase after sanitising, returning no results")
		return []domain.SearchHit{}, nil
	}

	logger.Debug("Keyword search: %q (limit %d)", phrase, limit)
	hits, err := s.index.Search(ctx, phrase, limit)
	if err != nil {
		return nil, fmt.Errorf("keyword search: %w", err)
	}
	return hits, nil
}

// Bookmarked returns all bookmarked records. Order is unspecified.
func (s *Retrieval) Bookmarked(ctx context.Context) ([]domain.Record, error) {
	return s.corpus.Bookmarked(ctx)
}

// Latest returns the n highest-numbered records, descending.
func (s *Retrieval) Latest(ctx context.Context, n int) ([]domain.Record, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: latest count must be positive, got %d", domain.ErrInvalidInput, n)
	}
	return s.corpus.Latest(ctx, n)
}

// SetBookmark sets or clears the bookmark flag. Idempotent: repeating the
// same flag leaves a single record in the requested state.
func (s *Retrieval) SetBookmark(ctx context.Context, number int, marked bool) error {
	if number <= 0 {
		return fmt.Errorf("%w: rfc number must be positive, got %d", domain.ErrInvalidInput, number)
	}
	return s.corpus.SetBookmark(ctx, number, marked, s.createOnBookmark)
}

// Count returns the number of records in the corpus.
func (s *Retrieval) Count(ctx context.Context) (int, error) {
	return s.corpus.Count(ctx)
}
