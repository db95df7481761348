package driving

import (
	"context"

	"github.com/rfcdex/rfcdex/internal/core/domain"
)

// RetrievalService exposes the query modes over the corpus.
type RetrievalService interface {
	// ByNumber returns the record for an RFC number. Non-positive numbers
	// are rejected with domain.ErrInvalidInput before the store is
	// consulted; unknown numbers return domain.ErrNotFound.
	ByNumber(ctx context.Context, number int) (*domain.Record, error)

	// ByKeyword sanitises the phrase and returns ranked hits, best match
	// first. An empty result set is a valid outcome, not an error.
	ByKeyword(ctx context.Context, phrase string, limit int) ([]domain.SearchHit, error)

	// Bookmarked returns all bookmarked records, order unspecified.
	Bookmarked(ctx context.Context) ([]domain.Record, error)

	// Latest returns the n highest-numbered records, descending.
	Latest(ctx context.Context, n int) ([]domain.Record, error)

	// SetBookmark sets or clears the bookmark flag for a record.
	SetBookmark(ctx context.Context, number int, marked bool) error

	// Count returns the number of records in the corpus.
	Count(ctx context.Context) (int, error)
}
