package driven

import (
	"context"

	"github.com/rfcdex/rfcdex/internal/core/domain"
)

// CorpusStore persists the canonical record set. It owns identifier
// uniqueness: a record's number appears at most once.
//
// Implementations that also maintain a SearchIndex must update both within
// a single transaction per record, so a record is never observable without
// its index entry or vice versa.
type CorpusStore interface {
	// Insert stores a new record. Returns domain.ErrDuplicateID when a
	// record with the same number already exists; the existing record is
	// left untouched.
	Insert(ctx context.Context, rec *domain.Record) error

	// Get retrieves a record by RFC number.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, number int) (*domain.Record, error)

	// SetBookmark updates the bookmark flag for a record. When the number
	// is unknown and createMissing is true, a bare record carrying only
	// the number and flag is created (upsert). When createMissing is
	// false an unknown number returns domain.ErrNotFound.
	SetBookmark(ctx context.Context, number int, marked bool, createMissing bool) error

	// Bookmarked returns all records with the bookmark flag set.
	// Order is unspecified.
	Bookmarked(ctx context.Context) ([]domain.Record, error)

	// Latest returns up to n records with the highest numbers, descending.
	Latest(ctx context.Context, n int) ([]domain.Record, error)

	// Count returns the number of records in the corpus.
	Count(ctx context.Context) (int, error)
}
