package driven

import (
	"context"

	"github.com/rfcdex/rfcdex/internal/core/domain"
)

// SearchIndex queries the ranked full-text index over title, body and
// category. Index rows are keyed by the record number and maintained by the
// CorpusStore implementation in lockstep with the corpus, so this port is
// read-only apart from Rebuild.
type SearchIndex interface {
	// Search returns up to limit hits for the phrase, best match first.
	// The phrase is expected to be pre-sanitised. An empty result is not
	// an error. Returns domain.ErrIndexUnavailable when the backing index
	// cannot be queried.
	Search(ctx context.Context, phrase string, limit int) ([]domain.SearchHit, error)

	// Rebuild drops the index and repopulates it from the corpus.
	// The index is fully derivable from stored records.
	Rebuild(ctx context.Context) error
}
