package driving

import (
	"context"

	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
)

// IngestResult summarises a batch ingestion.
type IngestResult struct {
	// Inserted is the number of records written to the corpus.
	Inserted int

	// Skipped counts files rejected and logged: malformed filenames and
	// duplicate numbers. Skips never abort the batch.
	Skipped int
}

// IngestService builds records from raw files and commits them to the
// corpus, one transaction per record.
type IngestService interface {
	// IngestDir ingests every eligible plain-text file under dir, using
	// listing to resolve titles. Per-file failures are logged and
	// skipped; only infrastructure failures (unreadable dir, storage
	// down) abort the batch.
	IngestDir(ctx context.Context, dir string, listing []string) (*IngestResult, error)

	// IngestDocuments ingests already-fetched raw documents. Nil entries
	// and per-document failures count as skips, same as IngestDir.
	IngestDocuments(ctx context.Context, docs []*driven.RawDocument, listing []string) (*IngestResult, error)
}
