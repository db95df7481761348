package domain

import "time"

// StalenessWindow is how long a mirror stays fresh. The RFC editor
// publishes new documents weekly.
const StalenessWindow = 7 * 24 * time.Hour

// SyncRun records the outcome of one refresh of the local mirror.
type SyncRun struct {
	// ID is a unique identifier for the run.
	ID string

	// StartedAt is when the refresh started.
	StartedAt time.Time

	// EndedAt is when the refresh completed.
	EndedAt time.Time

	// Documents is the number of records written to the corpus.
	Documents int

	// Skipped counts files rejected during ingestion (malformed names,
	// duplicates).
	Skipped int

	// Error contains the failure message if the run did not complete.
	Error string
}

// Succeeded returns true if the run completed without error.
func (r SyncRun) Succeeded() bool {
	return r.Error == ""
}
