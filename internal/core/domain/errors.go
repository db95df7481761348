package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID indicates an insert for an RFC number already in the
	// corpus. Ingestion treats this as skip-and-log, never fatal.
	ErrDuplicateID = errors.New("duplicate rfc number")

	// ErrInvalidInput indicates malformed or out-of-range user input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedIdentifier indicates a filename that does not reduce to
	// an RFC number. The ingest loop skips such files.
	ErrMalformedIdentifier = errors.New("malformed rfc identifier")

	// ErrIndexUnavailable indicates the search index could not be queried.
	// Distinct from a query with no results, which is not an error.
	ErrIndexUnavailable = errors.New("search index unavailable")
)
