package driven

import "context"

// RawDocument is a fetched document before record building: a source name
// carrying the identifier and the raw text content.
type RawDocument struct {
	// Name is the source filename, e.g. "rfc7540.txt". The RFC number is
	// derived from it during record building.
	Name string

	// Content is the raw document text.
	Content []byte
}

// Fetcher is the external collaborator that mirrors the RFC corpus.
// The core treats network mechanics (archive download, HTML scraping) as a
// black box behind this port and applies no retry policy of its own.
type Fetcher interface {
	// FetchCorpus mirrors the full document set into dir and returns the
	// directory holding the extracted plain-text files.
	FetchCorpus(ctx context.Context, dir string) (string, error)

	// FetchIndexListing retrieves the title index and returns one raw
	// entry string per known document, each beginning with its number.
	FetchIndexListing(ctx context.Context) ([]string, error)

	// FetchDocument retrieves a single document as plain text.
	// Used for one-off lookups that bypass the local mirror.
	FetchDocument(ctx context.Context, number int) (*RawDocument, error)

	// FetchDocuments retrieves several documents with bounded parallelism.
	// A document that cannot be fetched yields a nil entry at its index
	// rather than failing the batch.
	FetchDocuments(ctx context.Context, numbers []int) ([]*RawDocument, error)
}
