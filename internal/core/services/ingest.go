package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rfcdex/rfcdex/internal/core/domain"
	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
	"github.com/rfcdex/rfcdex/internal/core/ports/driving"
	"github.com/rfcdex/rfcdex/internal/logger"
)

// Ensure Ingest implements the interface.
var _ driving.IngestService = (*Ingest)(nil)

// skipNames are directory entries that are not RFC documents: the index
// itself, the "a.txt" author files, and non-text renderings.
var skipNames = []string{"a.txt", "rfc-index.txt", ".pdf", ".ps", ".ta"}

// Ingest builds records from raw files and commits them to the corpus.
type Ingest struct {
	corpus driven.CorpusStore
}

// NewIngest creates an ingest service backed by the given corpus store.
func NewIngest(corpus driven.CorpusStore) *Ingest {
	return &Ingest{corpus: corpus}
}

// BuildRecord assembles a Record from a raw file. The RFC number comes
// from the filename with the "rfc" prefix and ".txt" suffix stripped;
// anything else is domain.ErrMalformedIdentifier. An unresolved title is
// not an error: the record is built with an empty title.
func BuildRecord(filename string, raw []byte, listing []string) (*domain.Record, error) {
	number, err := parseNumber(filename)
	if err != nil {
		return nil, err
	}

	body := strings.TrimSpace(string(raw))
	return &domain.Record{
		Number:     number,
		Title:      ResolveTitle(number, listing),
		Body:       body,
		Category:   domain.ClassifyCategory(body),
		Bookmarked: false,
	}, nil
}

// parseNumber derives the RFC number from a source filename like
// "rfc7540.txt".
func parseNumber(filename string) (int, error) {
	name := strings.TrimSuffix(filepath.Base(filename), ".txt")
	name = strings.TrimPrefix(name, "rfc")

	number, err := strconv.Atoi(name)
	if err != nil || number <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrMalformedIdentifier, filename)
	}
	return number, nil
}

// IngestDir ingests every eligible plain-text file under dir. Each record
// is committed in its own transaction, so an interrupt mid-batch leaves
// whole records only. Malformed filenames and duplicate numbers are logged
// and skipped; the batch continues.
func (s *Ingest) IngestDir(ctx context.Context, dir string, listing []string) (*driving.IngestResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	logger.Info("Ingesting %d directory entries from %s", len(entries), dir)

	result := &driving.IngestResult{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if entry.IsDir() || !eligible(entry.Name()) {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Warn("Skipping unreadable file %s: %v", entry.Name(), err)
			result.Skipped++
			continue
		}

		rec, err := BuildRecord(entry.Name(), raw, listing)
		if err != nil {
			logger.Warn("Skipping %s: %v", entry.Name(), err)
			result.Skipped++
			continue
		}

		if err := s.corpus.Insert(ctx, rec); err != nil {
			if errors.Is(err, domain.ErrDuplicateID) {
				logger.Warn("Skipping duplicate RFC %d", rec.Number)
				result.Skipped++
				continue
			}
			// Storage failures are not per-record conditions; abort.
			return result, fmt.Errorf("inserting rfc %d: %w", rec.Number, err)
		}
		result.Inserted++
	}

	logger.Info("Ingest complete: %d inserted, %d skipped", result.Inserted, result.Skipped)
	return result, nil
}

// IngestDocuments ingests raw documents already fetched into memory.
// Nil entries stand for documents the fetcher could not retrieve and
// count as skips.
func (s *Ingest) IngestDocuments(ctx context.Context, docs []*driven.RawDocument, listing []string) (*driving.IngestResult, error) {
	result := &driving.IngestResult{}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if doc == nil {
			result.Skipped++
			continue
		}

		rec, err := BuildRecord(doc.Name, doc.Content, listing)
		if err != nil {
			logger.Warn("Skipping %s: %v", doc.Name, err)
			result.Skipped++
			continue
		}

		if err := s.corpus.Insert(ctx, rec); err != nil {
			if errors.Is(err, domain.ErrDuplicateID) {
				logger.Warn("Skipping duplicate RFC %d", rec.Number)
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("inserting rfc %d: %w", rec.Number, err)
		}
		result.Inserted++
	}
	return result, nil
}

// eligible filters out directory entries that are not RFC text files.
func eligible(name string) bool {
	for _, skip := range skipNames {
		if strings.Contains(name, skip) {
			return false
		}
	}
	return true
}
