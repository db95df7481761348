package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/rfcdex/rfcdex/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/rfcdex/rfcdex/internal/core/domain"
	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
)

// Store is the SQLite-backed storage for the corpus, the FTS5 search
// index and the sync run history. The corpus table and the FTS table are
// written in the same transaction per record, so neither is ever
// observable without the other.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.rfcdex/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".rfcdex", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "corpus.db")

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite allows one writer at a time; keep the pool honest.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CorpusStore returns a CorpusStore interface backed by this store.
func (s *Store) CorpusStore() driven.CorpusStore {
	return &corpusStore{store: s}
}

// SearchIndex returns a SearchIndex interface backed by this store.
func (s *Store) SearchIndex() driven.SearchIndex {
	return &searchIndex{store: s}
}

// SyncRunStore returns a SyncRunStore interface backed by this store.
func (s *Store) SyncRunStore() driven.SyncRunStore {
	return &syncRunStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Corpus Store ====================

// corpusStore implements driven.CorpusStore.
type corpusStore struct {
	store *Store
}

var _ driven.CorpusStore = (*corpusStore)(nil)

// Insert stores a new record and its index row in one transaction.
// Returns domain.ErrDuplicateID when the number is already present; the
// existing record is left untouched.
func (s *corpusStore) Insert(ctx context.Context, rec *domain.Record) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var exists bool
	row := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM records WHERE number = ?)", rec.Number)
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("checking for duplicate: %w", err)
	}
	if exists {
		return domain.ErrDuplicateID
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO records (number, title, body, category, bookmarked)
		VALUES (?, ?, ?, ?, ?)
	`, rec.Number, nullString(rec.Title), rec.Body, rec.Category.String(), boolToInt(rec.Bookmarked))
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO records_fts (rowid, title, body, category)
		VALUES (?, ?, ?, ?)
	`, rec.Number, rec.Title, rec.Body, rec.Category.String())
	if err != nil {
		return fmt.Errorf("indexing record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Get retrieves a record by RFC number.
func (s *corpusStore) Get(ctx context.Context, number int) (*domain.Record, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT number, title, body, category, bookmarked
		FROM records WHERE number = ?
	`, number)
	return scanRecord(row)
}

// SetBookmark updates the bookmark flag. When the number is unknown and
// createMissing is set, a bare record (number and flag only) is created,
// together with an empty index row to keep the store/index pairing intact.
func (s *corpusStore) SetBookmark(ctx context.Context, number int, marked bool, createMissing bool) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		"UPDATE records SET bookmarked = ? WHERE number = ?", boolToInt(marked), number)
	if err != nil {
		return fmt.Errorf("updating bookmark: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting affected rows: %w", err)
	}

	if affected == 0 {
		if !createMissing {
			return domain.ErrNotFound
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO records (number, title, body, category, bookmarked)
			VALUES (?, NULL, '', ?, ?)
		`, number, domain.CategoryUncategorised.String(), boolToInt(marked))
		if err != nil {
			return fmt.Errorf("creating bare record: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO records_fts (rowid, title, body, category)
			VALUES (?, '', '', ?)
		`, number, domain.CategoryUncategorised.String())
		if err != nil {
			return fmt.Errorf("indexing bare record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Bookmarked returns all bookmarked records.
func (s *corpusStore) Bookmarked(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT number, title, body, category, bookmarked
		FROM records WHERE bookmarked = 1
	`)
	if err != nil {
		return nil, fmt.Errorf("querying bookmarks: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// Latest returns up to n records with the highest numbers, descending.
func (s *corpusStore) Latest(ctx context.Context, n int) ([]domain.Record, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT number, title, body, category, bookmarked
		FROM records ORDER BY number DESC LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("querying latest records: %w", err)
	}
	defer rows.Close()
	return collectRecords(rows)
}

// Count returns the number of records in the corpus.
func (s *corpusStore) Count(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// ==================== Search Index ====================

// searchIndex implements driven.SearchIndex over the FTS5 table.
type searchIndex struct {
	store *Store
}

var _ driven.SearchIndex = (*searchIndex)(nil)

// Search runs a ranked MATCH query. The phrase must be pre-sanitised to
// alphanumeric tokens; multiple tokens combine as an implicit AND. An
// empty result is success; a failing query surfaces as
// domain.ErrIndexUnavailable.
func (s *searchIndex) Search(ctx context.Context, phrase string, limit int) ([]domain.SearchHit, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT f.rowid, r.title, bm25(records_fts) AS rank
		FROM records_fts f
		JOIN records r ON r.number = f.rowid
		WHERE records_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, phrase, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}
	defer rows.Close()

	hits := []domain.SearchHit{}
	for rows.Next() {
		var hit domain.SearchHit
		var title sql.NullString
		if err := rows.Scan(&hit.Number, &title, &hit.Rank); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
		}
		hit.Title = title.String
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}
	return hits, nil
}

// Rebuild repopulates the FTS table from the records table. The index
// carries no state of its own, so a rebuild restores full consistency.
func (s *searchIndex) Rebuild(ctx context.Context) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM records_fts"); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO records_fts (rowid, title, body, category)
		SELECT number, COALESCE(title, ''), body, category FROM records
	`)
	if err != nil {
		return fmt.Errorf("repopulating index: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ==================== Sync Run Store ====================

// syncRunStore implements driven.SyncRunStore.
type syncRunStore struct {
	store *Store
}

var _ driven.SyncRunStore = (*syncRunStore)(nil)

// RecordRun persists the outcome of a refresh.
func (s *syncRunStore) RecordRun(ctx context.Context, run *domain.SyncRun) error {
	if run == nil {
		return domain.ErrInvalidInput
	}
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO sync_runs (id, started_at, ended_at, documents, skipped, error)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			ended_at = excluded.ended_at,
			documents = excluded.documents,
			skipped = excluded.skipped,
			error = excluded.error
	`, run.ID, run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.EndedAt.UTC().Format(time.RFC3339Nano),
		run.Documents, run.Skipped, run.Error)
	if err != nil {
		return fmt.Errorf("recording sync run: %w", err)
	}
	return nil
}

// ListRuns returns runs, most recent first.
func (s *syncRunStore) ListRuns(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, started_at, ended_at, documents, skipped, error
		FROM sync_runs ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sync runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.SyncRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		var run domain.SyncRun
		var started, ended string
		if err := rows.Scan(&run.ID, &started, &ended, &run.Documents, &run.Skipped, &run.Error); err != nil {
			return nil, fmt.Errorf("scanning sync run: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		run.EndedAt, _ = time.Parse(time.RFC3339Nano, ended)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync runs: %w", err)
	}
	return runs, nil
}

// PruneRuns removes all but the most recent keep runs.
func (s *syncRunStore) PruneRuns(ctx context.Context, keep int) error {
	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM sync_runs WHERE id NOT IN (
			SELECT id FROM sync_runs ORDER BY started_at DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning sync runs: %w", err)
	}
	return nil
}

// ==================== Helpers ====================

// scanner abstracts sql.Row and sql.Rows for record scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.Record, error) {
	var rec domain.Record
	var title sql.NullString
	var category string
	var bookmarked int
	if err := row.Scan(&rec.Number, &title, &rec.Body, &category, &bookmarked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}
	rec.Title = title.String
	rec.Category = domain.Category(category)
	rec.Bookmarked = bookmarked != 0
	return &rec, nil
}

func collectRecords(rows *sql.Rows) ([]domain.Record, error) {
	var records []domain.Record //nolint:prealloc // size unknown from query
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// nullString converts an empty string to NULL for storage.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
