package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Entry captures one finished download.
type Entry struct {
	ID          int64
	AssetID     string
	ProjectID   string
	AssetName   string
	DestPath    string
	Bytes       int64
	Succeeded   bool
	Detail      string
	CompletedAt time.Time
}

// Store manages ledger persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the ledger database and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("history: database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path reports the backing database file.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Append records a finished download and returns the stored entry.
func (s *Store) Append(ctx context.Context, entry Entry) (*Entry, error) {
	completedAt := entry.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}
	timestamp := completedAt.UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO download_history (
            asset_id, project_id, asset_name, dest_path,
            bytes, succeeded, detail, completed_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.AssetID,
		entry.ProjectID,
		entry.AssetName,
		entry.DestPath,
		entry.Bytes,
		boolToInt(entry.Succeeded),
		entry.Detail,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert history entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read inserted id: %w", err)
	}
	stored := entry
	stored.ID = id
	stored.CompletedAt = completedAt.UTC()
	return &stored, nil
}

// Recent returns the newest entries, most recent first. A limit <= 0 returns
// everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, asset_id, project_id, asset_name, dest_path,
            bytes, succeeded, detail, completed_at
        FROM download_history
        ORDER BY completed_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

// ByAsset returns every entry for an asset id, most recent first.
func (s *Store) ByAsset(ctx context.Context, assetID string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, asset_id, project_id, asset_name, dest_path,
            bytes, succeeded, detail, completed_at
        FROM download_history
        WHERE asset_id = ?
        ORDER BY completed_at DESC, id DESC`,
		assetID,
	)
	if err != nil {
		return nil, fmt.Errorf("query history by asset: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var entry Entry
	var succeeded int
	var completedAt string
	if err := rows.Scan(
		&entry.ID,
		&entry.AssetID,
		&entry.ProjectID,
		&entry.AssetName,
		&entry.DestPath,
		&entry.Bytes,
		&succeeded,
		&entry.Detail,
		&completedAt,
	); err != nil {
		return Entry{}, fmt.Errorf("scan history entry: %w", err)
	}
	entry.Succeeded = succeeded != 0
	parsed, err := time.Parse(time.RFC3339Nano, completedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parse completed_at %q: %w", completedAt, err)
	}
	entry.CompletedAt = parsed
	return entry, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
