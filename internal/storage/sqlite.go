// Package storage provides a SQLite-backed catalog of validated levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the level catalog.
type Store struct {
	db *sql.DB
}

// LevelEntry is one indexed level.
type LevelEntry struct {
	ID         string
	Name       string
	Path       string
	Format     string
	Alphabet   string
	Rows       int
	Cols       int
	TileCounts map[string]int // Keyed by tile code, filler excluded
	IndexedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			path TEXT NOT NULL,
			format TEXT NOT NULL,
			alphabet TEXT NOT NULL,
			row_count INTEGER NOT NULL,
			col_count INTEGER NOT NULL,
			tile_counts TEXT NOT NULL DEFAULT '{}',
			indexed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_alphabet ON levels(alphabet);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveLevel inserts or replaces the entry with the same ID.
// IndexedAt is set by the database.
func (s *Store) SaveLevel(e LevelEntry) error {
	counts, err := json.Marshal(e.TileCounts)
	if err != nil {
		return fmt.Errorf("storage: cannot encode tile counts: %w", err)
	}
	if e.TileCounts == nil {
		counts = []byte("{}")
	}

	_, err = s.db.Exec(
		`INSERT INTO levels (id, name, path, format, alphabet, row_count, col_count, tile_counts, indexed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			path = excluded.path,
			format = excluded.format,
			alphabet = excluded.alphabet,
			row_count = excluded.row_count,
			col_count = excluded.col_count,
			tile_counts = excluded.tile_counts,
			indexed_at = excluded.indexed_at`,
		e.ID, e.Name, e.Path, e.Format, e.Alphabet, e.Rows, e.Cols, string(counts),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level %s: %w", e.ID, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLevel(row scanner) (LevelEntry, error) {
	var e LevelEntry
	var counts string
	var indexedAt any

	if err := row.Scan(&e.ID, &e.Name, &e.Path, &e.Format, &e.Alphabet,
		&e.Rows, &e.Cols, &counts, &indexedAt); err != nil {
		return e, err
	}

	if err := json.Unmarshal([]byte(counts), &e.TileCounts); err != nil {
		return e, fmt.Errorf("storage: cannot decode tile counts for %s: %w", e.ID, err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := indexedAt.(type) {
	case time.Time:
		e.IndexedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.IndexedAt = parsed
		}
	}
	return e, nil
}

const selectLevel = `SELECT id, name, path, format, alphabet, row_count, col_count, tile_counts, indexed_at FROM levels`

// LevelByID returns the entry for id, or nil if it is not indexed.
func (s *Store) LevelByID(id string) (*LevelEntry, error) {
	e, err := scanLevel(s.db.QueryRow(selectLevel+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level: %w", err)
	}
	return &e, nil
}

// ListLevels returns every indexed level ordered by ID.
func (s *Store) ListLevels() ([]LevelEntry, error) {
	rows, err := s.db.Query(selectLevel + ` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var entries []LevelEntry
	for rows.Next() {
		e, err := scanLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteLevel removes one entry. Deleting an absent ID is not an error.
func (s *Store) DeleteLevel(id string) error {
	_, err := s.db.Exec("DELETE FROM levels WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete level: %w", err)
	}
	return nil
}

// ClearLevels deletes every entry.
func (s *Store) ClearLevels() error {
	_, err := s.db.Exec("DELETE FROM levels")
	if err != nil {
		return fmt.Errorf("storage: cannot clear levels: %w", err)
	}
	return nil
}

// CatalogStats contains aggregated statistics for the catalog.
type CatalogStats struct {
	Levels     int
	TotalCells int64
	MaxRows    int
	MaxCols    int
	ByAlphabet map[string]int
}

// Stats aggregates the catalog.
func (s *Store) Stats() (*CatalogStats, error) {
	stats := &CatalogStats{ByAlphabet: make(map[string]int)}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(row_count * col_count), 0), COALESCE(MAX(row_count), 0), COALESCE(MAX(col_count), 0)
		 FROM levels`,
	).Scan(&stats.Levels, &stats.TotalCells, &stats.MaxRows, &stats.MaxCols)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get catalog stats: %w", err)
	}

	rows, err := s.db.Query(`SELECT alphabet, COUNT(*) FROM levels GROUP BY alphabet`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get alphabet stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats.ByAlphabet[name] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
