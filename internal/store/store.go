// Package store caches analyzed summaries in sqlite so re-running the
// tool against an unchanged export skips the analysis pass.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Adamkadaban/Whatsapp-Analyzer/internal/stats"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS summaries (
    path           TEXT PRIMARY KEY,
    mtime          INTEGER NOT NULL DEFAULT 0,
    size           INTEGER NOT NULL DEFAULT 0,
    analyzed_at    TEXT NOT NULL DEFAULT '',
    total_messages INTEGER NOT NULL DEFAULT 0,
    summary_json   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);
`

// schemaVersion should be bumped whenever the analysis output shape
// changes, to invalidate cached summaries.
const schemaVersion = "1"

type DB struct {
	db *sql.DB
}

func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	d := &DB{db: db}
	if err := d.migrateSchemaVersion(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) migrateSchemaVersion() error {
	var ver string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&ver)
	if err == nil && ver == schemaVersion {
		return nil
	}
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("read schema version: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM summaries"); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	_, err = d.db.Exec(
		"INSERT INTO meta (key, value) VALUES ('schema_version', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		schemaVersion,
	)
	if err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}

func (d *DB) Close() error { return d.db.Close() }

// Entry is one cached summary row.
type Entry struct {
	Path          string
	Mtime         int64
	Size          int64
	AnalyzedAt    string
	TotalMessages int
}

// Get loads a cached summary, or nil when the path has no entry.
func (d *DB) Get(path string) (*Entry, *stats.Summary, error) {
	var e Entry
	var blob string
	err := d.db.QueryRow(
		"SELECT path, mtime, size, analyzed_at, total_messages, summary_json FROM summaries WHERE path = ?",
		path,
	).Scan(&e.Path, &e.Mtime, &e.Size, &e.AnalyzedAt, &e.TotalMessages, &blob)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get summary: %w", err)
	}

	var s stats.Summary
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return nil, nil, fmt.Errorf("decode cached summary: %w", err)
	}
	return &e, &s, nil
}

// Fresh reports whether the cache entry for path still matches the
// file's mtime and size.
func (d *DB) Fresh(path string, mtime, size int64) (bool, error) {
	e, _, err := d.Get(path)
	if err != nil {
		return false, err
	}
	return e != nil && e.Mtime == mtime && e.Size == size, nil
}

// Put stores (or replaces) the summary for a path.
func (d *DB) Put(path string, mtime, size int64, s *stats.Summary) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	_, err = d.db.Exec(
		`INSERT INTO summaries (path, mtime, size, analyzed_at, total_messages, summary_json)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
		   mtime = excluded.mtime,
		   size = excluded.size,
		   analyzed_at = excluded.analyzed_at,
		   total_messages = excluded.total_messages,
		   summary_json = excluded.summary_json`,
		path, mtime, size, time.Now().UTC().Format(time.RFC3339), s.TotalMessages, string(blob),
	)
	if err != nil {
		return fmt.Errorf("put summary: %w", err)
	}
	return nil
}

// All lists cached entries, most recently analyzed first.
func (d *DB) All() ([]Entry, error) {
	rows, err := d.db.Query(
		"SELECT path, mtime, size, analyzed_at, total_messages FROM summaries ORDER BY analyzed_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Path, &e.Mtime, &e.Size, &e.AnalyzedAt, &e.TotalMessages); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Prune deletes entries whose paths are not in seen. Returns how many
// were removed.
func (d *DB) Prune(seen map[string]struct{}) (int, error) {
	all, err := d.All()
	if err != nil {
		return 0, err
	}
	pruned := 0
	for _, e := range all {
		if _, ok := seen[e.Path]; ok {
			continue
		}
		if _, err := d.db.Exec("DELETE FROM summaries WHERE path = ?", e.Path); err != nil {
			return pruned, fmt.Errorf("prune %s: %w", e.Path, err)
		}
		pruned++
	}
	return pruned, nil
}

// Count returns the number of cached summaries.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM summaries").Scan(&n); err != nil {
		return 0, fmt.Errorf("count summaries: %w", err)
	}
	return n, nil
}
