package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// Journal is a secondary ledger of finished focus sessions. The JSON
// document keeps only per-day aggregates; the journal records each
// session individually so reports and exports can slice by range.
type Journal struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return j, nil
}

// NewMemory creates an in-memory journal for testing.
func NewMemory() (*Journal, error) {
	return New(":memory:")
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) migrate() error {
	var version int
	err := j.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := j.migrateV1(); err != nil {
			return err
		}
	}

	_, err = j.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (j *Journal) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS focus_sessions (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		mode            TEXT NOT NULL,
		planned_seconds INTEGER NOT NULL,
		actual_seconds  INTEGER NOT NULL DEFAULT 0,
		started_at      TEXT NOT NULL,
		ended_at        TEXT NOT NULL,
		completed       INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_started ON focus_sessions(started_at);
	CREATE INDEX IF NOT EXISTS idx_sessions_mode    ON focus_sessions(mode);
	`
	_, err := j.db.Exec(ddl)
	return err
}

// DefaultDBPath returns ~/.config/pawdoro/history.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "pawdoro", "history.db"), nil
}
