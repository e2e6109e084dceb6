// Package storage provides SQLite-based persistence for the run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the history lives unless --db says otherwise.
const DefaultPath = "~/.mental/runs.db"

// Store manages the SQLite database connection for the run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded play-through.
type Run struct {
	ID         int64
	Player     string // SSH user or "local"
	Frontend   string // "terminal", "window" or "ssh"
	Seed       int64
	LevelsDone int
	LevelCount int
	LastLevel  string
	Ticks      int
	Finished   bool
	ExitReason string
	CreatedAt  time.Time
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs       int
	Finished   int
	AvgLevels  float64
	BestTicks  int // Fewest ticks of a finished run, 0 if none
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			frontend TEXT NOT NULL,
			seed INTEGER NOT NULL,
			levels_done INTEGER NOT NULL,
			level_count INTEGER NOT NULL,
			last_level TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			finished INTEGER NOT NULL DEFAULT 0,
			exit_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(finished DESC, levels_done DESC, ticks ASC);
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

// SaveRun records a finished or abandoned run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (player, frontend, seed, levels_done, level_count, last_level, ticks, finished, exit_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Frontend, r.Seed, r.LevelsDone, r.LevelCount, r.LastLevel, r.Ticks, r.Finished, r.ExitReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, player, frontend, seed, levels_done, level_count, last_level,
	ticks, finished, exit_reason, created_at`

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the run that got furthest, fastest.
// Returns nil if no runs exist.
func (s *Store) BestRun() (*Run, error) {
	row := s.db.QueryRow(
		`SELECT ` + runColumns + `
		 FROM runs
		 ORDER BY finished DESC, levels_done DESC, ticks ASC
		 LIMIT 1`,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetStats retrieves aggregated statistics over all runs.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(finished), 0),
		        COALESCE(AVG(levels_done), 0),
		        COALESCE(MIN(CASE WHEN finished = 1 THEN ticks END), 0),
		        MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Finished, &stats.AvgLevels, &stats.BestTicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var createdAt any
	err := sc.Scan(
		&r.ID,
		&r.Player,
		&r.Frontend,
		&r.Seed,
		&r.LevelsDone,
		&r.LevelCount,
		&r.LastLevel,
		&r.Ticks,
		&r.Finished,
		&r.ExitReason,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
