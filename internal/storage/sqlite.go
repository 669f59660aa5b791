package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store keeps every finished run in a SQLite database.
type Store struct {
	mu    sync.Mutex
	db    *sql.DB
	limit int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// limit is the default size of Top and Submit results.
func Open(dbPath string, limit int) (*Store, error) {
	dbPath, err := expandPath(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if limit <= 0 {
		limit = 10
	}
	store := &Store{db: db, limit: limit}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			misses INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			best_combo INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC, id ASC);
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

// Submit records a run and returns the updated top list.
// An empty RunID is replaced with a fresh UUID.
func (s *Store) Submit(e ScoreEntry) ([]ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.RunID == "" {
		e.RunID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO scores (run_id, name, score, misses, hits, best_combo)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.RunID, NormalizeName(e.Name), e.Score, e.Misses, e.Hits, e.BestCombo,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot save score: %w", err)
	}

	return s.top(s.limit)
}

// Top retrieves the best runs. Equal scores keep submission order.
func (s *Store) Top(limit int) ([]ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.top(limit)
}

func (s *Store) top(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = s.limit
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, name, score, misses, hits, best_combo, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Name, &e.Score, &e.Misses, &e.Hits, &e.BestCombo, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score ever recorded, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalHits  int64
	BestCombo  int
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics over all recorded runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(hits), 0), COALESCE(MAX(best_combo), 0)
		 FROM scores`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalHits, &stats.BestCombo)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM scores ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Clear deletes all recorded runs.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var _ Leaderboard = (*Store)(nil)
