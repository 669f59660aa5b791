// Package storage persists letterfall leaderboards.
// Store keeps full run history in SQLite via the pure-Go modernc.org/sqlite
// driver; FileBoard keeps a short top list in a JSON file.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultName replaces an empty player name.
	DefaultName = "Player"
	// MaxNameLen is the longest accepted player name, in runes.
	MaxNameLen = 10
	// DefaultDBPath is where the SQLite leaderboard lives unless overridden.
	DefaultDBPath = "~/.letterfall/scores.db"
	// DefaultBoardPath is where the JSON leaderboard lives unless overridden.
	DefaultBoardPath = "~/.letterfall/high_scores.json"
)

// ScoreEntry is one leaderboard record.
// FileBoard persists only Name and Score.
type ScoreEntry struct {
	ID        int64     `json:"-"`
	RunID     string    `json:"-"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	Misses    int       `json:"-"`
	Hits      int       `json:"-"`
	BestCombo int       `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Leaderboard is a ranked list of results, highest score first.
// Implementations are safe for concurrent use.
type Leaderboard interface {
	// Top returns up to limit entries; limit <= 0 means the board's default.
	Top(limit int) ([]ScoreEntry, error)
	// Submit records an entry and returns the updated top list.
	Submit(e ScoreEntry) ([]ScoreEntry, error)
	Close() error
}

// NormalizeName trims the name, defaults it to DefaultName and caps it at MaxNameLen runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = strings.TrimSpace(string([]rune(name)[:MaxNameLen]))
	}
	return name
}

// expandPath expands a leading ~ and creates the parent directory.
func expandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
