package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
)

// FileBoard keeps the top results in a JSON file of {"name", "score"} records.
// The file is re-read on every call so several processes can share it.
type FileBoard struct {
	mu         sync.Mutex
	path       string
	maxEntries int
}

// OpenFile prepares a JSON leaderboard at path holding at most maxEntries results.
// The file itself is created on the first Submit.
func OpenFile(path string, maxEntries int) (*FileBoard, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	if maxEntries <= 0 {
		maxEntries = 5
	}
	return &FileBoard{path: path, maxEntries: maxEntries}, nil
}

// Path returns the resolved file location.
func (b *FileBoard) Path() string {
	return b.path
}

// Top returns up to limit entries. A missing, unreadable or corrupt file is an empty board.
func (b *FileBoard) Top(limit int) ([]ScoreEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.load()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Submit inserts an entry, keeps the best maxEntries and rewrites the file.
// Equal scores keep their earlier position.
func (b *FileBoard) Submit(e ScoreEntry) ([]ScoreEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := append(b.load(), ScoreEntry{Name: NormalizeName(e.Name), Score: e.Score})
	rank(entries)
	if len(entries) > b.maxEntries {
		entries = entries[:b.maxEntries]
	}

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode leaderboard: %w", err)
	}
	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return nil, fmt.Errorf("storage: cannot write leaderboard: %w", err)
	}
	return entries, nil
}

// Clear removes the leaderboard file.
func (b *FileBoard) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := os.Remove(b.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot clear leaderboard: %w", err)
	}
	return nil
}

// Close is a no-op; the file is closed after every access.
func (b *FileBoard) Close() error {
	return nil
}

func (b *FileBoard) load() []ScoreEntry {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil
	}
	var entries []ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	rank(entries)
	return entries
}

// rank orders entries by score, highest first, keeping the order of ties.
func rank(entries []ScoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}

var _ Leaderboard = (*FileBoard)(nil)
