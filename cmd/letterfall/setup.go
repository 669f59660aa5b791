package main

import (
	"fmt"

	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/storage"
)

// Leaderboard backends selectable with --board.
const (
	boardSQLite = "sqlite"
	boardJSON   = "json"
)

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	cfg = config.ApplyPreset(cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openBoard opens the leaderboard selected by the global flags.
func openBoard(maxEntries int) (storage.Leaderboard, error) {
	switch flagBoard {
	case boardSQLite, "":
		store, err := storage.Open(flagDBPath, maxEntries)
		if err != nil {
			return nil, err
		}
		return store, nil
	case boardJSON:
		board, err := storage.OpenFile(flagBoardFile, maxEntries)
		if err != nil {
			return nil, err
		}
		return board, nil
	default:
		return nil, fmt.Errorf("unknown leaderboard backend %q (want %s or %s)", flagBoard, boardSQLite, boardJSON)
	}
}
