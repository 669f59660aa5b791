package config

import (
	_ "embed"
)

//go:embed defaults/letterfall.yaml
var defaultLetterfallYAML []byte

// Alphabet is the standard glyph set: the 26 lowercase latin letters.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// DefaultGameConfig returns the hardcoded default configuration.
// It mirrors the embedded YAML and is used when the embed cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:       80,
			Height:      24,
			HitLineY:    20,
			Margin:      2,
			GlyphWidth:  1,
			GlyphHeight: 1,
		},
		Motion: MotionConfig{
			FallSpeed:      0.12,
			Tolerance:      1.0,
			HitLingerTicks: 15,
		},
		Spawn: SpawnConfig{
			IntervalMs: 500,
			Alphabet:   Alphabet,
		},
		Session: SessionConfig{
			DurationSeconds: 60,
		},
		Leaderboard: LeaderboardConfig{
			MaxEntries: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultLetterfallYAML
}
