package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only choose different fixed values; nothing changes during a round.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset returns a copy of cfg adjusted for the given preset.
func ApplyPreset(cfg GameConfig, preset DifficultyPreset) GameConfig {
	switch preset {
	case DifficultyEasy:
		cfg.Motion.FallSpeed *= 0.75
		cfg.Motion.Tolerance *= 1.5
		cfg.Spawn.IntervalMs = cfg.Spawn.IntervalMs * 7 / 5
	case DifficultyHard:
		cfg.Motion.FallSpeed *= 1.35
		cfg.Motion.Tolerance *= 0.75
		cfg.Spawn.IntervalMs = cfg.Spawn.IntervalMs * 4 / 5
	}
	return cfg
}
