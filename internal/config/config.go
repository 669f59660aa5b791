// Package config provides YAML/TOML game configuration loading and fixed
// difficulty presets for letterfall.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode"
)

// GameConfig contains every tunable of a letterfall session.
// A session copies it at construction and never mutates it.
type GameConfig struct {
	Field       FieldConfig       `yaml:"field" toml:"field"`
	Motion      MotionConfig      `yaml:"motion" toml:"motion"`
	Spawn       SpawnConfig       `yaml:"spawn" toml:"spawn"`
	Session     SessionConfig     `yaml:"session" toml:"session"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard" toml:"leaderboard"`
}

// FieldConfig defines the play field geometry.
type FieldConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	HitLineY    float64 `yaml:"hit_line_y" toml:"hit_line_y"`
	Margin      float64 `yaml:"margin" toml:"margin"`             // Left spawn margin
	GlyphWidth  float64 `yaml:"glyph_width" toml:"glyph_width"`   // Horizontal extent of a letter
	GlyphHeight float64 `yaml:"glyph_height" toml:"glyph_height"` // Letters spawn this far above the top
}

// MotionConfig defines falling speed and hit judgment tolerance.
type MotionConfig struct {
	FallSpeed      float64 `yaml:"fall_speed" toml:"fall_speed"` // Cells per reference tick
	Tolerance      float64 `yaml:"tolerance" toml:"tolerance"`   // Half-height of the hit band
	HitLingerTicks int     `yaml:"hit_linger_ticks" toml:"hit_linger_ticks"`
}

// SpawnConfig defines the spawn cadence and glyph set.
type SpawnConfig struct {
	IntervalMs int    `yaml:"interval_ms" toml:"interval_ms"`
	Alphabet   string `yaml:"alphabet" toml:"alphabet"`
}

// SessionConfig defines round length.
type SessionConfig struct {
	DurationSeconds int `yaml:"duration_seconds" toml:"duration_seconds"`
}

// LeaderboardConfig defines how many results a leaderboard keeps.
type LeaderboardConfig struct {
	MaxEntries int `yaml:"max_entries" toml:"max_entries"`
}

// Interval returns the spawn interval as a duration.
func (s SpawnConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMs) * time.Millisecond
}

// Runes returns the alphabet as individual symbols.
func (s SpawnConfig) Runes() []rune {
	return []rune(s.Alphabet)
}

// Validate reports every invalid setting, if any.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Field.HitLineY <= 0 || c.Field.HitLineY >= c.Field.Height {
		errs = append(errs, fmt.Errorf("hit_line_y %g must lie inside the field", c.Field.HitLineY))
	}
	if c.Field.Margin < 0 || c.Field.GlyphWidth < 0 || c.Field.GlyphHeight < 0 {
		errs = append(errs, errors.New("margin and glyph sizes must not be negative"))
	}
	if c.Motion.FallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("fall_speed must be positive, got %g", c.Motion.FallSpeed))
	}
	if c.Motion.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("tolerance must not be negative, got %g", c.Motion.Tolerance))
	}
	if c.Motion.HitLingerTicks < 0 {
		errs = append(errs, errors.New("hit_linger_ticks must not be negative"))
	}
	if c.Spawn.IntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("spawn interval_ms must be positive, got %d", c.Spawn.IntervalMs))
	}
	if len(c.Spawn.Runes()) == 0 {
		errs = append(errs, errors.New("spawn alphabet is empty"))
	}
	for _, r := range c.Spawn.Runes() {
		if !unicode.IsLetter(r) || !unicode.IsLower(r) {
			errs = append(errs, fmt.Errorf("spawn alphabet must hold lowercase letters only, got %q", r))
			break
		}
	}
	if c.Session.DurationSeconds < 0 {
		errs = append(errs, errors.New("duration_seconds must not be negative"))
	}
	if c.Leaderboard.MaxEntries <= 0 {
		errs = append(errs, errors.New("leaderboard max_entries must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// Resize fits the field to a w×h screen, keeping the hit line's distance
// from the bottom edge. Non-positive sizes leave the config unchanged.
func (c GameConfig) Resize(w, h int) GameConfig {
	if w <= 0 || h <= 0 {
		return c
	}
	gap := c.Field.Height - c.Field.HitLineY
	c.Field.Width = float64(w)
	c.Field.Height = float64(h)
	c.Field.HitLineY = c.Field.Height - gap
	if c.Field.HitLineY < 1 {
		c.Field.HitLineY = c.Field.Height / 2
	}
	return c
}
