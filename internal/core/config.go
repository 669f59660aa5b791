package core

import "time"

// ReferenceTickRate is the update rate that per-tick speeds are tuned for.
const ReferenceTickRate = 60

// RuntimeConfig contains platform parameters passed to a session at creation.
// The platform fills it from the terminal and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Update ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: ReferenceTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the wall-clock duration of one update tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = ReferenceTickRate
	}
	return time.Second / time.Duration(rate)
}

// TickScale returns how many reference ticks one update tick represents.
// At 30 FPS each tick covers two reference ticks, keeping real-time speed constant.
func (c RuntimeConfig) TickScale() float64 {
	if c.TickRate <= 0 {
		return 1
	}
	return float64(ReferenceTickRate) / float64(c.TickRate)
}
