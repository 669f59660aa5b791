package letterfall

import "github.com/vovakirdan/letterfall/internal/config"

// Field holds the vertical geometry and motion rules shared by the motion
// step and the judgment engine.
type Field struct {
	Height    float64
	HitLineY  float64
	Tolerance float64
	FallSpeed float64 // Cells per reference tick
	HitLinger uint64  // Update ticks a hit letter stays visible
}

// NewField extracts motion rules from a game config.
func NewField(cfg config.GameConfig) Field {
	return Field{
		Height:    cfg.Field.Height,
		HitLineY:  cfg.Field.HitLineY,
		Tolerance: cfg.Motion.Tolerance,
		FallSpeed: cfg.Motion.FallSpeed,
		HitLinger: uint64(cfg.Motion.HitLingerTicks),
	}
}

// InBand reports whether y is within tolerance of the hit line (inclusive).
func (f Field) InBand(y float64) bool {
	d := y - f.HitLineY
	if d < 0 {
		d = -d
	}
	return d <= f.Tolerance
}

// PastBand reports whether y is strictly below the tolerance band.
func (f Field) PastBand(y float64) bool {
	return y > f.HitLineY+f.Tolerance
}

// Advance moves letters by dtTicks reference ticks, flags letters that left the
// band unresolved as Missed and drops letters that are gone.
// It returns the surviving letters (in spawn order, reusing the backing array)
// and the number of new automatic misses.
//
// Hit letters stop where they were struck and are dropped after HitLinger ticks,
// so they leave the field without ever reaching the bottom edge. Earlier
// versions of the game never dropped them and left them piled on the hit line.
// Missed letters keep falling until they pass the bottom edge.
func (f Field) Advance(letters []*Letter, dtTicks float64, tick uint64) ([]*Letter, int) {
	step := f.FallSpeed * dtTicks
	for _, l := range letters {
		if l.Status != StatusHit {
			l.Y += step
		}
	}

	missed := 0
	for _, l := range letters {
		if l.Status == StatusFalling && f.PastBand(l.Y) && l.miss() {
			missed++
		}
	}

	kept := letters[:0]
	for _, l := range letters {
		if l.Y > f.Height {
			continue
		}
		if l.Status == StatusHit && tick-l.HitTick >= f.HitLinger {
			continue
		}
		kept = append(kept, l)
	}
	// Clear the tail so dropped letters can be collected
	for i := len(kept); i < len(letters); i++ {
		letters[i] = nil
	}

	return kept, missed
}
