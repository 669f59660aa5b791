package letterfall

// Status is the resolution state of a falling letter.
// It only ever moves from StatusFalling to exactly one of the resolved states.
type Status int

const (
	StatusFalling Status = iota
	StatusHit
	StatusMissed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusFalling:
		return "Falling"
	case StatusHit:
		return "Hit"
	case StatusMissed:
		return "Missed"
	default:
		return "Unknown"
	}
}

// Letter is a single falling symbol.
type Letter struct {
	ID      int     // Spawn sequence number, unique per session
	Char    rune    // Lowercase symbol, immutable after spawn
	X       float64 // Horizontal position, fixed at spawn
	Y       float64 // Vertical position, grows downward
	Status  Status
	HitTick uint64 // Update tick at which the letter was hit
}

// Resolved reports whether the letter has been hit or missed.
func (l *Letter) Resolved() bool {
	return l.Status != StatusFalling
}

// hit resolves the letter as Hit. Returns false if it was already resolved.
func (l *Letter) hit(tick uint64) bool {
	if l.Resolved() {
		return false
	}
	l.Status = StatusHit
	l.HitTick = tick
	return true
}

// miss resolves the letter as Missed. Returns false if it was already resolved.
func (l *Letter) miss() bool {
	if l.Resolved() {
		return false
	}
	l.Status = StatusMissed
	return true
}
