package letterfall

// LetterView is a read-only copy of a letter for rendering.
type LetterView struct {
	ID     int
	Char   rune
	X      float64
	Y      float64
	Status Status
}

// Snapshot captures session state for renderers and determinism tests.
// It shares nothing with the session.
type Snapshot struct {
	Phase         Phase
	Tick          uint64
	Score         int
	Misses        int
	Hits          int
	Combo         int
	BestCombo     int
	TimeRemaining int
	Letters       []LetterView

	FieldWidth  float64
	FieldHeight float64
	HitLineY    float64
	Tolerance   float64
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	letters := make([]LetterView, len(s.letters))
	for i, l := range s.letters {
		letters[i] = LetterView{
			ID:     l.ID,
			Char:   l.Char,
			X:      l.X,
			Y:      l.Y,
			Status: l.Status,
		}
	}

	return Snapshot{
		Phase:         s.phase,
		Tick:          s.tick,
		Score:         s.tally.Score,
		Misses:        s.tally.Misses,
		Hits:          s.tally.Hits,
		Combo:         s.tally.Combo,
		BestCombo:     s.tally.BestCombo,
		TimeRemaining: s.timeRemaining,
		Letters:       letters,
		FieldWidth:    s.cfg.Field.Width,
		FieldHeight:   s.cfg.Field.Height,
		HitLineY:      s.cfg.Field.HitLineY,
		Tolerance:     s.cfg.Motion.Tolerance,
	}
}
