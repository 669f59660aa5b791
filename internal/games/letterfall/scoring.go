package letterfall

const (
	// BasePoints is awarded for a hit below the first combo tier.
	BasePoints = 10
	// ComboTier is how many consecutive hits raise the bonus by one step.
	ComboTier = 10
)

// Points returns the score for a hit given the combo before that hit.
// combo 0-9 -> 10, 10-19 -> 20, 20-29 -> 30 and so on without a cap.
func Points(comboBefore int) int {
	if comboBefore < 0 {
		comboBefore = 0
	}
	return BasePoints * (1 + comboBefore/ComboTier)
}

// Tally is the score and combo state of a session.
// Score only grows on Hit; any miss clears Combo.
type Tally struct {
	Score     int
	Misses    int
	Hits      int
	Combo     int
	BestCombo int
}

// Hit records a successful hit and returns the points awarded.
func (t *Tally) Hit() int {
	pts := Points(t.Combo)
	t.Score += pts
	t.Hits++
	t.Combo++
	t.BestCombo = max(t.BestCombo, t.Combo)
	return pts
}

// Miss records a miss of either kind.
func (t *Tally) Miss() {
	t.Misses++
	t.Combo = 0
}
