package letterfall

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/letterfall/internal/config"
)

// Spawner creates new letters above the top edge of the field.
// It never touches the active set; the session inserts what it returns.
type Spawner struct {
	rng      *rand.Rand
	alphabet []rune
	field    config.FieldConfig
	nextID   int
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(seed int64, field config.FieldConfig, alphabet string) *Spawner {
	sp := &Spawner{
		alphabet: []rune(alphabet),
		field:    field,
	}
	sp.Reset(seed)
	return sp
}

// Reset reseeds the RNG and restarts ID numbering.
func (sp *Spawner) Reset(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
	sp.nextID = 0
}

// Spawn creates a new falling letter.
// The glyph is uniform over the alphabet (duplicates of on-screen letters allowed)
// and the column is uniform over [margin, width-glyphWidth].
func (sp *Spawner) Spawn() *Letter {
	sp.nextID++

	var ch rune
	if len(sp.alphabet) > 0 {
		ch = sp.alphabet[sp.rng.Intn(len(sp.alphabet))]
	}

	return &Letter{
		ID:     sp.nextID,
		Char:   ch,
		X:      sp.column(),
		Y:      -sp.field.GlyphHeight,
		Status: StatusFalling,
	}
}

// column picks a whole-cell horizontal position.
// A degenerate range (field narrower than margin plus glyph) collapses to the margin.
func (sp *Spawner) column() float64 {
	lo := sp.field.Margin
	hi := sp.field.Width - sp.field.GlyphWidth
	span := int(math.Floor(hi - lo))
	if span <= 0 {
		return lo
	}
	return lo + float64(sp.rng.Intn(span+1))
}
