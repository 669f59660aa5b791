package letterfall

import (
	"strings"
	"testing"

	"github.com/vovakirdan/letterfall/internal/config"
)

func TestSpawnerPlacement(t *testing.T) {
	field := config.DefaultGameConfig().Field
	sp := NewSpawner(7, field, config.Alphabet)

	lo := field.Margin
	hi := field.Width - field.GlyphWidth
	for i := 0; i < 1000; i++ {
		l := sp.Spawn()
		if l.X < lo || l.X > hi {
			t.Fatalf("spawn %d: X = %g, want within [%g, %g]", i, l.X, lo, hi)
		}
		if l.Y != -field.GlyphHeight {
			t.Fatalf("spawn %d: Y = %g, want %g", i, l.Y, -field.GlyphHeight)
		}
		if !strings.ContainsRune(config.Alphabet, l.Char) {
			t.Fatalf("spawn %d: Char %q not in alphabet", i, l.Char)
		}
		if l.Status != StatusFalling {
			t.Fatalf("spawn %d: Status = %v, want Falling", i, l.Status)
		}
		if l.ID != i+1 {
			t.Fatalf("spawn %d: ID = %d, want %d", i, l.ID, i+1)
		}
	}
}

func TestSpawnerDegenerateRange(t *testing.T) {
	tests := []struct {
		name  string
		width float64
	}{
		{"narrower than margins", 3},
		{"zero width", 0},
		{"negative range", -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := config.FieldConfig{Width: tt.width, Height: 24, Margin: 2, GlyphWidth: 1, GlyphHeight: 1}
			sp := NewSpawner(1, field, "ab")
			for i := 0; i < 50; i++ {
				if x := sp.Spawn().X; x != field.Margin {
					t.Fatalf("X = %g, want margin %g", x, field.Margin)
				}
			}
		})
	}

	// Range of exactly one cell is still valid
	field := config.FieldConfig{Width: 3, Height: 24, Margin: 2, GlyphWidth: 1}
	sp := NewSpawner(1, field, "a")
	for i := 0; i < 20; i++ {
		if x := sp.Spawn().X; x != 2 {
			t.Fatalf("X = %g, want 2", x)
		}
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	field := config.DefaultGameConfig().Field
	a := NewSpawner(99, field, config.Alphabet)
	b := NewSpawner(99, field, config.Alphabet)

	for i := 0; i < 200; i++ {
		la, lb := a.Spawn(), b.Spawn()
		if la.Char != lb.Char || la.X != lb.X {
			t.Fatalf("spawn %d differs: %q@%g vs %q@%g", i, la.Char, la.X, lb.Char, lb.X)
		}
	}

	// Reset replays the same sequence
	first := NewSpawner(5, field, config.Alphabet).Spawn()
	a.Reset(5)
	again := a.Spawn()
	if again.Char != first.Char || again.X != first.X || again.ID != 1 {
		t.Errorf("after Reset: %+v, want %+v", again, first)
	}
}
