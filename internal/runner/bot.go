package runner

import (
	"context"
	"math/rand"
	"time"

	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/games/letterfall"
)

// Bot plays a running session by polling snapshots and striking letters in the band.
type Bot struct {
	Accuracy float64       // Probability of pressing the right key
	Poll     time.Duration // Delay between looks at the field
	rng      *rand.Rand
}

// NewBot creates a seeded bot. Accuracy is clamped to [0, 1].
func NewBot(seed int64, accuracy float64, poll time.Duration) *Bot {
	accuracy = core.ClampF(accuracy, 0, 1)
	if poll <= 0 {
		poll = 10 * time.Millisecond
	}
	return &Bot{
		Accuracy: accuracy,
		Poll:     poll,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Play presses keys until the session ends or ctx is cancelled.
func (b *Bot) Play(ctx context.Context, r *Runner) {
	ticker := time.NewTicker(b.Poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.Done():
			return
		case <-ticker.C:
			b.look(r)
		}
	}
}

// look strikes every eligible letter visible in one snapshot.
func (b *Bot) look(r *Runner) {
	snap := r.Snapshot()
	if snap.Phase != letterfall.PhasePlaying {
		return
	}

	for _, l := range snap.Letters {
		if l.Status != letterfall.StatusFalling {
			continue
		}
		d := l.Y - snap.HitLineY
		if d < -snap.Tolerance || d > snap.Tolerance {
			continue
		}

		key := l.Char
		if b.rng.Float64() >= b.Accuracy {
			key = b.wrongKey(snap)
		}
		r.KeyPress(string(key))
	}
}

// wrongKey picks a letter that matches nothing currently falling.
func (b *Bot) wrongKey(snap letterfall.Snapshot) rune {
	taken := make(map[rune]bool, len(snap.Letters))
	for _, l := range snap.Letters {
		taken[l.Char] = true
	}
	for i := 0; i < 26; i++ {
		c := rune('a' + (b.rng.Intn(26)+i)%26)
		if !taken[c] {
			return c
		}
	}
	return 'a'
}
