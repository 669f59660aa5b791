package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/games/letterfall"
)

var statusColors = map[letterfall.Status]core.Color{
	letterfall.StatusFalling: core.ColorWhite,
	letterfall.StatusHit:     core.ColorGreen,
	letterfall.StatusMissed:  core.ColorRed,
}

// DrawField renders a session snapshot: the band, the hit line, the letters and the HUD.
// An ended snapshot also gets a centered result banner.
// last is the most recent keypress judgment, shown as feedback next to the HUD.
func DrawField(s *core.Screen, snap letterfall.Snapshot, last letterfall.Judgment) {
	s.Clear()
	w := s.Width()

	line := int(math.Floor(snap.HitLineY))
	top := int(math.Floor(snap.HitLineY - snap.Tolerance))
	bottom := int(math.Floor(snap.HitLineY + snap.Tolerance))
	for y := top; y <= bottom; y++ {
		if y == line {
			continue
		}
		s.SetColored(0, y, '┆', core.ColorGray)
		s.SetColored(w-1, y, '┆', core.ColorGray)
	}
	s.DrawHLine(0, line, w, '─', core.ColorCyan)

	for _, l := range snap.Letters {
		y := int(math.Floor(l.Y))
		if y < 0 || y >= s.Height() {
			continue
		}
		x := core.Clamp(int(l.X), 0, w-1)
		s.SetColored(x, y, l.Char, statusColors[l.Status])
	}

	drawHUD(s, snap, last)
	if snap.Phase == letterfall.PhaseEnded {
		banner := "ROUND ENDED"
		if snap.TimeRemaining == 0 {
			banner = "TIME UP"
		}
		drawBanner(s, banner, fmt.Sprintf("Final Score: %d", snap.Score))
	}
}

// drawBanner boxes two centered lines in the middle of the field.
func drawBanner(s *core.Screen, title, detail string) {
	w := max(len(title), len(detail)) + 6
	box := s.Bounds().Centered(w, 4)
	s.DrawRect(box, ' ')
	s.DrawBox(box, core.ColorGray)
	s.DrawTextCentered(box.Y+1, title, core.ColorMagenta)
	s.DrawTextCentered(box.Y+2, detail, core.ColorWhite)
}

// drawHUD writes the counters on the top row, over any letter that is still entering.
func drawHUD(s *core.Screen, snap letterfall.Snapshot, last letterfall.Judgment) {
	s.DrawHLine(0, 0, s.Width(), ' ', core.ColorDefault)

	hud := fmt.Sprintf("Score: %d  Misses: %d", snap.Score, snap.Misses)
	s.DrawText(1, 0, hud, core.ColorWhite)

	x := len(hud) + 3
	if snap.Combo > 0 {
		combo := fmt.Sprintf("Combo: %d", snap.Combo)
		s.DrawText(x, 0, combo, core.ColorYellow)
		x += len(combo) + 2
	}
	switch last.Kind {
	case letterfall.JudgeHit:
		s.DrawText(x, 0, fmt.Sprintf("+%d", last.Points), core.ColorGreen)
	case letterfall.JudgeMiss:
		s.DrawText(x, 0, "miss", core.ColorRed)
	}

	s.DrawTextRight(0, 1, fmt.Sprintf("Time: %d", snap.TimeRemaining), core.ColorCyan)
}
