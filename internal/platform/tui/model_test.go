package tui

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/games/letterfall"
	"github.com/vovakirdan/letterfall/internal/storage"
)

// memBoard is an in-memory leaderboard that counts submissions.
type memBoard struct {
	mu      sync.Mutex
	entries []storage.ScoreEntry
	submits int
}

func (b *memBoard) Top(limit int) ([]storage.ScoreEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]storage.ScoreEntry(nil), b.entries...), nil
}

func (b *memBoard) Submit(e storage.ScoreEntry) ([]storage.ScoreEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.submits++
	e.Name = storage.NormalizeName(e.Name)
	b.entries = append(b.entries, e)
	return append([]storage.ScoreEntry(nil), b.entries...), nil
}

func (b *memBoard) Close() error { return nil }

func newTestModel(t *testing.T, board storage.Leaderboard) Model {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Session.DurationSeconds = 2
	rt := core.DefaultConfig()
	rt.Seed = 7

	m := NewModel(Options{Game: cfg, Runtime: rt, Board: board, Player: "ann"})
	m.Init()
	return m
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelStartsPlaying(t *testing.T) {
	m := newTestModel(t, nil)
	if m.screen != screenPlaying || m.session.Phase() != letterfall.PhasePlaying {
		t.Fatalf("screen=%d phase=%v, want playing", m.screen, m.session.Phase())
	}

	m = send(m, TickMsg{Kind: TickSpawn, Gen: m.gen})
	m = send(m, TickMsg{Kind: TickUpdate, Gen: m.gen})
	snap := m.session.Snapshot()
	if len(snap.Letters) != 1 || snap.Tick != 1 {
		t.Errorf("letters=%d tick=%d, want 1 and 1", len(snap.Letters), snap.Tick)
	}
	if got := m.View(); got == "" {
		t.Error("empty playing view")
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(m, TickMsg{Kind: TickSpawn, Gen: m.gen + 1})
	m = send(m, TickMsg{Kind: TickUpdate, Gen: m.gen - 1})
	snap := m.session.Snapshot()
	if len(snap.Letters) != 0 || snap.Tick != 0 {
		t.Errorf("stale ticks applied: letters=%d tick=%d", len(snap.Letters), snap.Tick)
	}
}

func TestModelCountdownEndsRound(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(TickMsg{Kind: TickCountdown, Gen: m.gen})
	m = next.(Model)
	if cmd == nil || m.screen != screenPlaying {
		t.Fatalf("first countdown should re-arm and keep playing")
	}

	m = send(m, TickMsg{Kind: TickCountdown, Gen: m.gen})
	if m.screen != screenGameOver {
		t.Fatalf("screen = %d, want game over", m.screen)
	}
	if m.result.Reason != letterfall.EndTimeUp {
		t.Errorf("Reason = %v, want time up", m.result.Reason)
	}

	// Signals of the ended round are not re-armed
	if _, cmd := m.Update(TickMsg{Kind: TickUpdate, Gen: m.gen}); cmd != nil {
		t.Error("update tick re-armed after end")
	}
}

func TestModelSaveOnce(t *testing.T) {
	board := &memBoard{}
	m := newTestModel(t, board)

	m = send(m, runes("z"))
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenGameOver || m.result.Reason != letterfall.EndAborted {
		t.Fatalf("esc: screen=%d reason=%v", m.screen, m.result.Reason)
	}
	if m.name.Value() != "ann" {
		t.Errorf("name prefilled with %q, want ann", m.name.Value())
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScores {
		t.Fatalf("screen = %d, want scores", m.screen)
	}
	if board.submits != 1 || len(m.scores) != 1 || m.scores[0].Name != "ann" {
		t.Fatalf("submits=%d scores=%+v", board.submits, m.scores)
	}
	if m.scores[0].Misses != 1 {
		t.Errorf("saved misses = %d, want 1", m.scores[0].Misses)
	}

	m.saveResult("again")
	if board.submits != 1 {
		t.Errorf("result saved twice")
	}
}

func TestModelSkipDoesNotSave(t *testing.T) {
	board := &memBoard{}
	m := newTestModel(t, board)

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenScores || board.submits != 0 {
		t.Errorf("screen=%d submits=%d, want scores with no submit", m.screen, board.submits)
	}
}

func TestModelPlayAgain(t *testing.T) {
	m := newTestModel(t, &memBoard{})
	first := m.session
	gen := m.gen

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	next, cmd := m.Update(runes("r"))
	m = next.(Model)

	if m.session == first || m.gen != gen+1 {
		t.Fatalf("play again did not create a new round")
	}
	if cmd == nil || m.session.Phase() != letterfall.PhasePlaying || m.screen != screenPlaying {
		t.Errorf("new round not started: phase=%v screen=%d", m.session.Phase(), m.screen)
	}

	// Ticks from the previous round are ignored
	m = send(m, TickMsg{Kind: TickSpawn, Gen: gen})
	if n := len(m.session.Snapshot().Letters); n != 0 {
		t.Errorf("old generation spawned %d letters", n)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)

	if cmd == nil || !m.quitting {
		t.Fatal("ctrl+c did not quit")
	}
	if m.session.Phase() != letterfall.PhaseEnded {
		t.Errorf("phase = %v, want Ended", m.session.Phase())
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelFieldLeavesHelpRow(t *testing.T) {
	m := newTestModel(t, nil)
	snap := m.session.Snapshot()
	if snap.FieldHeight != 23 || snap.FieldWidth != 80 {
		t.Errorf("field = %gx%g, want 80x23", snap.FieldWidth, snap.FieldHeight)
	}
	if snap.HitLineY != 19 {
		t.Errorf("hit line = %g, want 19", snap.HitLineY)
	}
}
