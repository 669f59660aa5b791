package letterfall

import (
	"testing"

	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Session.DurationSeconds = 3
	rt := core.DefaultConfig()
	rt.Seed = 42
	return NewSession(cfg, rt)
}

// place inserts a letter directly into the active set.
func place(s *Session, ch rune, y float64) *Letter {
	l := s.spawner.Spawn()
	l.Char = ch
	l.Y = y
	s.letters = append(s.letters, l)
	return l
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestSession(t)
	if s.Phase() != PhaseIdle {
		t.Fatalf("initial phase = %v, want Idle", s.Phase())
	}

	// Signals before Start do nothing
	s.SpawnTick()
	s.UpdateTick()
	s.CountdownTick()
	if j := s.KeyPress("a"); j.Kind != JudgeIgnored {
		t.Errorf("KeyPress while idle = %v, want Ignored", j.Kind)
	}
	if n := len(s.Snapshot().Letters); n != 0 || s.Misses() != 0 || s.TimeRemaining() != 3 {
		t.Fatalf("idle session mutated: letters=%d misses=%d time=%d", n, s.Misses(), s.TimeRemaining())
	}
	if s.Abort() {
		t.Error("Abort succeeded from Idle")
	}

	if !s.Start() {
		t.Fatal("Start from Idle returned false")
	}
	if s.Start() {
		t.Error("second Start returned true")
	}
	if s.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want Playing", s.Phase())
	}

	s.CountdownTick()
	s.CountdownTick()
	if s.TimeRemaining() != 1 || s.Phase() != PhasePlaying {
		t.Fatalf("time=%d phase=%v, want 1 Playing", s.TimeRemaining(), s.Phase())
	}
	s.CountdownTick()
	if s.Phase() != PhaseEnded {
		t.Fatalf("phase = %v, want Ended", s.Phase())
	}
	if s.Start() {
		t.Error("Start from Ended returned true")
	}

	res, ok := s.Result()
	if !ok || res.Reason != EndTimeUp {
		t.Errorf("Result = %+v, %v; want EndTimeUp", res, ok)
	}
}

func TestIdempotentTermination(t *testing.T) {
	s := newTestSession(t)
	fired := 0
	var got Result
	s.OnEnd(func(r Result) {
		fired++
		got = r
	})
	s.Start()
	place(s, 'a', s.field.HitLineY)
	s.KeyPress("a")

	for i := 0; i < 10; i++ {
		s.CountdownTick()
	}
	if fired != 1 {
		t.Fatalf("terminal event fired %d times, want 1", fired)
	}
	if got.Score != 10 {
		t.Errorf("payload score = %d, want 10", got.Score)
	}

	before := s.Snapshot()
	s.CountdownTick()
	s.UpdateTick()
	s.SpawnTick()
	s.KeyPress("a")
	s.KeyPress("q")
	if s.Abort() {
		t.Error("Abort succeeded after end")
	}
	after := s.Snapshot()

	if fired != 1 {
		t.Errorf("terminal event fired again: %d", fired)
	}
	if after.Score != before.Score || after.Misses != before.Misses || after.Tick != before.Tick ||
		after.TimeRemaining != 0 || len(after.Letters) != len(before.Letters) {
		t.Errorf("state changed after end: %+v -> %+v", before, after)
	}
}

func TestEndToEndScenario(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	a := place(s, 'a', s.field.HitLineY)
	j := s.KeyPress("a")
	if j.Kind != JudgeHit || j.LetterID != a.ID || j.Points != 10 {
		t.Fatalf("Judgment = %+v, want hit on %d for 10", j, a.ID)
	}
	if s.Score() != 10 || s.Combo() != 1 || a.Status != StatusHit {
		t.Fatalf("score=%d combo=%d status=%v, want 10 1 Hit", s.Score(), s.Combo(), a.Status)
	}

	b := place(s, 'b', s.field.HitLineY+s.field.Tolerance)
	s.UpdateTick()
	if b.Status != StatusMissed {
		t.Fatalf("b status = %v, want Missed", b.Status)
	}
	if s.Misses() != 1 || s.Combo() != 0 || s.Score() != 10 {
		t.Errorf("misses=%d combo=%d score=%d, want 1 0 10", s.Misses(), s.Combo(), s.Score())
	}
	if a.Status != StatusHit {
		t.Errorf("hit letter changed status: %v", a.Status)
	}
}

func TestFailedKeypress(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	place(s, 'a', s.field.HitLineY)
	s.KeyPress("a")
	far := place(s, 'c', 2)

	j := s.KeyPress("c")
	if j.Kind != JudgeMiss {
		t.Fatalf("Kind = %v, want Miss", j.Kind)
	}
	if s.Misses() != 1 || s.Combo() != 0 || s.Score() != 10 {
		t.Errorf("misses=%d combo=%d score=%d, want 1 0 10", s.Misses(), s.Combo(), s.Score())
	}
	if far.Status != StatusFalling {
		t.Errorf("letter outside band resolved: %v", far.Status)
	}
}

func TestMalformedKeypressIgnored(t *testing.T) {
	s := newTestSession(t)
	s.Start()
	place(s, 'a', s.field.HitLineY)
	s.KeyPress("a")

	for _, key := range []string{"", "ab", "1", "esc", " "} {
		if j := s.KeyPress(key); j.Kind != JudgeIgnored {
			t.Errorf("KeyPress(%q) = %v, want Ignored", key, j.Kind)
		}
	}
	if s.Misses() != 0 || s.Combo() != 1 {
		t.Errorf("malformed input changed state: misses=%d combo=%d", s.Misses(), s.Combo())
	}
}

func TestUppercaseKeyHits(t *testing.T) {
	s := newTestSession(t)
	s.Start()
	place(s, 'k', s.field.HitLineY)

	if j := s.KeyPress("K"); j.Kind != JudgeHit {
		t.Errorf("KeyPress(K) = %v, want Hit", j.Kind)
	}
}

func TestSessionTieBreak(t *testing.T) {
	s := newTestSession(t)
	s.Start()
	upper := place(s, 'a', s.field.HitLineY-0.5)
	lower := place(s, 'a', s.field.HitLineY+0.5)

	s.KeyPress("a")
	if lower.Status != StatusHit || upper.Status != StatusFalling {
		t.Errorf("lower=%v upper=%v, want Hit and Falling", lower.Status, upper.Status)
	}
}

func TestAbort(t *testing.T) {
	s := newTestSession(t)
	var reasons []EndReason
	s.OnEnd(func(r Result) { reasons = append(reasons, r.Reason) })

	s.Start()
	if !s.Abort() {
		t.Fatal("Abort from Playing returned false")
	}
	s.CountdownTick()
	s.CountdownTick()
	s.CountdownTick()

	if len(reasons) != 1 || reasons[0] != EndAborted {
		t.Errorf("reasons = %v, want [aborted]", reasons)
	}
}

func TestReset(t *testing.T) {
	s := newTestSession(t)
	fired := 0
	s.OnEnd(func(Result) { fired++ })

	s.Start()
	place(s, 'a', s.field.HitLineY)
	s.KeyPress("a")
	s.Abort()

	rt := core.DefaultConfig()
	rt.Seed = 42
	s.Reset(rt)
	if s.Phase() != PhaseIdle || s.Score() != 0 || len(s.Snapshot().Letters) != 0 {
		t.Fatalf("Reset left state behind: %+v", s.Snapshot())
	}
	if _, ok := s.Result(); ok {
		t.Error("Result still present after Reset")
	}

	s.Start()
	s.Abort()
	if fired != 2 {
		t.Errorf("observer fired %d times across two sessions, want 2", fired)
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	keys := "abcdefghijklmnopqrstuvwxyz"
	prevScore, prevMisses := 0, 0
	for i := 0; i < 5000; i++ {
		if i%30 == 0 {
			s.SpawnTick()
		}
		s.UpdateTick()
		if i%7 == 0 {
			s.KeyPress(string(keys[i%len(keys)]))
		}

		if s.Score() < prevScore {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prevScore, s.Score())
		}
		if s.Misses() < prevMisses {
			t.Fatalf("tick %d: misses decreased %d -> %d", i, prevMisses, s.Misses())
		}
		if s.Score() != prevScore && s.Combo() == 0 {
			t.Fatalf("tick %d: score changed without a hit", i)
		}
		prevScore, prevMisses = s.Score(), s.Misses()
	}

	snap := s.Snapshot()
	if snap.BestCombo < snap.Combo {
		t.Errorf("BestCombo %d below Combo %d", snap.BestCombo, snap.Combo)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(t)
		s.Start()
		for i := 0; i < 600; i++ {
			if i%30 == 0 {
				s.SpawnTick()
			}
			s.UpdateTick()
			if i%5 == 0 {
				s.KeyPress(string(rune('a' + i%26)))
			}
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Misses != b.Misses || a.Tick != b.Tick {
		t.Fatalf("counters differ: %+v vs %+v", a, b)
	}
	if len(a.Letters) != len(b.Letters) {
		t.Fatalf("letter count differs: %d vs %d", len(a.Letters), len(b.Letters))
	}
	for i := range a.Letters {
		if a.Letters[i] != b.Letters[i] {
			t.Errorf("letter %d differs: %+v vs %+v", i, a.Letters[i], b.Letters[i])
		}
	}
}

func TestTickRateScaling(t *testing.T) {
	fall := func(rate, ticks int) float64 {
		cfg := config.DefaultGameConfig()
		rt := core.DefaultConfig()
		rt.TickRate = rate
		s := NewSession(cfg, rt)
		s.Start()
		l := place(s, 'a', 0)
		for i := 0; i < ticks; i++ {
			s.UpdateTick()
		}
		return l.Y
	}

	// One second of play at either rate covers the same distance
	y60 := fall(60, 60)
	y30 := fall(30, 30)
	if d := y60 - y30; d > 1e-9 || d < -1e-9 {
		t.Errorf("fall after 1s: 60fps=%g 30fps=%g", y60, y30)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := newTestSession(t)
	s.Start()
	place(s, 'a', 3)

	snap := s.Snapshot()
	snap.Letters[0].Y = 99
	if s.letters[0].Y != 3 {
		t.Errorf("snapshot aliases session letters")
	}
	if snap.HitLineY != s.cfg.Field.HitLineY || snap.Tolerance != s.cfg.Motion.Tolerance {
		t.Errorf("snapshot geometry = %g/%g", snap.HitLineY, snap.Tolerance)
	}
}
