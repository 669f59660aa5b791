// Package letterfall implements the gameplay engine of a falling-letter typing game.
// Letters fall toward a hit line; the player strikes the matching key while a
// letter is inside the tolerance band around that line.
//
// The engine is driven by discrete events: three periodic ticks (update, spawn,
// countdown) and keypresses. It neither draws nor reads input devices; renderers
// read Snapshot. A Session is not safe for concurrent use; callers running it
// from several goroutines must serialize every method call.
package letterfall

import (
	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePlaying:
		return "Playing"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// EndReason describes why a session ended.
type EndReason int

const (
	EndTimeUp  EndReason = iota // Countdown reached zero
	EndAborted                  // Player abandoned the round
)

// String returns a human-readable name for the end reason.
func (r EndReason) String() string {
	switch r {
	case EndTimeUp:
		return "time up"
	case EndAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result is the immutable payload of the terminal event.
type Result struct {
	Score     int
	Misses    int
	Hits      int
	BestCombo int
	Reason    EndReason
	Ticks     uint64 // Update ticks played
}

// Session owns one round: its letters, counters and lifecycle.
type Session struct {
	cfg     config.GameConfig
	rt      core.RuntimeConfig
	field   Field
	spawner *Spawner

	letters       []*Letter
	tally         Tally
	timeRemaining int
	phase         Phase
	tick          uint64

	result    *Result
	observers []func(Result)
}

// NewSession creates an idle session. cfg is copied and never changes.
func NewSession(cfg config.GameConfig, rt core.RuntimeConfig) *Session {
	s := &Session{
		cfg:     cfg,
		field:   NewField(cfg),
		spawner: NewSpawner(rt.Seed, cfg.Field, cfg.Spawn.Alphabet),
	}
	s.Reset(rt)
	return s
}

// OnEnd registers an observer of the terminal event.
// Observers run synchronously inside the call that ends the session.
func (s *Session) OnEnd(fn func(Result)) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

// Reset returns the session to Idle with a fresh RNG, discarding all state.
// Registered observers are kept.
func (s *Session) Reset(rt core.RuntimeConfig) {
	s.rt = rt
	s.spawner.Reset(rt.Seed)
	s.letters = nil
	s.tally = Tally{}
	s.timeRemaining = s.cfg.Session.DurationSeconds
	s.phase = PhaseIdle
	s.tick = 0
	s.result = nil
}

// Start enters Playing from Idle. Returns false (and does nothing) otherwise.
func (s *Session) Start() bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.letters = nil
	s.tally = Tally{}
	s.timeRemaining = s.cfg.Session.DurationSeconds
	s.tick = 0
	s.phase = PhasePlaying
	return true
}

// Abort ends a Playing session early. Returns false if it was not playing.
func (s *Session) Abort() bool {
	if s.phase != PhasePlaying {
		return false
	}
	s.end(EndAborted)
	return true
}

// UpdateTick advances motion and detects automatic misses.
// The step scales with the tick rate so real-time fall speed is constant.
func (s *Session) UpdateTick() {
	if s.phase != PhasePlaying {
		return
	}
	s.tick++

	var missed int
	s.letters, missed = s.field.Advance(s.letters, s.rt.TickScale(), s.tick)
	for i := 0; i < missed; i++ {
		s.tally.Miss()
	}
}

// SpawnTick adds one new letter to the field.
func (s *Session) SpawnTick() {
	if s.phase != PhasePlaying {
		return
	}
	s.letters = append(s.letters, s.spawner.Spawn())
}

// CountdownTick removes one second; reaching zero ends the session.
// Ticks delivered after the end are no-ops.
func (s *Session) CountdownTick() {
	if s.phase != PhasePlaying {
		return
	}
	if s.timeRemaining > 0 {
		s.timeRemaining--
	}
	if s.timeRemaining == 0 {
		s.end(EndTimeUp)
	}
}

// KeyPress judges a key against the live letters.
// Malformed keys are ignored without counting as a miss.
func (s *Session) KeyPress(key string) Judgment {
	sym, ok := NormalizeKey(key)
	if !ok || s.phase != PhasePlaying {
		return Judgment{Kind: JudgeIgnored}
	}

	target := s.field.Target(s.letters, sym)
	if target == nil {
		s.tally.Miss()
		return Judgment{Kind: JudgeMiss, Key: sym}
	}

	target.hit(s.tick)
	pts := s.tally.Hit()
	return Judgment{Kind: JudgeHit, Key: sym, LetterID: target.ID, Points: pts}
}

// end performs the single transition into Ended and fires observers once.
func (s *Session) end(reason EndReason) {
	s.phase = PhaseEnded
	res := Result{
		Score:     s.tally.Score,
		Misses:    s.tally.Misses,
		Hits:      s.tally.Hits,
		BestCombo: s.tally.BestCombo,
		Reason:    reason,
		Ticks:     s.tick,
	}
	s.result = &res
	for _, fn := range s.observers {
		fn(res)
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Result returns the terminal payload once the session has ended.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.GameConfig {
	return s.cfg
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.tally.Score
}

// Misses returns the number of misses of either kind.
func (s *Session) Misses() int {
	return s.tally.Misses
}

// Combo returns the current run of consecutive hits.
func (s *Session) Combo() int {
	return s.tally.Combo
}

// TimeRemaining returns the whole seconds left on the countdown.
func (s *Session) TimeRemaining() int {
	return s.timeRemaining
}
