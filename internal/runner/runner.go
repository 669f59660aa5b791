// Package runner drives a letterfall session without a terminal.
// One goroutine fires the update, spawn and countdown signals at their own
// cadence; keypresses from any goroutine are serialized with them.
package runner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/games/letterfall"
)

// ErrNotIdle is returned by Run when the session was already started.
var ErrNotIdle = errors.New("runner: session is not idle")

// Intervals are the wall-clock periods of the three session signals.
type Intervals struct {
	Update    time.Duration
	Spawn     time.Duration
	Countdown time.Duration
}

// IntervalsFor derives signal periods from the configuration.
// timeScale > 1 runs the whole session faster than real time.
func IntervalsFor(cfg config.GameConfig, rt core.RuntimeConfig, timeScale float64) Intervals {
	if timeScale <= 0 {
		timeScale = 1
	}
	scale := func(d time.Duration) time.Duration {
		d = time.Duration(float64(d) / timeScale)
		return max(d, time.Microsecond)
	}
	return Intervals{
		Update:    scale(rt.TickInterval()),
		Spawn:     scale(cfg.Spawn.Interval()),
		Countdown: scale(time.Second),
	}
}

// Runner owns the scheduling of one session.
type Runner struct {
	mu        sync.Mutex
	session   *letterfall.Session
	intervals Intervals
	logger    *log.Logger
	ended     chan struct{}
	endOnce   sync.Once
}

// New wraps an idle session. A nil logger uses the charm default logger.
func New(s *letterfall.Session, iv Intervals, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	r := &Runner{
		session:   s,
		intervals: iv,
		logger:    logger,
		ended:     make(chan struct{}),
	}
	// Observers survive Session.Reset, so a later round on the same session
	// fires this again.
	s.OnEnd(func(letterfall.Result) { r.endOnce.Do(func() { close(r.ended) }) })
	return r
}

// Run starts the session and blocks until it ends.
// Cancelling ctx aborts the session; the partial result is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context) (letterfall.Result, error) {
	r.mu.Lock()
	started := r.session.Start()
	r.mu.Unlock()
	if !started {
		return letterfall.Result{}, ErrNotIdle
	}
	r.logger.Debug("session started",
		"update", r.intervals.Update,
		"spawn", r.intervals.Spawn,
		"countdown", r.intervals.Countdown,
	)

	update := time.NewTicker(r.intervals.Update)
	defer update.Stop()
	spawn := time.NewTicker(r.intervals.Spawn)
	defer spawn.Stop()
	countdown := time.NewTicker(r.intervals.Countdown)
	defer countdown.Stop()

	for {
		select {
		case <-r.ended:
			return r.result(), nil

		case <-ctx.Done():
			r.Abort()
			return r.result(), ctx.Err()

		case <-update.C:
			r.apply((*letterfall.Session).UpdateTick)

		case <-spawn.C:
			r.apply((*letterfall.Session).SpawnTick)

		case <-countdown.C:
			r.apply((*letterfall.Session).CountdownTick)
		}
	}
}

// apply runs one signal under the lock.
func (r *Runner) apply(signal func(*letterfall.Session)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	signal(r.session)
}

// KeyPress forwards a key to the session. Safe to call from any goroutine.
func (r *Runner) KeyPress(key string) letterfall.Judgment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.KeyPress(key)
}

// Abort ends a running session early. Safe to call from any goroutine.
func (r *Runner) Abort() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Abort()
}

// Snapshot returns a consistent copy of the session state.
func (r *Runner) Snapshot() letterfall.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Snapshot()
}

// Done is closed when the session ends.
func (r *Runner) Done() <-chan struct{} {
	return r.ended
}

func (r *Runner) result() letterfall.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, _ := r.session.Result()
	r.logger.Debug("session ended", "reason", res.Reason, "score", res.Score, "ticks", res.Ticks)
	return res
}
