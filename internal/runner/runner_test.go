package runner

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/games/letterfall"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestRunner(t *testing.T, seconds int) *Runner {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Session.DurationSeconds = seconds
	rt := core.DefaultConfig()
	rt.Seed = 1

	iv := Intervals{
		Update:    time.Millisecond,
		Spawn:     5 * time.Millisecond,
		Countdown: 20 * time.Millisecond,
	}
	return New(letterfall.NewSession(cfg, rt), iv, quietLogger())
}

func TestRunTimeUp(t *testing.T) {
	r := newTestRunner(t, 3)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.Run(ctx)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Reason != letterfall.EndTimeUp {
		t.Errorf("Reason = %v, want time up", res.Reason)
	}
	if res.Ticks == 0 {
		t.Error("no update ticks delivered")
	}

	// Signals stop with the end: state is frozen afterwards
	before := r.Snapshot()
	time.Sleep(10 * time.Millisecond)
	after := r.Snapshot()
	if before.Tick != after.Tick || after.TimeRemaining != 0 || after.Phase != letterfall.PhaseEnded {
		t.Errorf("state moved after end: %+v -> %+v", before, after)
	}
}

func TestRunCancel(t *testing.T) {
	r := newTestRunner(t, 60)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	res, err := r.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if res.Reason != letterfall.EndAborted {
		t.Errorf("Reason = %v, want aborted", res.Reason)
	}
}

func TestRunTwice(t *testing.T) {
	r := newTestRunner(t, 1)
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	if _, err := r.Run(context.Background()); !errors.Is(err, ErrNotIdle) {
		t.Errorf("second Run() error = %v, want ErrNotIdle", err)
	}
}

func TestRerunAfterReset(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Session.DurationSeconds = 1
	rt := core.DefaultConfig()
	rt.Seed = 1
	iv := Intervals{
		Update:    time.Millisecond,
		Spawn:     5 * time.Millisecond,
		Countdown: 10 * time.Millisecond,
	}

	s := letterfall.NewSession(cfg, rt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for round := 1; round <= 3; round++ {
		res, err := New(s, iv, quietLogger()).Run(ctx)
		if err != nil {
			t.Fatalf("round %d: Run() error: %v", round, err)
		}
		if res.Reason != letterfall.EndTimeUp {
			t.Errorf("round %d: Reason = %v, want time up", round, res.Reason)
		}
		s.Reset(rt)
	}
}

func TestAbortFromOtherGoroutine(t *testing.T) {
	r := newTestRunner(t, 60)

	go func() {
		time.Sleep(15 * time.Millisecond)
		r.Abort()
	}()

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Reason != letterfall.EndAborted {
		t.Errorf("Reason = %v, want aborted", res.Reason)
	}
}

func TestConcurrentKeyPresses(t *testing.T) {
	r := newTestRunner(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(c rune) {
			defer wg.Done()
			for {
				select {
				case <-r.Done():
					return
				case <-ctx.Done():
					return
				default:
					r.KeyPress(string(c))
					time.Sleep(time.Millisecond)
				}
			}
		}('a' + rune(i))
	}

	res, err := r.Run(ctx)
	wg.Wait()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Misses+res.Hits == 0 {
		t.Error("no keypress was judged")
	}
	snap := r.Snapshot()
	if snap.Score != res.Score || snap.Misses != res.Misses {
		t.Errorf("keypress mutated state after end: %+v vs %+v", snap, res)
	}
}

func TestBotPerfect(t *testing.T) {
	// Letters need about 170 update ticks to reach the band
	r := newTestRunner(t, 25)
	bot := NewBot(3, 1, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go bot.Play(ctx, r)

	res, err := r.Run(ctx)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Hits == 0 {
		t.Errorf("perfect bot scored no hits: %+v", res)
	}
}

func TestIntervalsFor(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rt := core.DefaultConfig()

	iv := IntervalsFor(cfg, rt, 1)
	if iv.Update != time.Second/60 || iv.Spawn != 500*time.Millisecond || iv.Countdown != time.Second {
		t.Errorf("IntervalsFor(1) = %+v", iv)
	}

	fast := IntervalsFor(cfg, rt, 10)
	if fast.Countdown != 100*time.Millisecond || fast.Spawn != 50*time.Millisecond {
		t.Errorf("IntervalsFor(10) = %+v", fast)
	}

	if IntervalsFor(cfg, rt, 0) != iv {
		t.Error("non-positive scale should mean real time")
	}
}

func TestNewBotClamps(t *testing.T) {
	if b := NewBot(1, 2, 0); b.Accuracy != 1 || b.Poll <= 0 {
		t.Errorf("NewBot(2) = %+v", b)
	}
	if b := NewBot(1, -1, time.Second); b.Accuracy != 0 {
		t.Errorf("NewBot(-1).Accuracy = %g", b.Accuracy)
	}
}
