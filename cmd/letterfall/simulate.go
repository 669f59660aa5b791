package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/games/letterfall"
	"github.com/vovakirdan/letterfall/internal/platform/tui"
	"github.com/vovakirdan/letterfall/internal/runner"
	"github.com/vovakirdan/letterfall/internal/storage"
)

var (
	flagAccuracy  float64
	flagDuration  int
	flagTimeScale float64
	flagSave      bool
	flagVerbose   bool
	flagFrame     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a round headlessly with a bot",
	Long: `Run a full round without a terminal. A bot strikes letters inside the
band, pressing the right key with the given accuracy and a wrong one
otherwise. Useful for checking a config or difficulty preset.

Examples:
  letterfall simulate
  letterfall simulate --accuracy 0.7 --time-scale 20
  letterfall simulate --difficulty hard --duration 30 --seed 42
  letterfall simulate --save --frame`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagAccuracy, "accuracy", 0.9, "Probability the bot presses the right key (0-1)")
	simulateCmd.Flags().IntVar(&flagDuration, "duration", 0, "Round length in seconds (0 = from config)")
	simulateCmd.Flags().Float64Var(&flagTimeScale, "time-scale", 1, "Run this many times faster than real time")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Submit the result to the leaderboard as \"Bot\"")
	simulateCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log scheduler events")
	simulateCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final field as plain text")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "letterfall-sim",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	if flagDuration > 0 {
		gameCfg.Session.DurationSeconds = flagDuration
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	runID := uuid.NewString()
	logger = logger.With("run", runID)
	logger.Info("simulation started",
		"seed", rt.Seed,
		"duration", gameCfg.Session.DurationSeconds,
		"accuracy", flagAccuracy,
		"time_scale", flagTimeScale,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := letterfall.NewSession(gameCfg, rt)
	r := runner.New(session, runner.IntervalsFor(gameCfg, rt, flagTimeScale), logger)
	bot := runner.NewBot(rt.Seed, flagAccuracy, runner.IntervalsFor(gameCfg, rt, flagTimeScale).Update)
	go bot.Play(ctx, r)

	res, err := r.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("simulation failed", "error", err)
	}

	logger.Info("simulation finished",
		"reason", res.Reason,
		"score", res.Score,
		"hits", res.Hits,
		"misses", res.Misses,
		"best_combo", res.BestCombo,
		"ticks", res.Ticks,
	)

	if flagFrame {
		screen := core.NewScreen(int(gameCfg.Field.Width), int(gameCfg.Field.Height))
		tui.DrawField(screen, r.Snapshot(), letterfall.Judgment{})
		fmt.Println(screen.String())
	}

	if !flagSave {
		return
	}
	board, err := openBoard(gameCfg.Leaderboard.MaxEntries)
	if err != nil {
		logger.Fatal("could not open leaderboard", "error", err)
	}
	defer board.Close()

	if _, err := board.Submit(storage.ScoreEntry{
		RunID:     runID,
		Name:      "Bot",
		Score:     res.Score,
		Misses:    res.Misses,
		Hits:      res.Hits,
		BestCombo: res.BestCombo,
	}); err != nil {
		logger.Error("could not save result", "error", err)
		return
	}
	logger.Info("result saved", "board", flagBoard)
}
