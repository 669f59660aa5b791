package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round in the current terminal.

Controls:
  a-z      - Strike the matching letter inside the band
  Esc      - End the round early
  Ctrl+C   - Quit

After the round, enter a name (up to 10 characters) to save the score.

Difficulty options (fixed values, no progression):
  easy   - Slower letters, wider band, sparser spawns
  normal - Default tuning
  hard   - Faster letters, narrower band, denser spawns

Examples:
  letterfall play
  letterfall play --difficulty easy
  letterfall play --config ./my-letterfall.toml
  letterfall play --board json --board-file ./high_scores.json`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	board, err := openBoard(gameCfg.Leaderboard.MaxEntries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard: %v\n", err)
		// Continue without storage - game still works
		board = nil
	}

	runErr := tui.Run(tui.Options{
		Game:    gameCfg,
		Runtime: rt,
		Board:   board,
		Player:  os.Getenv("USER"),
	})

	if board != nil {
		board.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
