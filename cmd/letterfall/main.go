// letterfall is a falling-letter typing game for the terminal.
//
// Usage:
//
//	letterfall [play]        - Play a round (default command)
//	letterfall scores        - Show the leaderboard
//	letterfall serve         - Start SSH server for remote play
//	letterfall simulate      - Play a round headlessly with a bot
//	letterfall config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a YAML or TOML game config
//	--difficulty <name>   - Apply a preset: easy, normal, hard
//	--board sqlite|json   - Pick the leaderboard backend
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letterfall/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagBoard      string
	flagDBPath     string
	flagBoardFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "letterfall",
	Short: "letterfall - type the falling letters before they pass the line",
	Long: `letterfall is a terminal typing game. Letters fall toward a line near the
bottom of the screen; press the matching key while a letter is inside the
band around the line. Consecutive hits build a combo that raises the points
per hit every 10 hits. A round lasts one minute.

Available commands:
  play      - Play a round (default)
  scores    - View the leaderboard
  serve     - Start SSH server for remote play
  simulate  - Headless autoplay for testing tunings
  config    - Print the effective configuration

Examples:
  letterfall
  letterfall play --difficulty hard
  letterfall scores --limit 5
  letterfall serve --ssh :2222
  letterfall simulate --accuracy 0.8 --time-scale 20`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagBoard, "board", boardSQLite, "Leaderboard backend: sqlite or json")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagBoardFile, "board-file", storage.DefaultBoardPath, "Path to JSON leaderboard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
