package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/letterfall/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores of the selected leaderboard.

Examples:
  letterfall scores
  letterfall scores --limit 20
  letterfall scores --board json
  letterfall scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

// clearer is implemented by leaderboards that can be wiped.
type clearer interface {
	Clear() error
}

func runScores(_ *cobra.Command, _ []string) {
	board, err := openBoard(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}
	defer board.Close()

	if flagClear {
		c, ok := board.(clearer)
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: leaderboard cannot be cleared")
			os.Exit(1)
		}
		if err := c.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	scores, err := board.Top(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - letterfall")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'letterfall play' to set the first high score!")
		return
	}

	printScores(scores)

	if store, ok := board.(*storage.Store); ok {
		if stats, err := store.Stats(); err == nil {
			fmt.Println()
			fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Best combo: %d\n",
				stats.Runs, stats.HighScore, stats.AvgScore, stats.BestCombo)
		}
	}
}

// printScores writes the ranking table. Columns beyond name and score exist only in SQLite runs.
func printScores(scores []storage.ScoreEntry) {
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "----", "-----", "----")

	for i, e := range scores {
		date := ""
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-10s  %-8d  %s\n", i+1, e.Name, e.Score, date)
	}
}
