package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/timefighter/internal/game"
	"github.com/vovakirdan/timefighter/internal/platform/tui"
	"github.com/vovakirdan/timefighter/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished rounds and overall statistics.

Examples:
  timefighter scores
  timefighter scores --limit 5
  timefighter scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no scores database configured (--db is empty)")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(game.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High scores cleared.")
		return
	}

	scores, err := store.TopScores(game.ID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.GetGameStats(game.ID)
	if err != nil {
		// Stats are a bonus; the table is still useful
		stats = nil
	}

	fmt.Print(tui.ScoreTable("High Scores - "+game.Title, scores, stats))
}
