package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-gravity/internal/registry"
	"github.com/vovakirdan/fruit-gravity/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best runs for a variant, or a summary of every variant
when no game is given.

Examples:
  fruitgravity scores
  fruitgravity scores fruit
  fruitgravity scores fruit --stats
  fruitgravity scores fruit_classic --limit 25
  fruitgravity scores fruit --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show totals over all runs")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the game")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fruitgravity list' to see available games.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", gameID)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'fruitgravity play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-6s  %-6s  %s\n", "Rank", "Score", "Cut", "Acc", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-6s  %-6s  %s\n", "----", "-----", "---", "---", "----", "----")
	for i, r := range runs {
		cut, acc, dur := "-", "-", "-"
		if r.ID != 0 {
			cut = fmt.Sprintf("%d", r.Cut)
			acc = fmt.Sprintf("%.0f%%", r.Accuracy()*100)
			dur = clock(r.Duration)
		}
		fmt.Printf("  %-4d  %-7d  %-5s  %-6s  %-6s  %s\n",
			i+1, r.Score, cut, acc, dur, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagScoresStats {
		stats, err := store.GetGameStats(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Printf("Runs:      %d\n", stats.GamesCount)
		fmt.Printf("Best:      %d\n", stats.HighScore)
		fmt.Printf("Average:   %.1f\n", stats.AvgScore)
		fmt.Printf("Launched:  %d\n", stats.Launched)
		fmt.Printf("Cut:       %d (%.0f%%)\n", stats.Cut, stats.Accuracy()*100)
		fmt.Printf("Missed:    %d\n", stats.Missed)
		fmt.Printf("Dodged:    %d bombs\n", stats.HazardsDodged)
		fmt.Printf("Play time: %s\n", stats.PlayTime.Round(time.Second))
		return
	}

	fmt.Println()
	if high, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

// printSummary lists every variant that has been played.
func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-15s  %-5s  %-6s  %-6s  %s\n", "Game", "Runs", "Best", "Acc", "Last played")
	fmt.Printf("  %-15s  %-5s  %-6s  %-6s  %s\n", "----", "----", "----", "---", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-15s  %-5d  %-6d  %-6s  %s\n", id, st.GamesCount, st.HighScore,
			fmt.Sprintf("%.0f%%", st.Accuracy()*100), st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func clock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
