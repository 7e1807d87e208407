package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresMine  bool
	flagScoresClear bool
	flagScoresStats bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  blockfall scores
  blockfall scores --all
  blockfall scores --mine --player ann
  blockfall scores --stats
  blockfall scores --tui
  blockfall scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded game")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Only show scores of --player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregated statistics")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(); err != nil {
			fatal("clearing scores", err)
		}
		fmt.Println("All scores cleared.")
		return

	case flagScoresStats:
		printStats(store)
		return

	case flagScoresTUI:
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, cfg.Player, cfg.ScreenW, cfg.ScreenH); err != nil {
			store.Close()
			fatal("running scoreboard", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	switch {
	case flagScoresMine:
		scores, err = store.PlayerScores(flagPlayer, 10)
	case flagScoresAll:
		scores, err = store.AllScores()
	default:
		scores, err = store.TopScores(10)
	}
	if err != nil {
		store.Close()
		fatal("retrieving scores", err)
	}

	fmt.Println("High Scores - Blockfall")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-8d  %-5d  %-5d  %s\n",
			i+1, entry.Player, entry.Score, entry.Lines, entry.Level,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
	if best, err := store.PlayerBest(flagPlayer); err == nil && best > 0 {
		fmt.Printf("Your best (%s): %d\n", flagPlayer, best)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		store.Close()
		fatal("retrieving stats", err)
	}

	fmt.Println("Statistics - Blockfall")
	fmt.Println()
	fmt.Printf("  Games played: %d\n", stats.Games)
	fmt.Printf("  High score:   %d\n", stats.HighScore)
	fmt.Printf("  Average:      %.1f\n", stats.AvgScore)
	fmt.Printf("  Total lines:  %d\n", stats.TotalLines)
	fmt.Printf("  Best level:   %d\n", stats.BestLevel)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	if stats.Games == 0 {
		fmt.Fprintln(os.Stderr, "No games recorded yet.")
	}
}
