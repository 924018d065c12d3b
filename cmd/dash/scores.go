package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best scores",
	Long: `Display the best scores of a profile.

Examples:
  dash scores
  dash scores --profile alice
  dash scores --limit 10`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 5, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	scores, err := e.store.TopScores(e.profile.Name(), flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Scores - %s\n", e.profile.Name())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dash play' to set the first score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := e.store.Stats(e.profile.Name())
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f\n", stats.RunsCount, stats.HighScore, stats.AvgScore)
	}
	return nil
}
