package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glider/internal/registry"
	"github.com/vovakirdan/glider/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best runs for a variant",
	Long: `Display the best runs for a variant (default: glider).

Examples:
  glider scores
  glider scores glider_classic --limit 20
  glider scores glider --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs for the variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "glider"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'glider list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Printf("Cleared all runs for %s.\n", title)
		return
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'glider play %s' to set the first score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-20s  %s\n", "Rank", "Score", "Distance", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-20s  %s\n", "----", "-----", "--------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %08d  %-20d  %s\n",
			i+1, r.Score, int(r.Distance), r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f  |  Longest: %d\n",
			stats.BestScore, stats.RunsCount, stats.AvgScore, int(stats.BestDistance))
	}
}
