package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the best runs recorded for the specified game.

Examples:
  pocket scores froggy
  pocket scores asteroids --limit 20
  pocket scores bitflip --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pocket list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		color.Green("Cleared scores for %s.", game.Title())
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	color.Yellow("High Scores - %s", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		color.Cyan("Play 'pocket play %s' to set the first high score!", gameID)
		return
	}

	header := color.New(color.Bold)
	header.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Run", "Date")
	header.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "---", "----")
	p := message.NewPrinter(language.English)
	best := color.New(color.FgGreen)
	for i, entry := range scores {
		runID := entry.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		line := p.Sprintf("  %-4d  %-10d  %-8s  %s", i+1, entry.Score, runID, entry.CreatedAt.Format("2006-01-02 15:04"))
		if i == 0 {
			best.Println(line)
			continue
		}
		fmt.Println(line)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		color.New(color.FgWhite).Println(p.Sprintf("Runs: %d  Best: %d  Total: %d  Average: %.1f",
			stats.GamesCount, stats.HighScore, stats.TotalScore, stats.AvgScore))
	}
}
