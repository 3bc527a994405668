package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its tick rate and best recorded score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are optional here; a missing database only hides the column.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	color.Yellow("Available games:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTitle\tTick\tBest")
	fmt.Fprintln(w, "  --\t-----\t----\t----")
	for _, info := range games {
		rate := "-"
		if g, err := registry.Create(info.ID); err == nil {
			rate = fmt.Sprintf("%dHz", g.TickRate())
		}
		best := "-"
		if store != nil {
			if high, err := store.HighScore(info.ID); err == nil && high > 0 {
				best = fmt.Sprintf("%d", high)
			}
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", info.ID, info.Title, rate, best)
	}
	w.Flush()

	fmt.Println()
	color.Cyan("Run 'pocket play <id>' to play a game.")
}
