package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, Tab for the
scoreboard. When a game exits through its own menu you return here.

Examples:
  pocket menu
  pocket menu --fps 30
  pocket menu --db ./pocket.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := openLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("records kept in memory", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit || (menuResult.GameID == "" && !menuResult.WantsScoreboard) {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		gameID := menuResult.GameID
		if err := applyGameFlags(gameID); err != nil {
			logger.Error("bad game flags", "game", gameID, "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("cannot create game", "game", gameID, "error", err)
			continue
		}

		logger.Info("starting game", "game", gameID)
		if err := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger}); err != nil {
			logger.Error("game crashed", "game", gameID, "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
