package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (handheld buttons):
  Arrows/WASD   - D-pad
  Space/Enter/Z - A
  X             - B
  Q/[  E/]      - LB / RB
  Esc/M/P       - Menu (each game's own menu; Menu there exits)
  ?             - Toggle key help
  Ctrl+S        - Screenshot
  Ctrl+C        - Quit immediately

Froggy Road uses --seed as the world number (1-99).

Difficulty options:
  easy   - Start at the lowest tier
  normal - Start at 30% of the tier range
  hard   - Start at 70% of the tier range
  fixed  - No progression

Examples:
  pocket play froggy
  pocket play froggy --seed 42
  pocket play asteroids --difficulty hard
  pocket play bitflip --config ./my-bitflip.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pocket list' to see available games.")
		os.Exit(1)
	}
	if err := applyGameFlags(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("records kept in memory", "error", err)
		store = nil
	}

	logger.Info("starting game", "game", gameID, "seed", flagSeed)
	runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
