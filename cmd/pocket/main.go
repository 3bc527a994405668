// pocket is a terminal arcade for handheld-style games.
//
// Usage:
//
//	pocket list              - List available games
//	pocket play <game>       - Play a game
//	pocket menu              - Start menu to pick games interactively
//	pocket serve             - Start SSH server for remote play
//	pocket scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Override the game's tick rate (0 = game default)
//	--seed <value>       - Select a world / seed the RNG (0 = saved world or clock)
//	--db <path>          - Set database path (default: ~/.pocket/pocket.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log <path>         - Log file for local play (default: ~/.pocket/pocket.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pocket-arcade/internal/games/asteroids"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/bitflip"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/froggy"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pocket",
	Short: "Pocket Arcade - handheld games in your terminal",
	Long: `Pocket Arcade runs small handheld-style games in the terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  pocket list
  pocket play froggy
  pocket play froggy --seed 42
  pocket menu
  pocket serve --ssh :2222
  pocket scores asteroids`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = game default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World / RNG seed (0 = saved world or clock)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pocket/pocket.db", "Path to scores and saves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.pocket/pocket.log", "Log file for local play")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
