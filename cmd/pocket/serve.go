package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/games/asteroids"
	"github.com/vovakirdan/pocket-arcade/internal/games/froggy"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with a game picker menu.
The leaderboard is shared; saved records (worlds, bests) are kept per
SSH user name.

With --http the same database is also published as a read-only JSON
leaderboard (GET /api/v1/games, /api/v1/games/{id}/scores and /stats).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pocket/host_key

Examples:
  pocket serve                           # Listen on :23234 with auto-generated key
  pocket serve --ssh :2222               # Listen on port 2222
  pocket serve --host-key ./my_host_key  # Use specific host key
  pocket serve --db ./pocket.db          # Use specific database
  pocket serve --http :8080              # Also serve the leaderboard API

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard API address (disabled when empty)")
}

func runServe(_ *cobra.Command, _ []string) {
	// Sessions create games through the registry, so presets apply to all of them.
	froggy.SetDifficultyPreset(flagDifficulty)
	asteroids.SetDifficultyPreset(flagDifficulty)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.HTTPAddress = flagHTTPAddr

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pocket SSH server on %s\n", server.Addr())
	if flagHTTPAddr != "" {
		fmt.Printf("Leaderboard API on %s\n", flagHTTPAddr)
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
