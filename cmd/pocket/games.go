package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/games/asteroids"
	"github.com/vovakirdan/pocket-arcade/internal/games/bitflip"
	"github.com/vovakirdan/pocket-arcade/internal/games/froggy"
)

// applyGameFlags hands --config and --difficulty to the selected game and
// checks that the config loads, so a bad file is reported before the alt
// screen takes over the terminal.
func applyGameFlags(gameID string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	var err error
	switch gameID {
	case "froggy":
		froggy.SetConfigPath(flagConfig)
		froggy.SetDifficultyPreset(flagDifficulty)
		_, err = config.LoadFroggy(flagConfig)
	case "asteroids":
		asteroids.SetConfigPath(flagConfig)
		asteroids.SetDifficultyPreset(flagDifficulty)
		_, err = config.LoadAsteroids(flagConfig)
	case "bitflip":
		bitflip.SetConfigPath(flagConfig)
		_, err = config.LoadBitFlip(flagConfig)
	}
	return err
}

// runtimeConfig builds the host config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openLogger opens the local play log. The alt screen owns the terminal, so
// log output goes to a file. When that fails, logging is discarded.
func openLogger() (*log.Logger, func()) {
	path, err := expandHome(flagLogPath)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pocket",
	})
	return logger, func() { f.Close() }
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
