package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFroggy loads Froggy Road configuration.
// Search order: customPath -> ~/.pocket/configs/froggy.yaml -> ./configs/froggy.yaml -> embedded default
func LoadFroggy(customPath string) (FroggyConfig, error) {
	return load("froggy", customPath, DefaultFroggyConfig)
}

// LoadAsteroids loads Asteroids configuration.
// Search order: customPath -> ~/.pocket/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	return load("asteroids", customPath, DefaultAsteroidsConfig)
}

// LoadBitFlip loads BitFlip configuration.
// Search order: customPath -> ~/.pocket/configs/bitflip.yaml -> ./configs/bitflip.yaml -> embedded default
func LoadBitFlip(customPath string) (BitFlipConfig, error) {
	return load("bitflip", customPath, DefaultBitFlipConfig)
}

// load resolves a game config. Files are decoded over the hardcoded
// defaults, so a partial YAML only overrides the keys it names.
func load[T any](gameID, customPath string, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pocket", "configs", filename)
}

// ApplyDifficulty modifies a difficulty config based on a preset.
// The empty preset leaves it untouched.
func ApplyDifficulty(cfg *DifficultyConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Enabled = false
	default:
		cfg.Enabled = true
		cfg.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyFroggyPreset modifies the config based on a difficulty preset.
func ApplyFroggyPreset(cfg *FroggyConfig, preset DifficultyPreset) {
	ApplyDifficulty(&cfg.Difficulty, preset)

	// Easier presets spawn a little less often
	switch preset {
	case DifficultyEasy:
		cfg.Lanes.SkipChance = 0.3
	case DifficultyHard:
		cfg.Lanes.SkipChance = 0.05
	}
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	ApplyDifficulty(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Meteoroids.BaseCount = 5
	case DifficultyHard:
		cfg.Meteoroids.BaseCount = 10
	}
}
