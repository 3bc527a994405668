package config

import (
	_ "embed"
)

//go:embed defaults/froggy.yaml
var defaultFroggyYAML []byte

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/bitflip.yaml
var defaultBitFlipYAML []byte

// DefaultFroggyConfig returns the default Froggy Road configuration.
func DefaultFroggyConfig() FroggyConfig {
	return FroggyConfig{
		TickRate: 25,
		Player: FroggyPlayer{
			Step:      8,
			Bound:     56,
			HalfWidth: 5,
		},
		Lanes: FroggyLanes{
			OffscreenBound:    64,
			SpawnJitter:       8,
			SkipChance:        0.15,
			BaseSpawnInterval: 65,
			IntervalPerTier:   9,
			MinSpawnInterval:  10,
			BlockingSpeedStep: 0.5,
			CarrySpeedStep:    0.25,
		},
		Actors: FroggyActors{
			Car:  10,
			Log:  25,
			Lily: 10,
		},
		Death: FroggyDeath{
			FreezeTicks: 12,
			Rumble:      0.25,
			RumbleTicks: 20,
		},
		World: FroggyWorld{
			Min: 1,
			Max: 99,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:    "score",
				Step:    25,
				MaxTier: 5,
			},
		},
	}
}

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		TickRate: 25,
		Ship: AsteroidsShip{
			RotationSteps: 25,
			Acceleration:  17,
			TopSpeed:      1.5,
			Radius:        4,
		},
		Bullets: AsteroidsBullets{
			Speed: 2.5,
			Bound: 63,
		},
		Meteoroids: AsteroidsMeteors{
			BaseCount:    7,
			CountStep:    200,
			MaxCount:     20,
			Sizes:        []float64{2, 4, 4, 6, 6, 6, 8},
			MaxSlope:     4,
			SpeedDivisor: 8,
			PointsBase:   10,
			SplitShrink:  2,
		},
		Shield: AsteroidsShield{
			Drain: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:    "score",
				Step:    100,
				MaxTier: 3,
			},
		},
	}
}

// DefaultBitFlipConfig returns the default BitFlip configuration.
func DefaultBitFlipConfig() BitFlipConfig {
	return BitFlipConfig{
		TickRate:      25,
		Grid:          8,
		Depth:         RangeInt{Min: 2, Max: 10, Default: 2},
		Level:         RangeInt{Min: 1, Max: 64, Default: 15},
		WinDelayTicks: 25,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "froggy":
		return defaultFroggyYAML
	case "asteroids":
		return defaultAsteroidsYAML
	case "bitflip":
		return defaultBitFlipYAML
	default:
		return nil
	}
}
