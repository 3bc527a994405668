package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTierMatchesScoreFormula(t *testing.T) {
	dm := NewDifficultyManager(DefaultFroggyConfig().Difficulty)

	prev := 0
	for score := 0; score <= 400; score++ {
		got := dm.Tier(score)
		expected := min(score/25, 5)
		if got != expected {
			t.Fatalf("Tier(%d) = %d, expected %d", score, got, expected)
		}
		if got < prev {
			t.Fatalf("Tier(%d) = %d decreased from %d", score, got, prev)
		}
		prev = got
	}
}

func TestTierPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		score    int
		expected int
	}{
		{DifficultyEasy, 0, 0},
		{DifficultyNormal, 0, 0},
		{DifficultyNormal, 100, 4},
		{DifficultyNormal, 125, 5},
		{DifficultyHard, 0, 3},
		{DifficultyHard, 100, 5},
		{DifficultyFixed, 500, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultFroggyConfig()
			ApplyFroggyPreset(&cfg, tt.preset)
			dm := NewDifficultyManager(cfg.Difficulty)
			if got := dm.Tier(tt.score); got != tt.expected {
				t.Errorf("Tier(%d) = %d, expected %d", tt.score, got, tt.expected)
			}
		})
	}
}

func TestNormalPresetKeepsDefaults(t *testing.T) {
	froggy := DefaultFroggyConfig()
	ApplyFroggyPreset(&froggy, DifficultyNormal)
	if !reflect.DeepEqual(froggy, DefaultFroggyConfig()) {
		t.Errorf("normal froggy config = %+v, expected the defaults", froggy)
	}

	dm := NewDifficultyManager(froggy.Difficulty)
	for score := 0; score <= 400; score++ {
		if got, expected := dm.Tier(score), min(score/25, 5); got != expected {
			t.Fatalf("normal Tier(%d) = %d, expected %d", score, got, expected)
		}
	}

	asteroids := DefaultAsteroidsConfig()
	ApplyAsteroidsPreset(&asteroids, DifficultyNormal)
	if !reflect.DeepEqual(asteroids, DefaultAsteroidsConfig()) {
		t.Errorf("normal asteroids config = %+v, expected the defaults", asteroids)
	}
}

func TestStepTier(t *testing.T) {
	tests := []struct {
		score, step, expected int
	}{
		{0, 25, 0},
		{-10, 25, 0},
		{24, 25, 0},
		{25, 25, 1},
		{7, 0, 7},
	}
	for _, tt := range tests {
		if got := StepTier(tt.score, tt.step); got != tt.expected {
			t.Errorf("StepTier(%d, %d) = %d, expected %d", tt.score, tt.step, got, tt.expected)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("expected hard preset")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should be empty")
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	froggy, err := LoadFroggy("")
	if err != nil {
		t.Fatalf("LoadFroggy: %v", err)
	}
	def := DefaultFroggyConfig()
	if froggy.Player != def.Player || froggy.Lanes != def.Lanes || froggy.Death != def.Death {
		t.Errorf("embedded froggy config differs from defaults:\n%+v\n%+v", froggy, def)
	}
	if froggy.Difficulty != def.Difficulty {
		t.Errorf("difficulty = %+v, expected %+v", froggy.Difficulty, def.Difficulty)
	}

	ast, err := LoadAsteroids("")
	if err != nil {
		t.Fatalf("LoadAsteroids: %v", err)
	}
	if len(ast.Meteoroids.Sizes) != 7 || ast.Ship.TopSpeed != 1.5 {
		t.Errorf("unexpected asteroids config: %+v", ast)
	}

	bf, err := LoadBitFlip("")
	if err != nil {
		t.Fatalf("LoadBitFlip: %v", err)
	}
	if bf != DefaultBitFlipConfig() {
		t.Errorf("bitflip = %+v, expected %+v", bf, DefaultBitFlipConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "froggy.yaml")
	if err := os.WriteFile(path, []byte("death:\n  freeze_ticks: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFroggy(path)
	if err != nil {
		t.Fatalf("LoadFroggy: %v", err)
	}
	if cfg.Death.FreezeTicks != 30 {
		t.Errorf("FreezeTicks = %d, expected 30", cfg.Death.FreezeTicks)
	}
	if cfg.Player.Bound != 56 {
		t.Errorf("Bound = %v, expected default 56", cfg.Player.Bound)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadFroggy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFroggy(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
