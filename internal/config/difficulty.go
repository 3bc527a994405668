package config

// DifficultyManager turns a running score into an integer difficulty tier.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// MaxTier returns the highest reachable tier.
func (d *DifficultyManager) MaxTier() int {
	return max(d.cfg.Progression.MaxTier, 0)
}

// InitialTier is the tier at score 0, derived from the initial level.
func (d *DifficultyManager) InitialTier() int {
	return int(d.initialLevel * float64(d.MaxTier()))
}

// Tier returns the difficulty tier for a score: the initial tier plus one
// tier per Step points, capped at MaxTier. With progression disabled the
// tier stays at the initial tier.
func (d *DifficultyManager) Tier(score int) int {
	tier := d.InitialTier()
	if d.IsEnabled() && d.cfg.Progression.Type == "score" {
		tier += StepTier(score, d.cfg.Progression.Step)
	}
	return min(tier, d.MaxTier())
}

// StepTier is score/step for non-negative scores, 0 otherwise. A
// non-positive step is treated as 1.
func StepTier(score, step int) int {
	if score <= 0 {
		return 0
	}
	if step <= 0 {
		step = 1
	}
	return score / step
}

// Level returns the current difficulty as a fraction of the max tier.
func (d *DifficultyManager) Level(score int) float64 {
	if d.MaxTier() == 0 {
		return d.initialLevel
	}
	return float64(d.Tier(score)) / float64(d.MaxTier())
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}
