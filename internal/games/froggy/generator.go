package froggy

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/config"
)

// ErrInvariantViolation marks a broken internal invariant.
var ErrInvariantViolation = errors.New("froggy: invariant violation")

// Source is the random source consumed by the generator. *rand.Rand
// satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
	Int63() int64
}

// GenState is the per-run generation state.
type GenState struct {
	DangerStreak       int // consecutive hazard lanes
	LastWaterDirection int // direction of the most recent carry lane
}

// NewGenState returns the state a run starts with.
func NewGenState() GenState {
	return GenState{LastWaterDirection: -1}
}

// Weights is the categorical weight of each lane kind.
type Weights [laneKindCount]int

// Total sums all weights.
func (w Weights) Total() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

// BaseWeights returns the lane weights for a difficulty tier.
func BaseWeights(difficulty int) Weights {
	var w Weights
	w[LaneSafe] = max(5-difficulty, 1)
	w[LaneBlocking] = 2 + difficulty
	w[LaneCarryLily] = 1 + difficulty/2
	w[LaneCarryLog] = 1 + difficulty/2
	return w
}

// LaneWeights adds the safe-lane bonus for long hazard streaks. Only the
// bonus of the highest threshold reached applies.
func LaneWeights(difficulty, streak int) Weights {
	w := BaseWeights(difficulty)
	switch {
	case streak >= 4:
		w[LaneSafe] += 6
	case streak >= 3:
		w[LaneSafe] += 4
	}
	return w
}

// pickWeighted draws one kind with probability proportional to its weight.
func pickWeighted(w Weights, src Source) (LaneKind, error) {
	total := 0
	for _, v := range w {
		if v < 0 {
			return 0, fmt.Errorf("%w: negative weight in %v", ErrInvariantViolation, w)
		}
		total += v
	}
	if total <= 0 {
		return 0, fmt.Errorf("%w: empty weight table", ErrInvariantViolation)
	}

	r := src.Intn(total)
	for k, v := range w {
		if r < v {
			return LaneKind(k), nil
		}
		r -= v
	}
	return 0, fmt.Errorf("%w: draw %d outside total %d", ErrInvariantViolation, r, total)
}

// Generator produces the lanes appended as the player hops forward.
type Generator struct {
	src        Source
	difficulty *config.DifficultyManager
	lanes      config.FroggyLanes
}

// NewGenerator creates a generator drawing from src.
func NewGenerator(src Source, dm *config.DifficultyManager, lanes config.FroggyLanes) *Generator {
	return &Generator{src: src, difficulty: dm, lanes: lanes}
}

// Difficulty returns the tier for a score.
func (g *Generator) Difficulty(score int) int {
	return g.difficulty.Tier(score)
}

// Next generates the parameters of the next lane and updates st. The
// source is consumed in a fixed order: kind, speed, then direction for
// blocking lanes.
func (g *Generator) Next(score int, st *GenState) LaneParams {
	d := g.Difficulty(score)

	kind, err := pickWeighted(LaneWeights(d, st.DangerStreak), g.src)
	if err != nil {
		panic(err)
	}
	if kind == LaneSafe {
		st.DangerStreak = 0
		return LaneParams{Kind: LaneSafe}
	}
	st.DangerStreak++

	step := g.lanes.BlockingSpeedStep
	if kind.Carries() {
		step = g.lanes.CarrySpeedStep
	}
	lo := 0.8 + float64(d)*step
	hi := 1.2 + float64(d)*step
	p := LaneParams{
		Kind:          kind,
		Speed:         lo + g.src.Float64()*(hi-lo),
		SpawnInterval: max(g.lanes.BaseSpawnInterval-g.lanes.IntervalPerTier*d, g.lanes.MinSpawnInterval, 1),
	}

	if kind.Carries() {
		p.Direction = -st.LastWaterDirection
		if p.Direction == 0 {
			p.Direction = 1
		}
		st.LastWaterDirection = p.Direction
	} else {
		p.Direction = [2]int{1, -1}[g.src.Intn(2)]
	}
	return p
}
