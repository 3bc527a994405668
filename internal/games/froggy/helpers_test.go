package froggy

import (
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/scene"
)

// scriptedSource replays fixed draws and records the bounds passed to Intn.
type scriptedSource struct {
	ints   []int
	floats []float64
	seed   int64
	bounds []int
}

func (s *scriptedSource) Intn(n int) int {
	s.bounds = append(s.bounds, n)
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Int63() int64 {
	s.seed++
	return s.seed
}

// quietConfig never skips spawns and has no jitter.
func quietConfig() *config.FroggyConfig {
	cfg := config.DefaultFroggyConfig()
	cfg.Lanes.SpawnJitter = 0
	cfg.Lanes.SkipChance = 0
	return &cfg
}

// placeEntity spawns an actor on l and pins it at x.
func placeEntity(l *Lane, x float64) *Entity {
	l.spawn()
	e := l.Entities[len(l.Entities)-1]
	e.X = x
	e.Placed = true
	return e
}

func newTestLane(g *scene.Graph, cfg *config.FroggyConfig, kind LaneKind, speed float64, dir int) *Lane {
	return NewLane(LaneParams{Kind: kind, Speed: speed, Direction: dir, SpawnInterval: 75}, 1, g, cfg)
}
