package froggy

import (
	"math"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/scene"
)

// Actor is the kind of a scrolling entity.
type Actor uint8

const (
	ActorCar Actor = iota
	ActorLog
	ActorLily
)

// actorTable holds the per-kind visuals.
var actorTable = [...]struct {
	name   string
	glyph  rune
	color  core.Color
	height float64
}{
	ActorCar:  {"car", '▆', core.ColorBrightRed, 8},
	ActorLog:  {"log", '▓', core.ColorBrown, 8},
	ActorLily: {"lily", '●', core.ColorBrightGreen, 8},
}

func (a Actor) String() string {
	if int(a) < len(actorTable) {
		return actorTable[a].name
	}
	return "unknown"
}

// Width returns the full footprint of the actor.
func (a Actor) Width(cfg config.FroggyActors) float64 {
	switch a {
	case ActorLog:
		return cfg.Log
	case ActorLily:
		return cfg.Lily
	default:
		return cfg.Car
	}
}

// Entity is a single scrolling actor owned by a lane.
type Entity struct {
	Actor     Actor
	X         float64
	HalfWidth float64
	Placed    bool

	node scene.NodeID
}

// Advance moves the entity one tick. The first call places it just past
// the edge opposite to the direction of travel.
func (e *Entity) Advance(direction int, speed, bound float64) {
	if !e.Placed {
		e.Placed = true
		e.X = -float64(direction) * bound
	}
	e.X += speed * float64(direction)
}

// Offscreen reports whether the entity has scrolled past ±bound.
func (e *Entity) Offscreen(bound float64) bool {
	return math.Abs(e.X) > bound
}

// Span returns the entity footprint.
func (e *Entity) Span() core.Span {
	return core.SpanAround(e.X, e.HalfWidth)
}
