package froggy

import (
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/scene"
)

// LaneKind is the closed set of lane types.
type LaneKind uint8

const (
	LaneSafe LaneKind = iota
	LaneBlocking
	LaneCarryLily
	LaneCarryLog
	laneKindCount
)

// kindTable holds per-kind behavior and visuals.
var kindTable = [laneKindCount]struct {
	name    string
	color   core.Color
	fill    rune
	actor   Actor
	spawns  bool
	carries bool
}{
	LaneSafe:      {"safe", core.ColorPurple, '░', 0, false, false},
	LaneBlocking:  {"blocking", core.ColorDarkGray, '▒', ActorCar, true, false},
	LaneCarryLily: {"carry-lily", core.ColorNavy, '~', ActorLily, true, true},
	LaneCarryLog:  {"carry-log", core.ColorNavy, '~', ActorLog, true, true},
}

func (k LaneKind) String() string {
	if k < laneKindCount {
		return kindTable[k].name
	}
	return "unknown"
}

// Hazard reports whether the lane can kill the player.
func (k LaneKind) Hazard() bool { return k != LaneSafe }

// Carries reports whether the lane is water the player must ride across.
func (k LaneKind) Carries() bool { return k < laneKindCount && kindTable[k].carries }

// LaneParams is the output of the generator.
type LaneParams struct {
	Kind          LaneKind
	Speed         float64
	Direction     int
	SpawnInterval int
}

const (
	laneWidth  = core.WorldSize
	laneHeight = 16

	// primedSpawnTimer makes the first tick of a fresh lane spawn.
	primedSpawnTimer = 100

	layerLane   = 1
	layerActor  = 2
	layerPlayer = 3
	layerHUD    = 4
)

// RowY returns the world y of a track row. Row 0 is the bottom of the
// playfield.
func RowY(row int) float64 {
	return core.WorldHalf - laneHeight/2 - laneHeight*float64(row)
}

// Lane is one horizontal strip. It owns its entities and their nodes.
type Lane struct {
	LaneParams
	Row      int
	Entities []*Entity

	spawnTimer int
	threshold  int
	rng        *rand.Rand
	graph      *scene.Graph
	cfg        *config.FroggyConfig
	node       scene.NodeID
	destroyed  bool
}

// NewLane creates a lane and its background node. seed drives the lane's
// private spawn randomness.
func NewLane(p LaneParams, seed int64, g *scene.Graph, cfg *config.FroggyConfig) *Lane {
	l := &Lane{
		LaneParams: p,
		spawnTimer: primedSpawnTimer,
		rng:        rand.New(rand.NewSource(seed)),
		graph:      g,
		cfg:        cfg,
	}
	l.threshold = l.nextThreshold()

	kind := kindTable[p.Kind]
	l.node = g.Add(scene.Node{
		Shape:  scene.ShapeRect,
		Pos:    core.Vec2{Y: RowY(0)},
		Width:  laneWidth,
		Height: laneHeight,
		Color:  kind.color,
		Glyph:  kind.fill,
		Layer:  layerLane,
	})
	return l
}

// nextThreshold draws the spawn threshold for the next cycle. It never
// drops below 1 so the timer always has to count up to it.
func (l *Lane) nextThreshold() int {
	jitter := 0
	if j := l.cfg.Lanes.SpawnJitter; j > 0 {
		jitter = l.rng.Intn(2*j+1) - j
	}
	return max(l.SpawnInterval+jitter, 1)
}

// Tick removes offscreen entities, runs the spawn timer and advances
// everything that is left.
func (l *Lane) Tick() {
	if l.destroyed {
		return
	}
	bound := l.cfg.Lanes.OffscreenBound

	kept := l.Entities[:0]
	for _, e := range l.Entities {
		if e.Offscreen(bound) {
			l.graph.MustDestroy(e.node)
			continue
		}
		kept = append(kept, e)
	}
	clear(l.Entities[len(kept):])
	l.Entities = kept

	l.spawnTimer++
	if l.spawnTimer > l.threshold {
		l.spawnTimer = 0
		l.threshold = l.nextThreshold()
		if kindTable[l.Kind].spawns && l.rng.Float64() >= l.cfg.Lanes.SkipChance {
			l.spawn()
		}
	}

	for _, e := range l.Entities {
		e.Advance(l.Direction, l.Speed, bound)
		if n := l.graph.Get(e.node); n != nil {
			n.Pos.X = e.X
		}
	}
}

func (l *Lane) spawn() {
	actor := kindTable[l.Kind].actor
	width := actor.Width(l.cfg.Actors)
	info := actorTable[actor]

	e := &Entity{Actor: actor, HalfWidth: width / 2}
	e.node = l.graph.Add(scene.Node{
		Shape:  scene.ShapeRect,
		Pos:    core.Vec2{Y: RowY(l.Row)},
		Width:  width,
		Height: info.height,
		Color:  info.color,
		Glyph:  info.glyph,
		Layer:  layerActor,
	})
	l.Entities = append(l.Entities, e)
}

// SetRow moves the lane and all of its entities to a track row.
func (l *Lane) SetRow(row int) {
	l.Row = row
	if l.destroyed {
		return
	}
	y := RowY(row)
	if n := l.graph.Get(l.node); n != nil {
		n.Pos.Y = y
	}
	for _, e := range l.Entities {
		if n := l.graph.Get(e.node); n != nil {
			n.Pos.Y = y
		}
	}
}

// Destroy releases the lane's nodes. Later calls are no-ops.
func (l *Lane) Destroy() {
	if l.destroyed {
		return
	}
	l.destroyed = true
	for _, e := range l.Entities {
		l.graph.MustDestroy(e.node)
	}
	l.Entities = nil
	l.graph.MustDestroy(l.node)
}

// Destroyed reports whether Destroy has run.
func (l *Lane) Destroyed() bool {
	return l.destroyed
}
