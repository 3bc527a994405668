package asteroids

import (
	"math"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/scene"
)

// shipGlyphs point the ship in eight directions, counter-clockwise from
// east.
var shipGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Ship is the player. Angle is in radians, counter-clockwise, with screen
// y pointing down.
type Ship struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Angle  float64
	Shield bool

	cfg        config.AsteroidsShip
	graph      *scene.Graph
	node       scene.NodeID
	shieldNode scene.NodeID
}

func newShip(g *scene.Graph, cfg config.AsteroidsShip) *Ship {
	s := &Ship{cfg: cfg, graph: g}
	s.node = g.Add(scene.Node{
		Shape: scene.ShapeGlyph,
		Color: core.ColorBrightWhite,
		Glyph: shipGlyphs[0],
		Layer: layerShip,
	})
	s.shieldNode = g.Add(scene.Node{
		Shape:   scene.ShapeCircle,
		Radius:  cfg.Radius + 3,
		Color:   core.ColorBrightBlue,
		Glyph:   '·',
		Outline: true,
		Hidden:  true,
		Layer:   layerShield,
	})
	return s
}

// Rotate turns the ship by one step; +1 is counter-clockwise.
func (s *Ship) Rotate(dir int) {
	steps := float64(max(s.cfg.RotationSteps, 1))
	s.Angle = math.Mod(s.Angle+float64(dir)*math.Pi/steps, 2*math.Pi)
	if s.Angle < 0 {
		s.Angle += 2 * math.Pi
	}
}

// Thrust accelerates along the heading, clamped per axis to the top speed.
func (s *Ship) Thrust() {
	top := s.cfg.TopSpeed
	s.Vel.X = core.ClampF(s.Vel.X+math.Cos(s.Angle)/s.cfg.Acceleration, -top, top)
	s.Vel.Y = core.ClampF(s.Vel.Y+math.Sin(s.Angle)/s.cfg.Acceleration, -top, top)
}

// Move applies momentum and wraps around the screen edges.
func (s *Ship) Move() {
	s.Pos.X = core.Wrap(s.Pos.X+s.Vel.X, core.WorldHalf)
	s.Pos.Y = core.Wrap(s.Pos.Y-s.Vel.Y, core.WorldHalf)
	s.sync()
}

func (s *Ship) sync() {
	if n := s.graph.Get(s.node); n != nil {
		n.Pos = s.Pos
		n.Rotation = s.Angle
		idx := int(math.Round(s.Angle/(math.Pi/4))) % len(shipGlyphs)
		n.Glyph = shipGlyphs[idx]
	}
	if n := s.graph.Get(s.shieldNode); n != nil {
		n.Pos = s.Pos
		n.Hidden = !s.Shield
	}
}

func (s *Ship) destroy() {
	s.graph.MustDestroy(s.node)
	s.graph.MustDestroy(s.shieldNode)
}

// Bullet travels in a straight line from where it was fired.
type Bullet struct {
	Pos    core.Vec2
	Angle  float64
	Active bool

	node scene.NodeID
}

func (b *Bullet) move(speed float64) {
	b.Pos.X += speed * math.Cos(b.Angle)
	b.Pos.Y -= speed * math.Sin(b.Angle)
}

func (b *Bullet) gone(bound float64) bool {
	return !b.Active || math.Abs(b.Pos.X) > bound || math.Abs(b.Pos.Y) > bound
}
