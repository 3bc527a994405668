package froggy

import (
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/scene"
)

// Facing is the direction the frog sprite points.
type Facing uint8

const (
	FacingUp Facing = iota
	FacingLeft
	FacingRight
)

var facingGlyphs = [...]rune{
	FacingUp:    '▲',
	FacingLeft:  '◀',
	FacingRight: '▶',
}

// Player is the frog. It always stands on PlayerRow.
type Player struct {
	X      float64
	Facing Facing

	cfg   config.FroggyPlayer
	graph *scene.Graph
	node  scene.NodeID
}

// NewPlayer places a frog at the centre of the player row.
func NewPlayer(g *scene.Graph, cfg config.FroggyPlayer) *Player {
	p := &Player{cfg: cfg, graph: g}
	p.node = g.Add(scene.Node{
		Shape: scene.ShapeGlyph,
		Pos:   core.Vec2{Y: RowY(PlayerRow)},
		Color: core.ColorBrightGreen,
		Glyph: facingGlyphs[FacingUp],
		Layer: layerPlayer,
	})
	return p
}

// Move steps the frog left (-1) or right (+1), clamped to the bound.
func (p *Player) Move(dir int) {
	p.X = core.ClampF(p.X+float64(dir)*p.cfg.Step, -p.cfg.Bound, p.cfg.Bound)
	switch {
	case dir < 0:
		p.Facing = FacingLeft
	case dir > 0:
		p.Facing = FacingRight
	}
	p.sync()
}

// Hop turns the frog forward. The window scrolls instead of the frog.
func (p *Player) Hop() {
	p.Facing = FacingUp
	p.sync()
}

// Carry shifts the frog with the platform it rides. No clamping: being
// carried past the bound is fatal.
func (p *Player) Carry(dx float64) {
	p.X += dx
	p.sync()
}

// Span returns the frog's footprint.
func (p *Player) Span() core.Span {
	return core.SpanAround(p.X, p.cfg.HalfWidth)
}

func (p *Player) sync() {
	if n := p.graph.Get(p.node); n != nil {
		n.Pos.X = p.X
		n.Glyph = facingGlyphs[p.Facing]
	}
}

// Destroy releases the frog's node.
func (p *Player) Destroy() {
	p.graph.MustDestroy(p.node)
}
