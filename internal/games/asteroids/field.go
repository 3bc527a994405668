package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/scene"
)

var meteorColors = []core.Color{
	core.ColorWhite,
	core.ColorSilver,
	core.ColorBrightYellow,
	core.ColorBrightCyan,
	core.ColorBrightMagenta,
	core.ColorOrange,
}

// Meteoroid drifts across the field. Slope is its velocity in
// divisor-scaled units.
type Meteoroid struct {
	Pos    core.Vec2
	Radius float64
	Slope  [2]int

	node scene.NodeID
}

// towardCentre returns +1 for negative coordinates and -1 otherwise.
func towardCentre(v float64) int {
	if v < 0 {
		return 1
	}
	return -1
}

// Field owns the meteoroids.
type Field struct {
	Meteoroids []*Meteoroid

	cfg   config.AsteroidsMeteors
	rng   *rand.Rand
	graph *scene.Graph
}

func newField(g *scene.Graph, rng *rand.Rand, cfg config.AsteroidsMeteors) *Field {
	return &Field{cfg: cfg, rng: rng, graph: g}
}

// Limit is the population the field tops up to for a score.
func (f *Field) Limit(score int) int {
	return min(f.cfg.BaseCount+config.StepTier(score, f.cfg.CountStep), f.cfg.MaxCount)
}

// spawn creates a meteoroid on a random edge heading inwards.
func (f *Field) spawn(radius float64) *Meteoroid {
	var pos [2]float64
	axis := f.rng.Intn(2)
	pos[axis] = -edge + f.rng.Float64()*2*edge
	pos[1-axis] = [2]float64{-edge, edge}[f.rng.Intn(2)]

	m := &Meteoroid{
		Pos:    core.Vec2{X: pos[0], Y: pos[1]},
		Radius: radius,
	}
	m.Slope = f.slopes(m.Pos)
	m.node = f.graph.Add(scene.Node{
		Shape:  scene.ShapeCircle,
		Pos:    m.Pos,
		Radius: radius,
		Color:  meteorColors[f.rng.Intn(len(meteorColors))],
		Glyph:  '@',
		Layer:  layerMeteor,
	})
	f.Meteoroids = append(f.Meteoroids, m)
	return m
}

func (f *Field) slopes(pos core.Vec2) [2]int {
	maxSlope := max(f.cfg.MaxSlope, 1)
	return [2]int{
		(1 + f.rng.Intn(maxSlope)) * towardCentre(pos.X),
		(1 + f.rng.Intn(maxSlope)) * towardCentre(pos.Y),
	}
}

// Tick tops up the population, drops dead or escaped meteoroids and moves
// the rest. speedTier slows the divisor.
func (f *Field) Tick(score, speedTier int) {
	if len(f.Meteoroids) <= f.Limit(score) {
		sizes := f.cfg.Sizes
		if len(sizes) > 0 {
			f.spawn(sizes[f.rng.Intn(len(sizes))])
		}
	}

	kept := f.Meteoroids[:0]
	for _, m := range f.Meteoroids {
		if m.Radius <= 0 || m.Pos.X > edge || m.Pos.X < -edge || m.Pos.Y > edge || m.Pos.Y < -edge {
			f.graph.MustDestroy(m.node)
			continue
		}
		kept = append(kept, m)
	}
	clear(f.Meteoroids[len(kept):])
	f.Meteoroids = kept

	div := max(f.cfg.SpeedDivisor-float64(speedTier), 1)
	for _, m := range f.Meteoroids {
		m.Pos.X += float64(m.Slope[0]) / div
		m.Pos.Y += float64(m.Slope[1]) / div
		if n := f.graph.Get(m.node); n != nil {
			n.Pos = m.Pos
		}
	}
}

// Split shrinks a hit meteoroid and sends it inwards again. While it is
// still alive a same-sized fragment breaks off with its own heading.
func (f *Field) Split(m *Meteoroid) {
	m.Radius -= f.cfg.SplitShrink
	m.Slope = f.slopes(m.Pos)
	if n := f.graph.Get(m.node); n != nil {
		n.Radius = m.Radius
		n.Hidden = m.Radius <= 0
	}
	if m.Radius <= 0 {
		return
	}

	frag := f.spawn(m.Radius)
	frag.Pos = m.Pos
	if n := f.graph.Get(frag.node); n != nil {
		n.Pos = m.Pos
	}
}

// Points is the score for hitting m, taken after the split.
func (f *Field) Points(m *Meteoroid) float64 {
	return (f.cfg.PointsBase - m.Radius) * 10
}

// Clear releases every meteoroid.
func (f *Field) Clear() {
	for _, m := range f.Meteoroids {
		f.graph.MustDestroy(m.node)
	}
	f.Meteoroids = nil
}
