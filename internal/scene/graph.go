// Package scene is the node-based rendering collaborator shared by the games.
//
// Games create nodes (rectangles, circles, glyph sprites, text) in world
// coordinates, mutate their attributes at any time and call MarkDestroy
// exactly once when the object is logically removed. The graph paints the
// live nodes into a core.Screen in layer order.
package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

var (
	// ErrUnknownNode is returned for ids the graph never handed out.
	ErrUnknownNode = errors.New("scene: unknown node")
	// ErrDestroyed is returned when a node is destroyed a second time.
	ErrDestroyed = errors.New("scene: node already destroyed")
)

// NodeID identifies a node. The zero value is never issued.
type NodeID uint64

// Shape selects how a node is painted.
type Shape uint8

const (
	ShapeRect   Shape = iota // filled (or outlined) box of Width x Height
	ShapeCircle              // disc (or ring) of Radius
	ShapeGlyph               // a single character at Pos
	ShapeText                // multi-line text centred on Pos
)

// Node is a visual element. Fields may be mutated freely through Get.
type Node struct {
	Shape    Shape
	Pos      core.Vec2
	Rotation float64
	Width    float64
	Height   float64
	Radius   float64
	Color    core.Color
	Layer    int
	Glyph    rune // fill rune for rects and circles, the character for glyphs
	Text     string
	Outline  bool
	Hidden   bool
}

// Graph owns every live node.
type Graph struct {
	nodes map[NodeID]*Node
	next  NodeID
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[NodeID]*Node)}
}

// Add inserts a node and returns its id.
func (g *Graph) Add(n Node) NodeID {
	g.next++
	node := n
	g.nodes[g.next] = &node
	return g.next
}

// Get returns the live node for id, or nil once it has been destroyed.
func (g *Graph) Get(id NodeID) *Node {
	return g.nodes[id]
}

// MarkDestroy removes a node. Destroying the same node twice is an error.
func (g *Graph) MarkDestroy(id NodeID) error {
	if id == 0 || id > g.next {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %d", ErrDestroyed, id)
	}
	delete(g.nodes, id)
	return nil
}

// MustDestroy is MarkDestroy for callers whose ownership rules make a failure
// a programming error.
func (g *Graph) MustDestroy(id NodeID) {
	if err := g.MarkDestroy(id); err != nil {
		panic(err)
	}
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Render paints every visible node into dst, lowest layer first. World
// coordinates [-WorldHalf, WorldHalf) are stretched over the whole screen.
func (g *Graph) Render(dst *core.Screen) {
	ids := make([]NodeID, 0, len(g.nodes))
	for id, n := range g.nodes {
		if !n.Hidden {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := g.nodes[ids[i]], g.nodes[ids[j]]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return ids[i] < ids[j]
	})

	v := newViewport(dst)
	for _, id := range ids {
		v.paint(dst, g.nodes[id])
	}
}

type viewport struct {
	sx, sy float64 // cells per world unit
}

func newViewport(dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / core.WorldSize,
		sy: float64(dst.Height()) / core.WorldSize,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x + core.WorldHalf) * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor((y + core.WorldHalf) * v.sy))
}

func (v viewport) paint(dst *core.Screen, n *Node) {
	fill := n.Glyph
	if fill == 0 {
		fill = '█'
	}

	switch n.Shape {
	case ShapeRect:
		x0, x1 := v.col(n.Pos.X-n.Width/2), v.col(n.Pos.X+n.Width/2)
		y0, y1 := v.row(n.Pos.Y-n.Height/2), v.row(n.Pos.Y+n.Height/2)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}
		r := core.NewRect(x0, y0, x1-x0, y1-y0)
		if n.Outline {
			dst.DrawBox(r, n.Color)
		} else {
			dst.DrawRect(r, fill, n.Color)
		}

	case ShapeCircle:
		cx, cy := v.col(n.Pos.X), v.row(n.Pos.Y)
		rx := int(math.Ceil(n.Radius * v.sx))
		ry := int(math.Ceil(n.Radius * v.sy))
		for y := cy - ry; y <= cy+ry; y++ {
			for x := cx - rx; x <= cx+rx; x++ {
				// distance in world units from the cell centre
				wx := (float64(x)+0.5)/v.sx - core.WorldHalf - n.Pos.X
				wy := (float64(y)+0.5)/v.sy - core.WorldHalf - n.Pos.Y
				d := math.Hypot(wx, wy)
				if d > n.Radius {
					continue
				}
				if n.Outline && d < n.Radius-math.Max(1/v.sx, 1/v.sy) {
					continue
				}
				dst.SetCell(x, y, fill, n.Color)
			}
		}
		if rx == 0 && ry == 0 {
			dst.SetCell(cx, cy, fill, n.Color)
		}

	case ShapeGlyph:
		dst.SetCell(v.col(n.Pos.X), v.row(n.Pos.Y), fill, n.Color)

	case ShapeText:
		lines := strings.Split(n.Text, "\n")
		top := v.row(n.Pos.Y) - len(lines)/2
		for i, l := range lines {
			x := v.col(n.Pos.X) - len([]rune(l))/2
			dst.DrawText(x, top+i, l, n.Color)
		}
	}
}
