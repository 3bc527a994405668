package bitflip

// Grid is a square board of tiles. Each tile holds a value in [0, depth);
// the puzzle is solved when every tile is 0.
type Grid struct {
	size  int
	depth int
	tiles [][]int // tiles[x][y]
}

// NewGrid creates a solved grid.
func NewGrid(size, depth int) *Grid {
	g := &Grid{size: size, depth: max(depth, 1)}
	g.tiles = make([][]int, size)
	for x := range g.tiles {
		g.tiles[x] = make([]int, size)
	}
	return g
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Depth returns the number of tile values.
func (g *Grid) Depth() int { return g.depth }

// At returns the value of a tile.
func (g *Grid) At(x, y int) int { return g.tiles[x][y] }

// InBounds reports whether (x, y) is on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Flip cycles the 3x3 neighbourhood around (x, y), forward or backward.
// Cells off the board are skipped. It reports false for an off-board
// centre.
func (g *Grid) Flip(x, y int, forward bool) bool {
	if !g.InBounds(x, y) {
		return false
	}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if !g.InBounds(x+dx, y+dy) {
				continue
			}
			v := &g.tiles[x+dx][y+dy]
			if forward {
				*v = (*v + 1) % g.depth
			} else {
				*v = (*v + g.depth - 1) % g.depth
			}
		}
	}
	return true
}

// Mix flips n distinct random cells forward. n is capped at the number of
// cells.
func (g *Grid) Mix(n int, rng interface{ Float64() float64 }) {
	cells := make([][2]int, 0, g.size*g.size)
	for x := 0; x < g.size; x++ {
		for y := 0; y < g.size; y++ {
			cells = append(cells, [2]int{x, y})
		}
	}
	for i := 0; i < n && len(cells) > 0; i++ {
		idx := int(rng.Float64() * float64(len(cells)))
		c := cells[idx]
		g.Flip(c[0], c[1], true)
		cells = append(cells[:idx], cells[idx+1:]...)
	}
}

// Solved reports whether every tile is 0.
func (g *Grid) Solved() bool {
	for _, col := range g.tiles {
		for _, v := range col {
			if v != 0 {
				return false
			}
		}
	}
	return true
}
