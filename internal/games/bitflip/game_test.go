package bitflip

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 7})
	return g
}

func TestFlipNeighbourhood(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		affected int
	}{
		{"centre", 4, 4, 9},
		{"corner", 0, 0, 4},
		{"edge", 7, 3, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(8, 3)
			if !g.Flip(tt.x, tt.y, true) {
				t.Fatal("Flip on the board should succeed")
			}
			count := 0
			for x := 0; x < 8; x++ {
				for y := 0; y < 8; y++ {
					if g.At(x, y) == 1 {
						count++
					}
				}
			}
			if count != tt.affected {
				t.Errorf("flipped %d tiles, expected %d", count, tt.affected)
			}
		})
	}
}

func TestFlipCycles(t *testing.T) {
	g := NewGrid(8, 3)

	g.Flip(2, 2, false)
	if g.At(2, 2) != 2 {
		t.Errorf("backward from 0 = %d, expected depth-1", g.At(2, 2))
	}
	g.Flip(2, 2, true)
	if !g.Solved() {
		t.Error("forward after backward should restore the board")
	}

	for i := 0; i < 3; i++ {
		g.Flip(5, 5, true)
	}
	if !g.Solved() {
		t.Error("depth forward flips should cycle back to 0")
	}
	if g.Flip(8, 0, true) || g.Flip(-1, 3, false) {
		t.Error("Flip off the board should fail")
	}
}

func TestMixUsesDistinctCells(t *testing.T) {
	g := NewGrid(8, 2)
	g.Mix(64, rand.New(rand.NewSource(1)))

	// Flipping every cell once: each tile changes once per neighbour.
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			neighbours := 0
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if g.InBounds(x+dx, y+dy) {
						neighbours++
					}
				}
			}
			if g.At(x, y) != neighbours%2 {
				t.Fatalf("tile (%d,%d) = %d, expected %d", x, y, g.At(x, y), neighbours%2)
			}
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		level, depth, moves, expected int
	}{
		{15, 2, 10, 290},
		{1, 2, 500, 1},
		{64, 10, 0, 6400},
	}
	for _, tt := range tests {
		if got := Score(tt.level, tt.depth, tt.moves); got != tt.expected {
			t.Errorf("Score(%d, %d, %d) = %d, expected %d", tt.level, tt.depth, tt.moves, got, tt.expected)
		}
	}
}

func TestMenuSettings(t *testing.T) {
	g := newTestGame()
	if g.Phase() != StateMenu {
		t.Fatalf("phase = %s, expected menu", g.Phase())
	}

	g.Step(core.Tap(core.ButtonLeft))
	if g.depth != 2 {
		t.Errorf("depth = %d, expected clamp at 2", g.depth)
	}
	for i := 0; i < 20; i++ {
		g.Step(core.Tap(core.ButtonRight))
	}
	if g.depth != 10 {
		t.Errorf("depth = %d, expected clamp at 10", g.depth)
	}
	if g.grid.Depth() != 10 {
		t.Error("depth change should rebuild the grid")
	}

	for i := 0; i < 100; i++ {
		g.Step(core.Tap(core.ButtonUp))
	}
	if g.level != 64 {
		t.Errorf("level = %d, expected clamp at 64", g.level)
	}
	for i := 0; i < 100; i++ {
		g.Step(core.Tap(core.ButtonDown))
	}
	if g.level != 1 {
		t.Errorf("level = %d, expected clamp at 1", g.level)
	}
}

func TestStartMixesBoard(t *testing.T) {
	g := newTestGame()
	g.Step(core.Tap(core.ButtonA))

	if g.Phase() != StatePlaying {
		t.Fatalf("phase = %s, expected playing", g.Phase())
	}
	if g.grid.Solved() {
		t.Error("board should be mixed")
	}
	if g.State().GameOver {
		t.Error("playing is not game over")
	}
}

func TestSolveWinsAndReturnsToMenu(t *testing.T) {
	g := newTestGame()
	for g.level > 1 {
		g.Step(core.Tap(core.ButtonDown))
	}
	g.Step(core.Tap(core.ButtonA))

	// Find the single mixed cell: the one whose neighbourhood is all 1.
	target := [2]int{-1, -1}
	for x := 0; x < 8 && target[0] < 0; x++ {
		for y := 0; y < 8; y++ {
			trial := NewGrid(8, 2)
			trial.Flip(x, y, true)
			if equalGrids(trial, g.grid) {
				target = [2]int{x, y}
				break
			}
		}
	}
	if target[0] < 0 {
		t.Fatal("could not locate the mixed cell")
	}

	g.selX, g.selY = target[0], target[1]
	res := g.Step(core.Tap(core.ButtonB))

	if g.Phase() != StateWon || !res.State.GameOver {
		t.Fatalf("phase = %s, expected won", g.Phase())
	}
	if res.State.Score != Score(1, 2, 1) || g.Best() != 19 {
		t.Errorf("score = %d best = %d, expected 19", res.State.Score, g.Best())
	}

	for i := 0; i < 24; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Phase() != StateWon {
		t.Fatal("left the win screen early")
	}
	g.Step(core.NewInputFrame())
	if g.Phase() != StateMenu {
		t.Errorf("phase = %s, expected menu after the delay", g.Phase())
	}
}

func TestSelectionStaysOnBoard(t *testing.T) {
	g := newTestGame()
	g.Step(core.Tap(core.ButtonA))

	for i := 0; i < 10; i++ {
		g.Step(core.Tap(core.ButtonLeft))
		g.Step(core.Tap(core.ButtonUp))
	}
	if g.selX != 0 || g.selY != 0 {
		t.Errorf("selection = (%d,%d), expected (0,0)", g.selX, g.selY)
	}
	for i := 0; i < 10; i++ {
		g.Step(core.Tap(core.ButtonRight))
		g.Step(core.Tap(core.ButtonDown))
	}
	if g.selX != 7 || g.selY != 7 {
		t.Errorf("selection = (%d,%d), expected (7,7)", g.selX, g.selY)
	}
}

func TestMenuButtonAndExit(t *testing.T) {
	g := newTestGame()
	g.Step(core.Tap(core.ButtonA))
	g.Step(core.Tap(core.ButtonMenu))
	if g.Phase() != StateMenu {
		t.Fatalf("phase = %s, expected menu", g.Phase())
	}
	res := g.Step(core.Tap(core.ButtonMenu))
	if !res.State.Quit {
		t.Error("MENU in the menu should exit")
	}
}

func TestResetAgain(t *testing.T) {
	g := newTestGame()
	nodes := g.graph.Len()

	g.Reset(core.RuntimeConfig{Seed: 7})
	if g.graph.Len() != nodes {
		t.Errorf("nodes after second Reset = %d, expected %d", g.graph.Len(), nodes)
	}

	g.Step(core.Tap(core.ButtonA))
	g.Reset(core.RuntimeConfig{Seed: 7})
	if g.Phase() != StateMenu || !g.grid.Solved() {
		t.Errorf("Reset mid-game left phase %s, solved %v", g.Phase(), g.grid.Solved())
	}
	if g.graph.Len() != nodes {
		t.Errorf("nodes after Reset mid-game = %d, expected %d", g.graph.Len(), nodes)
	}
}

func TestPersistence(t *testing.T) {
	store := core.NewMemoryStore()
	g := New()
	g.Load(store)
	if g.Best() != 0 {
		t.Errorf("best = %d, expected default 0", g.Best())
	}
	g.best = 77
	if err := g.Save(store); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if store.LoadInt(KeyBest, 0) != 77 {
		t.Error("best not saved")
	}
}

func TestRenderMenu(t *testing.T) {
	g := newTestGame()
	s := core.NewScreen(64, 32)
	g.Render(s)

	out := s.String()
	for _, want := range []string{"BitFlip", "Level: 15", "Depth: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q:\n%s", want, out)
		}
	}
}

func equalGrids(a, b *Grid) bool {
	for x := 0; x < a.Size(); x++ {
		for y := 0; y < a.Size(); y++ {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}
