// Package bitflip implements BitFlip, a tile-cycling puzzle. Flipping a
// tile cycles it and its eight neighbours through the colours; restore
// the board to a single colour in as few moves as possible.
package bitflip

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/scene"
)

// KeyBest is the save key of the high score.
const KeyBest = "highscore"

// tileColors is indexed by tile value.
var tileColors = []core.Color{
	core.ColorRed,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorPurple,
	core.ColorYellow,
	core.ColorDarkGray,
	core.ColorSilver,
	core.ColorBrown,
	core.ColorOrange,
	core.ColorSkyBlue,
}

// State is the phase of the game loop.
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StateWon
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements BitFlip.
type Game struct {
	cfg config.BitFlipConfig
	rng *rand.Rand

	graph     *scene.Graph
	tileNodes [][]scene.NodeID
	cursor    scene.NodeID
	menuNodes []scene.NodeID

	grid     *Grid
	selX     int
	selY     int
	depth    int
	level    int
	moves    int
	score    int
	best     int
	state    State
	winTicks int
}

// New creates a BitFlip game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultBitFlipConfig())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.BitFlipConfig) *Game {
	return &Game{
		cfg:   cfg,
		depth: cfg.Depth.Default,
		level: cfg.Level.Default,
	}
}

func newFromFlags() *Game {
	cfg, err := config.LoadBitFlip(configPath)
	if err != nil {
		cfg = config.DefaultBitFlipConfig()
	}
	return NewWithConfig(cfg)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bitflip"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "BitFlip"
}

// TickRate returns the simulation rate.
func (g *Game) TickRate() int {
	if g.cfg.TickRate > 0 {
		return g.cfg.TickRate
	}
	return 25
}

// Load reads the high score.
func (g *Game) Load(store core.SaveStore) {
	g.best = store.LoadInt(KeyBest, 0)
}

// Save writes the high score.
func (g *Game) Save(store core.SaveStore) error {
	return store.SaveInt(KeyBest, g.best)
}

// Best returns the high score.
func (g *Game) Best() int {
	return g.best
}

// Reset builds a solved board and opens the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.graph = scene.New()
	g.tileNodes = nil
	g.cursor = 0
	g.newBoard()
	g.menuNodes = []scene.NodeID{
		g.graph.Add(scene.Node{Shape: scene.ShapeRect, Width: core.WorldSize, Height: core.WorldSize, Glyph: ' ', Layer: 3}),
		g.graph.Add(scene.Node{Shape: scene.ShapeText, Pos: core.Vec2{Y: 3*12 - 64}, Text: "BitFlip", Color: core.ColorRed, Layer: 4}),
		g.graph.Add(scene.Node{Shape: scene.ShapeText, Pos: core.Vec2{Y: 4*12 - 64}, Color: core.ColorWhite, Layer: 4}),
		g.graph.Add(scene.Node{Shape: scene.ShapeText, Pos: core.Vec2{Y: 5*12 - 64}, Color: core.ColorWhite, Layer: 4}),
	}
	g.moves = 0
	g.score = 0
	g.state = StateMenu
	g.sync()
}

// newBoard replaces the grid and its nodes with a solved board.
func (g *Game) newBoard() {
	for _, col := range g.tileNodes {
		for _, id := range col {
			g.graph.MustDestroy(id)
		}
	}
	if g.cursor != 0 {
		g.graph.MustDestroy(g.cursor)
	}

	size := g.cfg.Grid
	g.grid = NewGrid(size, g.depth)
	tile := core.WorldSize / float64(size)
	half := size / 2

	g.tileNodes = make([][]scene.NodeID, size)
	for x := 0; x < size; x++ {
		g.tileNodes[x] = make([]scene.NodeID, size)
		for y := 0; y < size; y++ {
			g.tileNodes[x][y] = g.graph.Add(scene.Node{
				Shape:  scene.ShapeRect,
				Pos:    core.Vec2{X: tile * (float64(x-half) + 0.5), Y: tile * (float64(y-half) + 0.5)},
				Width:  tile,
				Height: tile,
				Glyph:  '▒',
				Layer:  1,
			})
		}
	}
	g.cursor = g.graph.Add(scene.Node{
		Shape:   scene.ShapeRect,
		Width:   tile,
		Height:  tile,
		Color:   core.ColorBrightWhite,
		Outline: true,
		Layer:   2,
	})
	g.selX, g.selY = half, half
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateMenu:
		g.stepMenu(in)
	case StatePlaying:
		g.stepPlaying(in)
	case StateWon:
		g.winTicks++
		if g.winTicks >= g.cfg.WinDelayTicks {
			g.state = StateMenu
		}
	}
	g.sync()
	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(in core.InputFrame) {
	depth := g.depth
	if in.IsJustPressed(core.ButtonLeft) {
		depth--
	}
	if in.IsJustPressed(core.ButtonRight) {
		depth++
	}
	depth = core.Clamp(depth, g.cfg.Depth.Min, min(g.cfg.Depth.Max, len(tileColors)))
	if depth != g.depth {
		g.depth = depth
		g.newBoard()
	}

	if in.IsJustPressed(core.ButtonUp) {
		g.level++
	}
	if in.IsJustPressed(core.ButtonDown) {
		g.level--
	}
	g.level = core.Clamp(g.level, g.cfg.Level.Min, min(g.cfg.Level.Max, g.cfg.Grid*g.cfg.Grid))

	if in.IsJustPressed(core.ButtonMenu) {
		g.state = StateExit
		return
	}
	if in.IsJustPressed(core.ButtonA) {
		g.grid.Mix(g.level, g.rng)
		g.moves = 0
		g.score = 0
		g.state = StatePlaying
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.IsJustPressed(core.ButtonLeft) {
		g.moveSelection(-1, 0)
	}
	if in.IsJustPressed(core.ButtonRight) {
		g.moveSelection(1, 0)
	}
	if in.IsJustPressed(core.ButtonUp) {
		g.moveSelection(0, -1)
	}
	if in.IsJustPressed(core.ButtonDown) {
		g.moveSelection(0, 1)
	}
	if in.IsJustPressed(core.ButtonA) {
		g.grid.Flip(g.selX, g.selY, true)
		g.moves++
	}
	if in.IsJustPressed(core.ButtonB) {
		g.grid.Flip(g.selX, g.selY, false)
		g.moves++
	}

	if in.IsJustPressed(core.ButtonMenu) {
		g.state = StateMenu
		return
	}
	if g.grid.Solved() {
		g.win()
	}
}

func (g *Game) moveSelection(dx, dy int) {
	if g.grid.InBounds(g.selX+dx, g.selY+dy) {
		g.selX += dx
		g.selY += dy
	}
}

func (g *Game) win() {
	g.score = Score(g.level, g.depth, g.moves)
	if g.score > g.best {
		g.best = g.score
	}
	g.winTicks = 0
	g.state = StateWon
}

// Score rewards harder puzzles solved in fewer moves. It is at least 1.
func Score(level, depth, moves int) int {
	return max(level*depth*10-moves, 1)
}

// sync copies the board and menu state into the scene.
func (g *Game) sync() {
	tile := core.WorldSize / float64(g.grid.Size())
	half := g.grid.Size() / 2
	for x, col := range g.tileNodes {
		for y, id := range col {
			if n := g.graph.Get(id); n != nil {
				n.Color = tileColors[g.grid.At(x, y)%len(tileColors)]
				n.Glyph = '▒'
				if x == g.selX && y == g.selY {
					n.Glyph = '█'
				}
			}
		}
	}
	if n := g.graph.Get(g.cursor); n != nil {
		n.Pos = core.Vec2{X: tile * (float64(g.selX-half) + 0.5), Y: tile * (float64(g.selY-half) + 0.5)}
	}

	inMenu := g.state == StateMenu || g.state == StateExit
	texts := []string{"", "BitFlip", fmt.Sprintf("Level: %d", g.level), fmt.Sprintf("Depth: %d", g.depth)}
	for i, id := range g.menuNodes {
		if n := g.graph.Get(id); n != nil {
			n.Hidden = !inMenu
			if texts[i] != "" {
				n.Text = texts[i]
			}
		}
	}
}

// State returns the current game state. Score is non-zero only after a
// solved puzzle.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state != StatePlaying,
		Quit:     g.state == StateExit,
	}
}

// Phase returns the state machine phase.
func (g *Game) Phase() State {
	return g.state
}

// Moves returns the number of flips in the current puzzle.
func (g *Game) Moves() int {
	return g.moves
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.graph == nil {
		return
	}
	g.graph.Render(dst)

	if g.state == StateWon {
		dst.DrawMessage("Solved!", fmt.Sprintf("%d moves, score %d", g.moves, g.score))
	}
}

func init() {
	registry.Register("bitflip", func() registry.Game {
		return newFromFlags()
	})
}
