// Package asteroids implements an Asteroids clone: rotate, thrust, shoot
// the meteoroids drifting in from the edges and shield yourself at the
// cost of points.
package asteroids

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

// edge is the outermost coordinate a meteoroid may occupy.
const edge = core.WorldHalf - 1

const (
	layerShield = 0
	layerShip   = 1
	layerBullet = 1
	layerMeteor = 2
	layerHUD    = 4
)

// State is the phase of the game loop.
type State uint8

const (
	StatePlaying State = iota
	StatePaused
	StateOver
	StateExit
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements Asteroids.
type Game struct {
	cfg        config.AsteroidsConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	graph   *scene.Graph
	hud     scene.NodeID
	ship    *Ship
	bullets []*Bullet
	field   *Field

	state State
	score float64
	best  int
	tick  uint64
}

// New creates an Asteroids game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultAsteroidsConfig())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.AsteroidsConfig) *Game {
	return &Game{cfg: cfg}
}

func newFromFlags() *Game {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}
	config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	return NewWithConfig(cfg)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
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

// Reset initializes the RNG and starts the first round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.graph = scene.New()
	g.hud = g.graph.Add(scene.Node{
		Shape: scene.ShapeText,
		Pos:   core.Vec2{X: 50, Y: -56},
		Color: core.ColorBrightWhite,
		Layer: layerHUD,
	})
	g.ship = nil
	g.field = nil
	g.bullets = nil
	g.tick = 0
	g.newRound()
}

func (g *Game) newRound() {
	g.clearRound()
	g.ship = newShip(g.graph, g.cfg.Ship)
	g.field = newField(g.graph, g.rng, g.cfg.Meteoroids)
	g.score = 0
	g.state = StatePlaying
	g.updateHUD()
}

// clearRound releases the ship, bullets and meteoroids that are left.
func (g *Game) clearRound() {
	if g.field != nil {
		g.field.Clear()
		g.field = nil
	}
	for _, b := range g.bullets {
		g.graph.MustDestroy(b.node)
	}
	g.bullets = nil
	if g.ship != nil {
		g.ship.destroy()
		g.ship = nil
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.state {
	case StatePlaying:
		g.stepPlaying(in)
	case StatePaused, StateOver:
		g.stepMenu(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(in core.InputFrame) {
	if in.IsJustPressed(core.ButtonA) {
		if g.state == StateOver {
			g.newRound()
		} else {
			g.state = StatePlaying
		}
		g.updateHUD()
		return
	}
	if in.IsJustPressed(core.ButtonMenu) {
		g.state = StateExit
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	score := int(g.score)
	g.field.Tick(score, g.difficulty.Tier(score))
	g.ship.Move()
	g.moveBullets()

	if g.ship.Shield && g.score <= 0 {
		g.ship.Shield = false
	}
	if g.ship.Shield {
		g.score = max(g.score-g.cfg.Shield.Drain, 0)
	}
	g.ship.sync()

	if g.collide() {
		g.updateHUD()
		return
	}

	if in.IsPressed(core.ButtonLeft) || in.IsPressed(core.ButtonLB) {
		g.ship.Rotate(1)
	}
	if in.IsPressed(core.ButtonRight) || in.IsPressed(core.ButtonRB) {
		g.ship.Rotate(-1)
	}
	if in.IsPressed(core.ButtonUp) {
		g.ship.Thrust()
	}
	if in.IsJustPressed(core.ButtonA) {
		g.shoot()
	}
	if in.IsJustPressed(core.ButtonB) {
		if g.score > 0 {
			g.ship.Shield = true
		}
	} else if in.IsJustReleased(core.ButtonB) {
		g.ship.Shield = false
	}
	g.ship.sync()

	if in.IsJustPressed(core.ButtonMenu) {
		g.state = StatePaused
	}
	g.updateHUD()
}

func (g *Game) shoot() {
	b := &Bullet{Pos: g.ship.Pos, Angle: g.ship.Angle, Active: true}
	b.node = g.graph.Add(scene.Node{
		Shape:    scene.ShapeGlyph,
		Pos:      b.Pos,
		Rotation: b.Angle,
		Color:    core.ColorBrightYellow,
		Glyph:    '•',
		Layer:    layerBullet,
	})
	g.bullets = append(g.bullets, b)
}

func (g *Game) moveBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if b.gone(g.cfg.Bullets.Bound) {
			g.graph.MustDestroy(b.node)
			continue
		}
		kept = append(kept, b)
	}
	clear(g.bullets[len(kept):])
	g.bullets = kept

	for _, b := range g.bullets {
		b.move(g.cfg.Bullets.Speed)
		if n := g.graph.Get(b.node); n != nil {
			n.Pos = b.Pos
		}
	}
}

// collide handles at most one collision per tick and reports whether one
// happened. The ship is checked before the bullets.
func (g *Game) collide() bool {
	for _, m := range g.field.Meteoroids {
		if m.Pos.Dist(g.ship.Pos) < m.Radius && !g.ship.Shield {
			g.gameOver()
			return true
		}
	}

	for _, m := range g.field.Meteoroids {
		for _, b := range g.bullets {
			if !b.Active || m.Pos.Dist(b.Pos) >= m.Radius {
				continue
			}
			g.field.Split(m)
			b.Active = false
			g.score += g.field.Points(m)
			return true
		}
	}
	return false
}

func (g *Game) gameOver() {
	if s := int(g.score); s > g.best {
		g.best = s
	}
	g.clearRound()
	g.state = StateOver
}

func (g *Game) updateHUD() {
	n := g.graph.Get(g.hud)
	if n == nil {
		return
	}
	n.Text = fmt.Sprintf("%d", int(g.score))
	n.Hidden = g.state != StatePlaying
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.score),
		GameOver: g.state == StateOver || g.state == StateExit,
		Paused:   g.state == StatePaused,
		Quit:     g.state == StateExit,
	}
}

// Phase returns the state machine phase.
func (g *Game) Phase() State {
	return g.state
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.graph == nil {
		return
	}
	g.graph.Render(dst)

	switch g.state {
	case StatePaused:
		dst.DrawMessage("Paused", "Press A to resume")
	case StateOver, StateExit:
		dst.DrawMessage(
			fmt.Sprintf("Your score was: %d", int(g.score)),
			fmt.Sprintf("Highscore: %d", g.best),
			"Press A to restart.",
		)
	}
}

func init() {
	registry.Register("asteroids", func() registry.Game {
		return newFromFlags()
	})
}
