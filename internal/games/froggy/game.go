// Package froggy implements Froggy Road, a lane-crossing game.
// The frog hops forward through a scrolling window of procedurally
// generated roads and rivers; every hop scores a point.
package froggy

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/scene"
)

// Save keys under the froggy location.
const (
	KeyWorld     = "world"
	KeyBest      = "highscore"
	KeyBestWorld = "highworld"
)

// State is the phase of the game loop.
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StateDying
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateDying:
		return "dying"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Record is the persistent part of the game.
type Record struct {
	World     int // seeds every run
	Best      int
	BestWorld int // world Best was reached in
}

// Update stores score as the new best if it beats the old one.
func (r *Record) Update(score int) bool {
	if score <= r.Best {
		return false
	}
	r.Best = score
	r.BestWorld = r.World
	return true
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

// Game implements Froggy Road.
type Game struct {
	cfg     config.FroggyConfig
	runtime core.RuntimeConfig
	rumble  core.Rumbler

	graph    *scene.Graph
	hud      scene.NodeID
	track    *Track
	player   *Player
	rng      *rand.Rand
	gen      *Generator
	genState GenState

	state       State
	score       int
	record      Record
	tick        uint64
	dyingTicks  int
	rumbling    bool
	rumbleClock int
}

// New creates a Froggy Road game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultFroggyConfig())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.FroggyConfig) *Game {
	return &Game{
		cfg:    cfg,
		record: Record{World: cfg.World.Min, BestWorld: cfg.World.Min},
	}
}

// newFromFlags loads the configuration selected on the command line.
func newFromFlags() *Game {
	cfg, err := config.LoadFroggy(configPath)
	if err != nil {
		cfg = config.DefaultFroggyConfig()
	}
	config.ApplyFroggyPreset(&cfg, difficultyPreset)
	return NewWithConfig(cfg)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "froggy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Froggy Road"
}

// TickRate returns the simulation rate.
func (g *Game) TickRate() int {
	if g.cfg.TickRate > 0 {
		return g.cfg.TickRate
	}
	return 25
}

// Load reads the persistent record.
func (g *Game) Load(store core.SaveStore) {
	g.record = Record{
		World:     store.LoadInt(KeyWorld, g.cfg.World.Min),
		Best:      store.LoadInt(KeyBest, 0),
		BestWorld: store.LoadInt(KeyBestWorld, g.cfg.World.Min),
	}
	g.record.World = core.Clamp(g.record.World, g.cfg.World.Min, g.cfg.World.Max)
}

// Save writes the persistent record.
func (g *Game) Save(store core.SaveStore) error {
	return errors.Join(
		store.SaveInt(KeyWorld, g.record.World),
		store.SaveInt(KeyBest, g.record.Best),
		store.SaveInt(KeyBestWorld, g.record.BestWorld),
	)
}

// Record returns the persistent record.
func (g *Game) Record() Record {
	return g.record
}

// Reset starts the first run. A non-zero seed selects the world.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rumble = cfg.Rumble
	if g.rumble == nil {
		g.rumble = core.NopRumbler{}
	}
	if cfg.Seed != 0 {
		g.record.World = int(max(int64(g.cfg.World.Min), min(cfg.Seed, int64(g.cfg.World.Max))))
	}

	if g.track != nil {
		g.track.Destroy()
		g.track = nil
	}
	g.graph = scene.New()
	g.player = nil
	g.hud = g.graph.Add(scene.Node{
		Shape: scene.ShapeText,
		Pos:   core.Vec2{Y: -core.WorldHalf + 8},
		Color: core.ColorBrightWhite,
		Layer: layerHUD,
	})
	g.tick = 0
	g.rumbling = false
	g.rumbleClock = 0

	g.startRun()
}

// startRun tears down what is left of the previous run and builds the
// opening layout for the current world.
func (g *Game) startRun() {
	if g.track != nil {
		g.track.Destroy()
	}
	if g.player != nil {
		g.player.Destroy()
	}

	g.score = 0
	g.genState = NewGenState()
	g.rng = rand.New(rand.NewSource(int64(g.record.World)))
	g.gen = NewGenerator(g.rng, config.NewDifficultyManager(g.cfg.Difficulty), g.cfg.Lanes)

	lanes := make([]*Lane, 0, TrackLen)
	for _, p := range openingLayout() {
		lanes = append(lanes, g.newLane(p))
	}
	g.track = NewTrack(lanes)
	g.player = NewPlayer(g.graph, g.cfg.Player)
	g.dyingTicks = 0
	g.state = StatePlaying
	g.updateHUD()
}

// openingLayout is the fixed start of every run, nearest lane first.
func openingLayout() []LaneParams {
	safe := LaneParams{Kind: LaneSafe}
	return []LaneParams{
		safe, safe, safe, safe, safe,
		{Kind: LaneCarryLog, Speed: 1, Direction: -1, SpawnInterval: 75},
		safe,
		{Kind: LaneBlocking, Speed: 1, Direction: 1, SpawnInterval: 75},
	}
}

// newLane creates a lane seeded by one draw from the run RNG.
func (g *Game) newLane(p LaneParams) *Lane {
	return NewLane(p, g.rng.Int63(), g.graph, &g.cfg)
}

// Step advances the game by one tick. At most one state transition
// happens per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.tickRumble()

	switch g.state {
	case StateMenu:
		g.stepMenu(in)
	case StatePlaying:
		g.stepPlaying(in)
	case StateDying:
		g.stepDying()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	g.track.TickAll()

	lane, err := g.track.Lane(PlayerRow)
	if err != nil || Resolve(lane, g.player) == Died {
		g.die()
		return
	}

	if in.IsJustPressed(core.ButtonUp) || in.IsJustPressed(core.ButtonRB) {
		g.hop()
	}
	if in.IsJustPressed(core.ButtonLeft) {
		g.player.Move(-1)
	}
	if in.IsJustPressed(core.ButtonRight) {
		g.player.Move(1)
	}

	if in.IsJustPressed(core.ButtonMenu) {
		g.record.Update(g.score)
		g.track.Destroy()
		g.state = StateMenu
		g.updateHUD()
	}
}

func (g *Game) hop() {
	g.score++
	p := g.gen.Next(g.score, &g.genState)
	g.track.AdvanceWindow(g.newLane(p))
	g.player.Hop()
	g.updateHUD()
}

// die records the score, keeps the lanes around the frog visible and
// starts the rumble.
func (g *Game) die() {
	g.record.Update(g.score)
	g.track.Freeze(PlayerRow-1, PlayerRow+1)

	g.rumbling = true
	g.rumbleClock = 0
	g.rumble.SetRumble(g.cfg.Death.Rumble)

	g.dyingTicks = 0
	g.state = StateDying
}

func (g *Game) stepDying() {
	g.dyingTicks++
	if g.dyingTicks >= g.cfg.Death.FreezeTicks {
		g.state = StateMenu
		g.updateHUD()
	}
}

func (g *Game) stepMenu(in core.InputFrame) {
	if in.IsJustPressed(core.ButtonA) {
		g.startRun()
		return
	}

	w := &g.record.World
	if in.IsJustPressed(core.ButtonLeft) {
		*w = g.cfg.World.Min
	}
	if in.IsJustPressed(core.ButtonRight) {
		*w = g.cfg.World.Max
	}
	if in.IsJustPressed(core.ButtonUp) {
		*w = min(g.cfg.World.Max, *w+1)
	}
	if in.IsJustPressed(core.ButtonDown) {
		*w = max(g.cfg.World.Min, *w-1)
	}

	if in.IsJustPressed(core.ButtonMenu) {
		g.state = StateExit
	}
}

func (g *Game) tickRumble() {
	if !g.rumbling {
		return
	}
	g.rumbleClock++
	if g.rumbleClock > g.cfg.Death.RumbleTicks {
		g.rumbleClock = 0
		g.rumbling = false
		g.rumble.SetRumble(0)
	}
}

func (g *Game) updateHUD() {
	n := g.graph.Get(g.hud)
	if n == nil {
		return
	}
	n.Text = fmt.Sprintf("Score: %d", g.score)
	n.Hidden = g.state == StateMenu
}

// State returns the current game state. The menu counts as game over so
// the host records the finished run.
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

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.graph == nil {
		return
	}
	g.graph.Render(dst)

	if g.state == StateMenu || g.state == StateExit {
		dst.DrawMessage(
			fmt.Sprintf("World %d", g.record.World),
			fmt.Sprintf("Your score %d", g.score),
			"",
			fmt.Sprintf("High: %d", g.record.Best),
			fmt.Sprintf("achieved in world %d", g.record.BestWorld),
			"",
			"A: play  ↑↓←→: world  Esc: quit",
		)
	}
}

func init() {
	registry.Register("froggy", func() registry.Game {
		return newFromFlags()
	})
}
