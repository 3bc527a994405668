package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

const defaultTickRate = 25

// Options carries the host collaborators for one game.
type Options struct {
	Store    *storage.Store // nil keeps records in memory only
	Location string         // save namespace; defaults to the game id
	Logger   *log.Logger    // nil discards log output
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	saves    core.SaveStore
	config   core.RuntimeConfig
	tickRate int
	tracker  *core.InputTracker
	shaker   *Shaker
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	gameState  core.GameState
	showHelp   bool
	scoreSaved bool // Whether the score of the current game over was recorded
	finished   bool // The game asked to exit
	quitting   bool // The user pressed the quit key
}

// NewModel creates a new Bubble Tea model for the given game and loads its
// saved records.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	location := opts.Location
	if location == "" {
		location = game.ID()
	}
	var saves core.SaveStore = core.NewMemoryStore()
	if opts.Store != nil {
		saves = opts.Store.Namespace(location)
	}

	rate := cfg.TickRate
	if rate <= 0 {
		rate = game.TickRate()
	}
	if rate <= 0 {
		rate = defaultTickRate
	}
	cfg.TickRate = rate

	shaker := &Shaker{}
	cfg.Rumble = shaker

	if p, ok := game.(registry.Persistent); ok {
		p.Load(saves)
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    opts.Store,
		saves:    saves,
		config:   cfg,
		tickRate: rate,
		tracker:  core.NewInputTracker(holdTicks(rate)),
		shaker:   shaker,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger.With("game", game.ID(), "location", location),
	}
}

// holdTicks is how long a key counts as held after its last event. Terminals
// repeat held keys at roughly 30Hz, so an eighth of a second bridges the gaps.
func holdTicks(rate int) int {
	return max(rate/8, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.persist()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.tracker.Hit(b)
	}
	return m, nil
}

// handleTick runs one simulation step with the buttons gathered since the
// previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.tracker.Next())
	m.gameState = result.State

	if m.gameState.GameOver {
		if !m.scoreSaved {
			m.recordScore()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	if m.gameState.Quit {
		m.persist()
		m.finished = true
		m.shaker.SetRumble(0)
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// recordScore stores a finished run. Failures are logged and play goes on.
func (m *Model) recordScore() {
	score := m.gameState.Score
	if score <= 0 {
		return
	}
	m.persist()
	if m.store == nil {
		return
	}
	runID, err := m.store.SaveScore(m.game.ID(), score)
	if err != nil {
		m.logger.Warn("could not save score", "score", score, "error", err)
		return
	}
	m.logger.Info("run recorded", "score", score, "run", runID)
}

// persist writes the game's records to its save location.
func (m *Model) persist() {
	p, ok := m.game.(registry.Persistent)
	if !ok {
		return
	}
	if err := p.Save(m.saves); err != nil {
		m.logger.Warn("could not save records", "error", err)
	}
}

// saveScreenshot saves the current screen to ~/.pocket/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("no home directory for screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".pocket", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not write screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.finished {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	ShiftScreen(m.screen, m.shaker.Offset())
	out := RenderScreen(m.screen)
	if m.showHelp {
		out = overlayBottom(out, m.help.View(m.keys))
	}
	return out
}

// overlayBottom replaces the last lines of base with the lines of top.
func overlayBottom(base, top string) string {
	lines := strings.Split(base, "\n")
	over := strings.Split(top, "\n")
	if len(over) > len(lines) {
		return top
	}
	copy(lines[len(lines)-len(over):], over)
	return strings.Join(lines, "\n")
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Finished reports whether the game asked the host to exit.
func (m Model) Finished() bool {
	return m.finished
}

// IsQuitting reports whether the user pressed the quit key.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a single game and blocks until the
// game exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
