package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

// stubGame records what the host feeds it and reports a scripted state.
type stubGame struct {
	rate     int
	state    core.GameState
	steps    []core.InputFrame
	resetCfg core.RuntimeConfig
	resets   int
	best     int
	loads    int
	saves    int
}

var _ registry.Persistent = (*stubGame)(nil)

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) TickRate() int { return g.rate }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resetCfg = cfg
	g.resets++
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in)
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "X", core.ColorGreen)
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Load(store core.SaveStore) {
	g.loads++
	g.best = store.LoadInt("best", 0)
}

func (g *stubGame) Save(store core.SaveStore) error {
	g.saves++
	return store.SaveInt("best", g.best)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg{})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "pocket.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelTickRate(t *testing.T) {
	tests := []struct {
		name     string
		flag     int
		gameRate int
		want     int
	}{
		{"game default", 0, 30, 30},
		{"flag override", 60, 30, 60},
		{"fallback", 0, 0, defaultTickRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &stubGame{rate: tt.gameRate}
			m := NewModel(g, core.RuntimeConfig{ScreenW: 10, ScreenH: 4, TickRate: tt.flag}, Options{})
			if m.tickRate != tt.want {
				t.Errorf("tickRate = %d, want %d", m.tickRate, tt.want)
			}
		})
	}
}

func TestModelInitResetsWithRumble(t *testing.T) {
	g := &stubGame{rate: 25}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 10, ScreenH: 4, Seed: 7}, Options{})

	if g.loads != 1 {
		t.Errorf("Load called %d times before Init, want 1", g.loads)
	}
	if cmd := m.Init(); cmd == nil {
		t.Error("Init did not start the tick loop")
	}
	if g.resets != 1 {
		t.Fatalf("Reset called %d times", g.resets)
	}
	if g.resetCfg.Seed != 7 {
		t.Errorf("seed = %d, want 7 passed through", g.resetCfg.Seed)
	}
	if g.resetCfg.Rumble == nil {
		t.Error("game got no rumble collaborator")
	}
}

func TestModelKeysBecomeFrames(t *testing.T) {
	g := &stubGame{rate: 25}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 10, ScreenH: 4}, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < holdTicks(25)+1; i++ {
		m, _ = tick(t, m)
	}

	if !g.steps[0].IsJustPressed(core.ButtonLeft) {
		t.Error("first frame missing the press")
	}
	if !g.steps[1].IsPressed(core.ButtonLeft) || g.steps[1].IsJustPressed(core.ButtonLeft) {
		t.Error("second frame should hold without a fresh press")
	}
	last := g.steps[len(g.steps)-1]
	if last.IsPressed(core.ButtonLeft) || !last.IsJustReleased(core.ButtonLeft) {
		t.Errorf("last frame should release the button: %+v", last)
	}
}

func TestModelRecordsScoreOnce(t *testing.T) {
	store := testStore(t)
	g := &stubGame{rate: 25, state: core.GameState{Score: 7}}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 10, ScreenH: 4}, Options{Store: store})

	m, _ = tick(t, m)
	g.state.GameOver = true
	m, _ = tick(t, m)
	m, _ = tick(t, m)

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 7 {
		t.Fatalf("scores after one game over = %+v", scores)
	}

	g.state = core.GameState{Score: 3}
	m, _ = tick(t, m)
	g.state.GameOver = true
	m, _ = tick(t, m)

	if scores, _ := store.TopScores("stub", 10); len(scores) != 2 {
		t.Errorf("second run not recorded: %+v", scores)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := testStore(t)
	g := &stubGame{rate: 25, state: core.GameState{GameOver: true}}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 10, ScreenH: 4}, Options{Store: store})
	tick(t, m)

	if scores, _ := store.TopScores("stub", 10); len(scores) != 0 {
		t.Errorf("zero score recorded: %+v", scores)
	}
}

func TestModelGameExitPersists(t *testing.T) {
	store := testStore(t)
	store.Namespace("stub:alice").SaveInt("best", 4)

	g := &stubGame{rate: 25}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 10, ScreenH: 4}, Options{Store: store, Location: "stub:alice"})
	if g.best != 4 {
		t.Fatalf("loaded best = %d, want 4", g.best)
	}

	g.best = 9
	g.state.Quit = true
	m, cmd := tick(t, m)

	if !isQuit(cmd) {
		t.Error("game exit did not quit the program")
	}
	if !m.Finished() || m.IsQuitting() {
		t.Errorf("Finished = %v, IsQuitting = %v", m.Finished(), m.IsQuitting())
	}
	if got := store.Namespace("stub:alice").LoadInt("best", 0); got != 9 {
		t.Errorf("saved best = %d, want 9", got)
	}
	if got := store.Namespace("stub").LoadInt("best", 0); got != 0 {
		t.Errorf("default location touched: %d", got)
	}
	if m.View() != "" {
		t.Error("finished model still renders")
	}
}

func TestModelCtrlCPersists(t *testing.T) {
	g := &stubGame{rate: 25}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 10, ScreenH: 4}, Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) || !m.IsQuitting() {
		t.Fatal("ctrl+c did not quit")
	}
	if g.saves != 1 {
		t.Errorf("Save called %d times, want 1", g.saves)
	}
	if _, cmd := tick(t, m); cmd != nil {
		t.Error("ticks continue after quit")
	}
}

func TestModelView(t *testing.T) {
	g := &stubGame{rate: 25}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 6, ScreenH: 3}, Options{})

	if !strings.Contains(m.View(), "X") {
		t.Error("game render missing from view")
	}

	m, _ = update(t, m, runeKey('?'))
	if !strings.Contains(m.View(), "help") {
		t.Error("help toggle did not show bindings")
	}
}

func TestModelResize(t *testing.T) {
	g := &stubGame{rate: 25}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 6, ScreenH: 3}, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	if m.screen.Width() != 20 || m.screen.Height() != 5 {
		t.Errorf("screen = %dx%d, want 20x5", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 0 {
		t.Error("resize restarted the game")
	}
}
