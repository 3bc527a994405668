package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

func TestScoreboardLoadsRunsAndStats(t *testing.T) {
	store := testStore(t)
	first, _ := store.SaveScore("stub", 40)
	store.SaveScore("stub", 20)

	m := NewScoreboardModel(store, 100, 24)
	if len(m.scores) != 2 || m.scores[0].Score != 40 {
		t.Fatalf("scores = %+v", m.scores)
	}
	row := m.table.Rows()[0]
	if row[0] != "1st" || row[1] != "40" || row[2] != shortRunID(first) {
		t.Errorf("first row = %v", row)
	}

	cards := m.statCards()
	want := map[string]string{"Runs": "2", "Best": "40", "Average": "30.0"}
	for _, c := range cards {
		if v, ok := want[c.Label]; ok && v != c.Value {
			t.Errorf("%s = %q, want %q", c.Label, c.Value, v)
		}
	}
	if len(cards) != 4 {
		t.Errorf("got %d stat cards, want 4", len(cards))
	}

	view := m.View()
	for _, s := range []string{"HIGH SCORES", "Best", "1st"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q", s)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if cards := m.statCards(); cards != nil {
		t.Errorf("stats without a store = %+v", cards)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty message missing")
	}
}

func TestScoreboardCyclesGames(t *testing.T) {
	store := testStore(t)
	store.SaveScore("alpha", 5)
	store.SaveScore("beta", 70)
	store.SaveScore("beta", 60)

	m := NewScoreboardModel(store, 100, 24)
	m.games = []registry.GameInfo{{ID: "alpha", Title: "Alpha"}, {ID: "beta", Title: "Beta"}}
	m.current = 0
	m.load()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		current int
		runs    int
	}{
		{"right", tea.KeyMsg{Type: tea.KeyRight}, 1, 2},
		{"right wraps", tea.KeyMsg{Type: tea.KeyRight}, 0, 1},
		{"left wraps", tea.KeyMsg{Type: tea.KeyLeft}, 1, 2},
		{"shoulder", runeKey('['), 0, 1},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, 1, 2},
	}

	for _, tt := range tests {
		next, _ := m.Update(tt.msg)
		m = next.(ScoreboardModel)
		if m.current != tt.current || len(m.scores) != tt.runs {
			t.Errorf("%s: current = %d runs = %d, want %d and %d", tt.name, m.current, len(m.scores), tt.current, tt.runs)
		}
	}
}

func TestScoreboardScrolls(t *testing.T) {
	store := testStore(t)
	for score := range 5 {
		store.SaveScore("stub", score+1)
	}
	m := NewScoreboardModel(store, 100, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(ScoreboardModel)
	if m.table.Cursor() != 1 {
		t.Errorf("cursor after down = %d, want 1", m.table.Cursor())
	}
	next, _ = m.Update(runeKey('w'))
	if got := next.(ScoreboardModel).table.Cursor(); got != 0 {
		t.Errorf("cursor after w = %d, want 0", got)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back := next.(ScoreboardModel)
	if !back.IsGoingBack() || back.IsQuitting() || !isQuit(cmd) {
		t.Error("esc should leave the scoreboard without quitting the arcade")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardNarrowTabs(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 24)
	m.games = []registry.GameInfo{{ID: "a", Title: "Froggy Road"}, {ID: "b", Title: "Asteroids"}, {ID: "c", Title: "BitFlip"}}
	m.current = 1

	if tabs := m.renderTabs(); !strings.Contains(tabs, "Froggy Road") || !strings.Contains(tabs, "BitFlip") {
		t.Errorf("wide tabs = %q", tabs)
	}
	m.width = 20
	tabs := m.renderTabs()
	if strings.Contains(tabs, "Froggy Road") || !strings.Contains(tabs, "‹ Asteroids ›") {
		t.Errorf("narrow tabs = %q", tabs)
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 102: "102nd", 111: "111th"}
	for n, want := range tests {
		if got := ordinal(n); got != want {
			t.Errorf("ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestShortRunID(t *testing.T) {
	if got := shortRunID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortRunID = %q", got)
	}
	if got := shortRunID("abc"); got != "abc" {
		t.Errorf("short id changed to %q", got)
	}
}
