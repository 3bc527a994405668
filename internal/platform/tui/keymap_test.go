package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapButtons(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Button
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ButtonLeft},
		{"a", runeKey('a'), core.ButtonLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ButtonRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ButtonUp},
		{"w", runeKey('w'), core.ButtonUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ButtonDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ButtonA},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ButtonA},
		{"x", runeKey('x'), core.ButtonB},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ButtonMenu},
		{"q", runeKey('q'), core.ButtonLB},
		{"e", runeKey('e'), core.ButtonRB},
		{"]", runeKey(']'), core.ButtonRB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Button(tt.msg)
			if !ok {
				t.Fatalf("Button(%q) not bound", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("Button(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapUnbound(t *testing.T) {
	keys := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{runeKey('?'), {Type: tea.KeyCtrlC}, runeKey('9')} {
		if b, ok := keys.Button(msg); ok {
			t.Errorf("Button(%q) = %v, want unbound", msg.String(), b)
		}
	}
}

func TestKeyMapMenuActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('9'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := keys.MenuAction(tt.msg); got != tt.want {
			t.Errorf("MenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
