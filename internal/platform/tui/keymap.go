package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// KeyMap binds terminal keys to the handheld buttons games read.
// It centralizes key bindings and makes them testable.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	A     key.Binding
	B     key.Binding
	Menu  key.Binding
	LB    key.Binding
	RB    key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		A: key.NewBinding(
			key.WithKeys(" ", "enter", "z"),
			key.WithHelp("space/z", "A"),
		),
		B: key.NewBinding(
			key.WithKeys("x", "shift+tab"),
			key.WithHelp("x", "B"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc", "m", "p"),
			key.WithHelp("esc/m", "menu"),
		),
		LB: key.NewBinding(
			key.WithKeys("q", "[", ","),
			key.WithHelp("q/[", "LB"),
		),
		RB: key.NewBinding(
			key.WithKeys("e", "]", "."),
			key.WithHelp("e/]", "RB"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.A, k.B, k.Menu, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.A, k.B, k.LB, k.RB},
		{k.Menu, k.Help, k.Quit},
	}
}

// Button translates a key message to a handheld button.
// The second result is false for keys that are not bound to a button.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	bindings := []struct {
		binding key.Binding
		button  core.Button
	}{
		{k.Left, core.ButtonLeft},
		{k.Right, core.ButtonRight},
		{k.Up, core.ButtonUp},
		{k.Down, core.ButtonDown},
		{k.A, core.ButtonA},
		{k.B, core.ButtonB},
		{k.Menu, core.ButtonMenu},
		{k.LB, core.ButtonLB},
		{k.RB, core.ButtonRB},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.button, true
		}
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MenuAction translates a key to a menu action. Menus reuse the game
// bindings so the same keys work everywhere.
func (k KeyMap) MenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit), msg.String() == "q":
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.A):
		return MenuActionSelect
	case msg.String() == "tab":
		return MenuActionScoreboard
	case key.Matches(msg, k.Menu), key.Matches(msg, k.B):
		return MenuActionBack
	}
	return MenuActionNone
}
