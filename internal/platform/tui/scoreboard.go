package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

const (
	boardLimit  = 100 // runs loaded per game
	runIDWidth  = 8   // run ids are shown abbreviated
	boardChrome = 14  // rows taken by title, tabs, cards and help
)

var boardStyles = struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	frame     lipgloss.Style
	empty     lipgloss.Style
	card      lipgloss.Style
	cardLabel lipgloss.Style
	cardValue lipgloss.Style
	help      lipgloss.Style
}{
	title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
	tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	activeTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
	frame:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 3),
	card:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1).Align(lipgloss.Center),
	cardLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	cardValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
	help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// boardKeys are the scoreboard bindings, derived from the handheld KeyMap
// so the shoulder and d-pad keys behave the same as in the games.
type boardKeys struct {
	Prev key.Binding
	Next key.Binding
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

func newBoardKeys(k KeyMap) boardKeys {
	return boardKeys{
		Prev: key.NewBinding(
			key.WithKeys(slices.Concat(k.Left.Keys(), []string{"[", ","})...),
			key.WithHelp("←/[", "prev game"),
		),
		Next: key.NewBinding(
			key.WithKeys(slices.Concat(k.Right.Keys(), []string{"]", ".", "tab"})...),
			key.WithHelp("→/]", "next game"),
		),
		Up: key.NewBinding(
			key.WithKeys(k.Up.Keys()...),
			key.WithHelp("↑/w", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys(k.Down.Keys()...),
			key.WithHelp("↓/s", "scroll"),
		),
		Back: key.NewBinding(
			key.WithKeys(slices.Concat(k.Menu.Keys(), k.B.Keys())...),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys(slices.Concat(k.Quit.Keys(), []string{"q"})...),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// statCard is one labelled figure under the runs table.
type statCard struct {
	Label string
	Value string
}

// ScoreboardModel browses the recorded runs of every registered game.
type ScoreboardModel struct {
	store   *storage.Store
	games   []registry.GameInfo
	current int
	scores  []storage.ScoreEntry
	stats   *storage.GameStats

	table table.Model
	keys  boardKeys
	help  help.Model

	width     int
	height    int
	goingBack bool
	quitting  bool
}

// NewScoreboardModel opens the scoreboard on the first registered game.
// A nil store shows every game as empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		keys:   newBoardKeys(DefaultKeyMap()),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newRunsTable(width, height)
	m.load()
	return m
}

func newRunsTable(width, height int) table.Model {
	date := min(max(width-40, 12), 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Run", Width: runIDWidth},
			{Title: "Date", Width: date},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-boardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the current game's runs and stats and refills the table.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.current].ID
		if scores, err := m.store.TopScores(id, boardLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			ordinal(i + 1),
			strconv.Itoa(s.Score),
			shortRunID(s.RunID),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves to the neighbouring game, wrapping at both ends.
func (m *ScoreboardModel) cycle(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.load()
}

func shortRunID(id string) string {
	if len(id) > runIDWidth {
		return id[:runIDWidth]
	}
	return id
}

// ordinal renders a rank as 1st, 2nd, 3rd, 4th ... 11th, 12th, 13th, 21st.
func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	if n%100 >= 11 && n%100 <= 13 {
		suffix = "th"
	}
	return strconv.Itoa(n) + suffix
}

// statCards summarizes every recorded run of the current game. It is empty
// until the game has at least one run.
func (m ScoreboardModel) statCards() []statCard {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return nil
	}
	return []statCard{
		{"Runs", strconv.Itoa(m.stats.GamesCount)},
		{"Best", strconv.Itoa(m.stats.HighScore)},
		{"Average", fmt.Sprintf("%.1f", m.stats.AvgScore)},
		{"Last played", m.stats.LastPlayed.Format("Jan 02 15:04")},
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRunsTable(m.width, m.height)
		m.fillTable()
	}
	return m, nil
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}

	sections := []string{
		center(boardStyles.title.Render("HIGH SCORES")),
		"",
		center(m.renderTabs()),
		"",
		center(boardStyles.frame.Render(m.renderRuns())),
	}
	if cards := m.renderCards(); cards != "" {
		sections = append(sections, center(cards))
	}
	sections = append(sections, "", boardStyles.help.Render(m.help.View(m.keys)))
	return strings.Join(sections, "\n")
}

// renderTabs lists every game with the current one highlighted. When the
// strip does not fit, only the current title is shown between arrows.
func (m ScoreboardModel) renderTabs() string {
	if len(m.games) == 0 {
		return boardStyles.tab.Render("no games registered")
	}
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = boardStyles.activeTab.Render(g.Title)
		} else {
			tabs[i] = boardStyles.tab.Render(g.Title)
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.width > 0 && lipgloss.Width(strip) > m.width {
		return boardStyles.activeTab.Render("‹ " + m.games[m.current].Title + " ›")
	}
	return strip
}

func (m ScoreboardModel) renderRuns() string {
	if len(m.scores) == 0 {
		return boardStyles.empty.Render("No scores recorded yet.\nFinish a run to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderCards() string {
	cards := m.statCards()
	if len(cards) == 0 {
		return ""
	}
	boxes := make([]string, len(cards))
	for i, c := range cards {
		boxes[i] = boardStyles.card.Render(
			boardStyles.cardLabel.Render(c.Label) + "\n" + boardStyles.cardValue.Render(c.Value),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// IsGoingBack reports whether the player left for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player quit the arcade.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program and reports whether
// the player wants the menu back.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
