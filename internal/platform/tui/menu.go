package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/palopsee/internal/core"
	"github.com/vovakirdan/palopsee/internal/registry"
)

// HighScorer looks up the best score of a game. *storage.Store satisfies it.
type HighScorer interface {
	HighScore(gameID string) (int, error)
}

// EntryKind tells what selecting a menu line does.
type EntryKind int

const (
	EntryGame EntryKind = iota
	EntryScoreboard
	EntryQuit
)

// MenuItem is one selectable line of the title menu.
type MenuItem struct {
	Kind      EntryKind
	GameID    string // EntryGame only
	Title     string
	HighScore int
}

func (it MenuItem) label() string {
	if it.Kind == EntryGame && it.HighScore > 0 {
		return fmt.Sprintf("%s  (best %d)", it.Title, it.HighScore)
	}
	return it.Title
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel lists every registered game, then Scoreboard when scores
// are available, then Quit. scores may be nil.
func NewMenuModel(scores HighScorer, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+2)

	for _, g := range games {
		item := MenuItem{Kind: EntryGame, GameID: g.ID, Title: g.Title}
		if scores != nil {
			if high, err := scores.HighScore(g.ID); err == nil {
				item.HighScore = high
			}
		}
		items = append(items, item)
	}
	if scores != nil && len(games) > 0 {
		items = append(items, MenuItem{Kind: EntryScoreboard, Title: "Scoreboard"})
	}
	items = append(items, MenuItem{Kind: EntryQuit, Title: "Quit"})

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + len(m.items) - 1) % len(m.items)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)

	case MenuActionSelect:
		return m.choose(m.items[m.cursor])

	case MenuActionScoreboard:
		for _, it := range m.items {
			if it.Kind == EntryScoreboard {
				return m.choose(it)
			}
		}
	}
	return m, nil
}

func (m MenuModel) choose(it MenuItem) (tea.Model, tea.Cmd) {
	if it.Kind == EntryQuit {
		m.quitting = true
	} else {
		m.selected = &it
	}
	return m, tea.Quit
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuCursor     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuHint       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu, vertically centered.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		centerStyled(menuTitleStyle.Render(menuTitle), len(menuTitle), m.width),
		"",
		centerText(menuSubtitle, m.width),
		"",
	}

	for i, item := range m.items {
		text := "  " + item.label()
		style := lipgloss.NewStyle()
		if item.Kind != EntryGame {
			style = menuDim
		}
		if i == m.cursor {
			text = "> " + item.label()
			style = menuCursor
		}
		lines = append(lines, centerStyled(style.Render(text), len(text), m.width))
	}

	lines = append(lines, "", centerStyled(menuHint.Render(menuControls), len(menuControls), m.width))

	top := (m.height - len(lines)) / 3
	if top < 1 {
		top = 1
	}
	return strings.Repeat("\n", top) + strings.Join(lines, "\n") + "\n"
}

const (
	menuTitle    = "  P A L O P S E E  "
	menuSubtitle = "Jump the asteroids. Dodge the aliens."
	menuControls = "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
)

// Selected returns the chosen item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.selected != nil && m.selected.Kind == EntryScoreboard
}

// FirstGame returns the first game entry; the scoreboard shows its scores.
func (m MenuModel) FirstGame() (MenuItem, bool) {
	for _, it := range m.items {
		if it.Kind == EntryGame {
			return it, true
		}
	}
	return MenuItem{}, false
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerStyled(text, len(text), width)
}

// centerStyled centers already-styled text whose visible length is n.
func centerStyled(text string, n, width int) string {
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu. For a scoreboard
// request GameID and Title name the game whose scores to show.
type MenuResult struct {
	GameID          string
	Title           string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes what the user chose.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}

	switch {
	case m.quitting || m.selected == nil:
		result.Quit = true
	case m.WantsScoreboard():
		result.WantsScoreboard = true
		if g, ok := m.FirstGame(); ok {
			result.GameID, result.Title = g.GameID, g.Title
		}
	default:
		result.GameID, result.Title = m.selected.GameID, m.selected.Title
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(scores HighScorer, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(scores, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
