package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-gravity/internal/config"
	"github.com/vovakirdan/fruit-gravity/internal/core"
	"github.com/vovakirdan/fruit-gravity/internal/registry"
	"github.com/vovakirdan/fruit-gravity/internal/settings"
	"github.com/vovakirdan/fruit-gravity/internal/storage"
)

// difficultyCycle is the order the D key steps through. Empty means the
// config file decides.
var difficultyCycle = []string{
	"",
	string(config.DifficultyEasy),
	string(config.DifficultyNormal),
	string(config.DifficultyHard),
	string(config.DifficultyFixed),
}

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	prefs          *settings.Manager
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	difficulty     string
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
	embedded       bool      // Driven by a SessionModel; never quits the program itself
}

// NewMenuModel creates a new menu model. store and prefs may be nil; without
// prefs the difficulty choice lasts for this menu only.
func NewMenuModel(store *storage.Store, prefs *settings.Manager, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if high, err := store.HighScore(g.ID); err == nil {
				item.HighScore = high
			}
		}
		items = append(items, item)
	}

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		prefs:     prefs,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if prefs != nil {
		p := prefs.Get()
		m.difficulty = p.Difficulty
		for i, item := range items {
			if item.GameID == p.LastGame {
				m.cursor = i
			}
		}
	}
	return m
}

// Init initializes the menu model.
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
		return m, nil
	}

	return m, nil
}

// quit ends a standalone menu program.
func (m MenuModel) quit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "d":
		m.difficulty = nextDifficulty(m.difficulty)
		if m.prefs != nil {
			m.prefs.Update(func(s *settings.Settings) { s.Difficulty = m.difficulty })
		}
		return m, nil
	case "m":
		if m.prefs != nil {
			m.prefs.Update(func(s *settings.Settings) {
				on := !(s.SoundEnabled || s.MusicEnabled)
				s.SoundEnabled, s.MusicEnabled = on, on
			})
		}
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			if m.prefs != nil {
				m.prefs.Update(func(s *settings.Settings) { s.LastGame = selected.GameID })
			}
			return m, m.quit() // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, m.quit() // Exit menu to show scoreboard
	}

	return m, nil
}

func nextDifficulty(cur string) string {
	for i, d := range difficultyCycle {
		if d == cur {
			return difficultyCycle[(i+1)%len(difficultyCycle)]
		}
	}
	return difficultyCycle[0]
}

func difficultyLabel(d string) string {
	if d == "" {
		return "config"
	}
	return d
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuPickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("  F R U I T   G R A V I T Y  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s", cursor, item.Title)
		if item.HighScore > 0 {
			line += fmt.Sprintf("  (best %d)", item.HighScore)
		}
		line = centerText(line, m.width)
		if i == m.cursor {
			line = menuPickStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := fmt.Sprintf("Difficulty: %s", difficultyLabel(m.difficulty))
	if m.prefs != nil {
		p := m.prefs.Get()
		sound := "on"
		if !p.SoundEnabled && !p.MusicEnabled {
			sound = "off"
		}
		status += fmt.Sprintf("  |  Sound: %s", sound)
	}
	b.WriteString(menuDimStyle.Render(centerText(status, m.width)))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Enter: Select  |  D: Difficulty  |  Tab: Scores  |  Q: Quit"
	if m.prefs != nil {
		controls = "Up/Down: Navigate  |  Enter: Select  |  D: Difficulty  |  M: Sound  |  Tab: Scores  |  Q: Quit"
	}
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Difficulty returns the chosen preset name; empty means the config default.
func (m MenuModel) Difficulty() string {
	return m.difficulty
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, prefs *settings.Manager, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, prefs, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}

	return result, nil
}
