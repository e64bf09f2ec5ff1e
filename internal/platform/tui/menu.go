package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/registry"
)

// MenuItem represents a selectable scenario in the menu.
type MenuItem struct {
	ScenarioID string
	Title      string
}

// MenuModel is the Bubble Tea model for the scenario picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	theme    Theme
	quitting bool
	selected *MenuItem // Set when user selects a scenario
}

// NewMenuModel creates a menu listing the registered scenarios, minus the
// excluded ids.
func NewMenuModel(cfg core.RuntimeConfig, exclude ...string) MenuModel {
	skip := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}

	var items []MenuItem
	for _, s := range registry.List() {
		if skip[s.ID] {
			continue
		}
		items = append(items, MenuItem{ScenarioID: s.ID, Title: s.Title})
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
	}
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

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("  J U N C T I O N  "), 19, m.width))
	b.WriteString("\n\n")
	subtitle := "Select a traffic scenario"
	b.WriteString(centerText(m.theme.MenuDescription.Render(subtitle), len(subtitle), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		style := m.theme.MenuItemNormal
		cursor := "  "
		if i == m.cursor {
			style = m.theme.MenuItemActive
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-9s %s", cursor, item.ScenarioID, item.Title)
		b.WriteString(centerText(style.Render(line), len([]rune(line)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
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

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads styled text whose visible length is n.
func centerText(text string, n, width int) string {
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
