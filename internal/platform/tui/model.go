package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/junction"
)

// Model is the Bubble Tea model that drives one simulation. It calls Step
// once per TickMsg and renders only from the returned snapshot.
type Model struct {
	sim      *junction.Simulation
	snap     junction.Snapshot
	screen   *core.Screen
	arena    *core.Screen
	config   core.RuntimeConfig
	scenario string
	runID    string
	keys     KeyMap
	help     help.Model
	theme    Theme
	logger   *log.Logger

	paused     bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for sim. The caller keeps ownership of sim and
// closes it after the program exits.
func NewModel(sim *junction.Simulation, scenario, runID string, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	cols, rows := ArenaSize(cfg.ScreenW, cfg.ScreenH)
	return Model{
		sim:      sim,
		screen:   core.NewScreen(max(cfg.ScreenW, cols), rows),
		arena:    core.NewScreen(cols, rows),
		config:   cfg,
		scenario: scenario,
		runID:    runID,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		theme:    DefaultTheme(),
		logger:   logger,
	}
}

// WithBack enables the back-to-menu binding, used inside SSH sessions.
func (m Model) WithBack() Model {
	m.keys.Back.SetEnabled(true)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.logger.Info("pause toggled", "paused", m.paused, "tick", m.snap.Tick)

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.snap = m.sim.Step()
		}

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleResize processes window resize events. The simulation keeps
// running in world coordinates; only the view is rescaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	cols, rows := ArenaSize(msg.Width, msg.Height)
	m.arena.Resize(cols, rows)
	m.screen.Resize(max(msg.Width, cols), rows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if !m.paused {
		m.snap = m.sim.Step()
	}
	return m, tickCmd(m.config.TickRate)
}

// compose draws the arena centered on the main screen.
func (m Model) compose() {
	DrawIntersection(m.arena, m.snap)
	m.screen.Clear()
	m.screen.Blit(m.arena, (m.screen.Width()-m.arena.Width())/2, 0)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.compose()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".junction", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s_t%d.txt", m.scenario, timestamp, m.snap.Tick))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.compose()
	hud := RenderHUD(m.snap, HUDInfo{
		Scenario:  m.scenario,
		RunID:     m.runID,
		Remaining: m.sim.Signal().Remaining(),
		Paused:    m.paused,
	}, m.theme)

	return RenderScreen(m.screen) + "\n" + hud + "\n" + m.help.View(m.keys)
}

// Snapshot returns the most recent snapshot.
func (m Model) Snapshot() junction.Snapshot {
	return m.snap
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked for the scenario menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for sim and blocks until the user quits.
func Run(sim *junction.Simulation, scenario, runID string, cfg core.RuntimeConfig, logger *log.Logger) (junction.Snapshot, error) {
	model := NewModel(sim, scenario, runID, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.Snapshot(), err
	}
	return junction.Snapshot{}, err
}
