package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/junction"
	"github.com/vovakirdan/tui-junction/internal/registry"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.junction/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Junction is the simulation configuration every session starts from.
	Junction config.JunctionConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		IdleTimeout: 30 * time.Minute,
		Junction:    config.DefaultConfig(),
	}
}

// SSHServer wraps a Wish SSH server that gives every session its own
// simulation.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger

	sessions sync.Map // ssh session id -> *session
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "junction-ssh",
	})
	if lvl, err := log.ParseLevel(cfg.Junction.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".junction", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.Junction.Simulation.TickRate,
	}

	sess := &session{
		id:     uuid.NewString(),
		ctx:    sshSession.Context(),
		cfg:    s.config.Junction,
		logger: s.logger.With("session", sshSession.User()),
	}
	s.sessions.Store(sshSession.Context().SessionID(), sess)

	return newSessionModel(sess, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.endSession(sshSession.Context().SessionID())
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// endSession releases the simulation of a finished connection. It runs after
// the Bubble Tea program has returned, so no tick can be in flight.
func (s *SSHServer) endSession(id string) {
	if v, ok := s.sessions.LoadAndDelete(id); ok {
		v.(*session).close()
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// session owns the simulation of one SSH connection. It is used from the
// program goroutine while Bubble Tea runs and from the connection handler once
// the program has returned.
type session struct {
	id     string
	ctx    context.Context
	cfg    config.JunctionConfig
	logger *log.Logger

	sim *junction.Simulation
}

// start builds a fresh simulation for scenario, replacing any previous one.
func (s *session) start(scenario string) (*junction.Simulation, string, error) {
	s.close()

	runID := uuid.NewString()
	logger := s.logger.With("run", runID, "scenario", scenario)

	opts, err := s.cfg.Options()
	if err != nil {
		return nil, "", err
	}
	src, err := registry.Create(scenario, registry.Env{
		Ctx:    s.ctx,
		Config: s.cfg,
		Clock:  junction.SystemClock{},
		Logger: logger,
	})
	if err != nil {
		return nil, "", err
	}

	s.sim = junction.New(opts, src, logger)
	logger.Info("simulation started")
	return s.sim, runID, nil
}

func (s *session) close() {
	if s.sim == nil {
		return
	}
	if err := s.sim.Close(); err != nil {
		s.logger.Warn("closing simulation", "error", err)
	}
	s.sim = nil
}

// SessionModel manages the SSH session flow: menu -> simulation -> menu.
type SessionModel struct {
	sess     *session
	config   core.RuntimeConfig
	menu     MenuModel
	sim      *Model
	status   string
	quitting bool
}

// newSessionModel creates a new session model.
func newSessionModel(sess *session, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		sess:   sess,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.sim != nil {
		return m.updateSim(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while the scenario menu is shown.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	sim, runID, err := m.sess.start(selected.ScenarioID)
	if err != nil {
		m.status = fmt.Sprintf("cannot start %s: %v", selected.ScenarioID, err)
		m.sess.logger.Warn("scenario failed", "scenario", selected.ScenarioID, "error", err)
		m.menu = NewMenuModel(m.config)
		return m, nil
	}

	m.status = ""
	model := NewModel(sim, selected.ScenarioID, runID, m.config, m.sess.logger).WithBack()
	m.sim = &model
	return m, m.sim.Init()
}

// updateSim handles updates while a simulation is running.
func (m SessionModel) updateSim(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.sim.Update(msg)
	if model, ok := newModel.(Model); ok {
		m.sim = &model
	}

	if m.sim.BackToMenu() {
		m.sess.close()
		m.sim = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	if m.sim.IsQuitting() {
		m.sess.close()
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.sim != nil {
		return m.sim.View()
	}
	if m.status != "" {
		return m.menu.View() + "\n" + DefaultTheme().HUDWarn.Render(m.status)
	}
	return m.menu.View()
}
