package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/junction"
	"github.com/vovakirdan/tui-junction/internal/spawn"
)

func TestArenaSize(t *testing.T) {
	tests := []struct {
		w, h       int
		cols, rows int
	}{
		{80, 24, 40, 20},
		{30, 24, 30, 15},
		{200, 60, 112, 56},
	}
	for _, tc := range tests {
		cols, rows := ArenaSize(tc.w, tc.h)
		if cols != tc.cols || rows != tc.rows {
			t.Errorf("ArenaSize(%d, %d) = (%d, %d), expected (%d, %d)", tc.w, tc.h, cols, rows, tc.cols, tc.rows)
		}
	}
}

func TestDrawIntersectionLights(t *testing.T) {
	s := core.NewScreen(60, 30)
	DrawIntersection(s, junction.Snapshot{VerticalGreen: true})

	// North stop bar sits just above the box, over the through lane.
	north := core.NewRect(250, junction.RoadMin-1, 1, 1).Scale(junction.WorldW, junction.WorldH, 60, 30)
	if c := s.GetCell(north.X, north.Y); c.Color != core.ColorBrightGreen {
		t.Errorf("north light color = %v, expected ColorBrightGreen", c.Color)
	}
	west := core.NewRect(junction.RoadMin-1, 250, 1, 1).Scale(junction.WorldW, junction.WorldH, 60, 30)
	if c := s.GetCell(west.X, west.Y); c.Color != core.ColorBrightRed {
		t.Errorf("west light color = %v, expected ColorBrightRed", c.Color)
	}
	if c := s.GetCell(0, 0); c.Rune != glyphGrass {
		t.Errorf("corner rune = %q, expected grass", c.Rune)
	}
}

func TestDrawIntersectionVehicles(t *testing.T) {
	s := core.NewScreen(60, 30)
	v := junction.NewVehicle(1, junction.South, junction.LaneThrough, junction.North, junction.LaneThrough, 2, 20, 20)
	v.Rect.Y = 300
	snap := junction.Snapshot{Vehicles: []junction.VehicleView{{
		ID: v.ID, Rect: v.Rect, Road: v.Road, Lane: v.Lane, TargetRoad: v.TargetRoad, TargetLane: v.TargetLane,
	}}}
	DrawIntersection(s, snap)

	r := v.Rect.Scale(junction.WorldW, junction.WorldH, 60, 30)
	if c := s.GetCell(r.X, r.Y); c.Rune != glyphVehicle || c.Color != core.ColorYellow {
		t.Errorf("vehicle cell = %+v, expected yellow vehicle", c)
	}
}

func TestRenderHUD(t *testing.T) {
	snap := junction.Snapshot{
		Tick: 42, HorizontalGreen: true, Active: 3, ActiveCap: 100, QueueCap: 100,
		Stats: junction.Stats{Dropped: 2},
	}
	out := RenderHUD(snap, HUDInfo{Scenario: "local", RunID: "0123456789abcdef", Paused: true}, DefaultTheme())

	for _, want := range []string{"local", "01234567", "42", "3/100", "dropped 2", "PAUSED", "source closed"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderHUD() missing %q in %q", want, out)
		}
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	clock := junction.NewManualClock(time.Unix(0, 0))
	gen, err := spawn.NewGenerator(spawn.GeneratorConfig{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	opts := junction.DefaultOptions()
	opts.Clock = clock
	sim := junction.New(opts, spawn.NewGeneratorSource(gen, clock.Now), nil)
	t.Cleanup(func() { sim.Close() })
	return NewModel(sim, "local", "run", core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, nil)
}

func TestModelTickAndPause(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.Snapshot().Tick != 1 {
		t.Fatalf("Tick = %d after one TickMsg, expected 1", m.Snapshot().Tick)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d while paused, expected 1", m.Snapshot().Tick)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m = next.(Model)
	if m.Snapshot().Tick != 2 {
		t.Errorf("Tick = %d after single step, expected 2", m.Snapshot().Tick)
	}

	if view := m.View(); !strings.Contains(view, "PAUSED") {
		t.Error("View() while paused should show PAUSED")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).BackToMenu() {
		t.Error("esc should be ignored outside SSH sessions")
	}

	next, _ = m.WithBack().Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() {
		t.Error("esc should return to the menu when enabled")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestEndSessionReleasesSimulation(t *testing.T) {
	srv := &SSHServer{logger: log.New(io.Discard)}
	sim := junction.New(junction.DefaultOptions(), nil, nil)
	sess := &session{id: "s1", logger: srv.logger, sim: sim}
	srv.sessions.Store("s1", sess)

	srv.endSession("s1")

	if sess.sim != nil {
		t.Error("endSession() left the simulation attached")
	}
	if _, ok := srv.sessions.Load("s1"); ok {
		t.Error("endSession() did not forget the session")
	}
	if snap := sim.Step(); snap.Tick != 0 {
		t.Errorf("Tick = %d after endSession, expected 0", snap.Tick)
	}

	srv.endSession("s1")
}
