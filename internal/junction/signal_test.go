package junction

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSignalInitialPhase(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewSignalController(clock, time.Second, HorizontalGreen)

	if !s.HorizontalGreen() || s.VerticalGreen() {
		t.Errorf("initial phase = %s, expected %s", s.Phase(), HorizontalGreen)
	}
	if s.GreenFor(North) || !s.GreenFor(East) {
		t.Error("horizontal phase should favour East/West")
	}
}

func TestSignalNeverFlipsEarly(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewSignalController(clock, DefaultDwell, VerticalGreen)

	clock.Advance(DefaultDwell - time.Millisecond)
	if s.Update() {
		t.Fatal("Update() flipped before dwell elapsed")
	}
	clock.Advance(time.Millisecond)
	if !s.Update() {
		t.Fatal("Update() did not flip once dwell elapsed")
	}
	if s.Phase() != HorizontalGreen {
		t.Errorf("Phase() = %s, expected %s", s.Phase(), HorizontalGreen)
	}
	if s.Update() {
		t.Error("Update() flipped twice without time passing")
	}
}

func TestSignalFlipCountTracksElapsed(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewSignalController(clock, DefaultDwell, HorizontalGreen)

	const ticks = 1000
	step := 33 * time.Millisecond
	for i := 0; i < ticks; i++ {
		clock.Advance(step)
		s.Update()
	}

	elapsed := time.Duration(ticks) * step
	expected := int(elapsed / DefaultDwell)
	if d := s.Switches() - expected; d < -1 || d > 1 {
		t.Errorf("Switches() = %d, expected %d +/- 1", s.Switches(), expected)
	}
}

func TestSignalRemaining(t *testing.T) {
	clock := NewManualClock(epoch)
	s := NewSignalController(clock, 2*time.Second, VerticalGreen)

	clock.Advance(500 * time.Millisecond)
	if got := s.Remaining(); got != 1500*time.Millisecond {
		t.Errorf("Remaining() = %v, expected 1.5s", got)
	}
	clock.Advance(5 * time.Second)
	if got := s.Remaining(); got != 0 {
		t.Errorf("Remaining() = %v, expected 0", got)
	}
}

func TestSignalDefaultDwell(t *testing.T) {
	s := NewSignalController(NewManualClock(epoch), 0, VerticalGreen)
	if s.Dwell() != DefaultDwell {
		t.Errorf("Dwell() = %v, expected %v", s.Dwell(), DefaultDwell)
	}
}
