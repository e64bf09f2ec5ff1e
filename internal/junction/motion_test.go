package junction

import (
	"testing"
	"time"
)

func newTestEngine(phase Phase) (*Engine, *SignalController, *ManualClock) {
	clock := NewManualClock(epoch)
	signal := NewSignalController(clock, time.Hour, phase)
	return NewEngine(signal, nil), signal, clock
}

func TestIllegalTurnNeverMoves(t *testing.T) {
	e, _, _ := newTestEngine(HorizontalGreen)
	v := NewVehicle(1, West, LaneLeft, East, LaneRight, 2, VehicleSize, VehicleSize)
	start := v.Position()

	for i := 0; i < 500; i++ {
		if got := e.Step(v); got != OutcomeIllegalTurn {
			t.Fatalf("Step() = %s, expected %s", got, OutcomeIllegalTurn)
		}
	}
	if v.Position() != start {
		t.Errorf("Position() = %v, expected %v", v.Position(), start)
	}
}

func TestRedLightHoldsAtStopLine(t *testing.T) {
	// Vertical is red under HorizontalGreen.
	e, signal, clock := newTestEngine(HorizontalGreen)
	v := NewVehicle(1, South, LaneThrough, North, LaneThrough, 2, VehicleSize, VehicleSize)

	for i := 0; i < 80; i++ {
		if got := e.Step(v); got != OutcomeMoved {
			t.Fatalf("tick %d: Step() = %s, expected %s", i, got, OutcomeMoved)
		}
	}
	if v.Rect.Y != 450 {
		t.Fatalf("Rect.Y = %d, expected 450", v.Rect.Y)
	}

	for i := 0; i < 50; i++ {
		if got := e.Step(v); got != OutcomeRedLight {
			t.Fatalf("Step() = %s, expected %s", got, OutcomeRedLight)
		}
	}
	if v.Rect.Y != 450 {
		t.Errorf("Rect.Y = %d while red, expected 450", v.Rect.Y)
	}

	clock.Advance(time.Hour)
	signal.Update()
	if got := e.Step(v); got != OutcomeMoved {
		t.Fatalf("Step() after green = %s, expected %s", got, OutcomeMoved)
	}
	if v.Rect.Y != 448 {
		t.Errorf("Rect.Y = %d after green, expected 448", v.Rect.Y)
	}
}

func TestRedLightDoesNotHoldPastLine(t *testing.T) {
	e, signal, clock := newTestEngine(VerticalGreen)
	v := NewVehicle(1, South, LaneThrough, North, LaneThrough, 2, VehicleSize, VehicleSize)

	for i := 0; i < 81; i++ {
		e.Step(v)
	}
	if v.Rect.Y != 448 {
		t.Fatalf("Rect.Y = %d, expected 448", v.Rect.Y)
	}

	clock.Advance(time.Hour)
	if !signal.Update() || signal.VerticalGreen() {
		t.Fatal("expected the signal to turn vertical red")
	}
	if got := e.Step(v); got != OutcomeMoved {
		t.Fatalf("Step() past the line = %s, expected %s", got, OutcomeMoved)
	}
	if v.Rect.Y != 446 {
		t.Errorf("Rect.Y = %d, expected 446", v.Rect.Y)
	}
}

func TestLaneOneAndThreeIgnoreSignal(t *testing.T) {
	e, _, _ := newTestEngine(HorizontalGreen)
	v := NewVehicle(1, North, LaneLeft, East, LaneRight, 2, VehicleSize, VehicleSize)

	for i := 0; i < 200; i++ {
		if got := e.Step(v); got == OutcomeRedLight {
			t.Fatalf("tick %d: lane 3 vehicle held at red light", i)
		}
	}
}

func TestArrivalEndsOnTargetAnchor(t *testing.T) {
	routes := []struct {
		road       Road
		lane       Lane
		target     Road
		targetLane Lane
	}{
		{South, LaneThrough, North, LaneThrough},
		{North, LaneThrough, South, LaneThrough},
		{East, LaneThrough, West, LaneThrough},
		{West, LaneThrough, North, LaneThrough},
		{North, LaneLeft, East, LaneRight},
		{West, LaneLeft, North, LaneRight},
		{South, LaneLeft, West, LaneRight},
		{East, LaneLeft, North, LaneLeft},
	}

	for _, tc := range routes {
		e, signal, clock := newTestEngine(VerticalGreen)
		v := NewVehicle(7, tc.road, tc.lane, tc.target, tc.targetLane, 2, VehicleSize, VehicleSize)

		arrivals := 0
		for i := 0; i < 2000 && arrivals == 0; i++ {
			// Flip the light often so every route sees both phases.
			if i%100 == 0 {
				clock.Advance(time.Hour)
				signal.Update()
			}
			if e.Step(v) == OutcomeArrived {
				arrivals++
			}
		}

		if arrivals != 1 {
			t.Errorf("%s: no arrival within 2000 ticks", v)
			continue
		}
		if want := TargetPoint(tc.target, tc.targetLane); v.Position() != want {
			t.Errorf("%s: arrived at %v, expected %v", v, v.Position(), want)
		}
		if v.Road != tc.target || v.Lane != tc.targetLane {
			t.Errorf("%s: rebound to %s/%d, expected %s/%d", v, v.Road, v.Lane, tc.target, tc.targetLane)
		}
		if !e.AtTarget(v) {
			t.Errorf("%s: AtTarget() = false after arrival", v)
		}
	}
}

func TestPriorityAxisOrdersMotion(t *testing.T) {
	e, _, _ := newTestEngine(VerticalGreen)
	// North -> East closes Y first.
	v := NewVehicle(1, North, LaneLeft, East, LaneRight, 2, VehicleSize, VehicleSize)
	x := v.Rect.X

	e.Step(v)
	if v.Rect.X != x {
		t.Errorf("Rect.X = %d after first tick, expected %d (Y first)", v.Rect.X, x)
	}
	if v.Rect.Y == SpawnPoint(North, LaneLeft).Y {
		t.Error("Rect.Y did not change on first tick")
	}
}

func TestOutcomeHeld(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected bool
	}{
		{OutcomeMoved, false},
		{OutcomeIllegalTurn, true},
		{OutcomeRedLight, true},
		{OutcomeArrived, false},
	}
	for _, tc := range tests {
		if got := tc.outcome.Held(); got != tc.expected {
			t.Errorf("%s.Held() = %v, expected %v", tc.outcome, got, tc.expected)
		}
	}
}
