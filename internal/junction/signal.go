package junction

import "time"

// DefaultDwell is how long one phase lasts before the signal flips.
const DefaultDwell = 8500 * time.Millisecond

// SignalController is the two-phase traffic light. It advances on elapsed
// wall-clock time only and never looks at vehicles.
type SignalController struct {
	clock      Clock
	dwell      time.Duration
	phase      Phase
	lastSwitch time.Time
	switches   int
}

// NewSignalController starts the signal in the initial phase. A non-positive
// dwell falls back to DefaultDwell.
func NewSignalController(clock Clock, dwell time.Duration, initial Phase) *SignalController {
	if clock == nil {
		clock = SystemClock{}
	}
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	return &SignalController{
		clock:      clock,
		dwell:      dwell,
		phase:      initial,
		lastSwitch: clock.Now(),
	}
}

// Update flips the phase once the dwell has elapsed since the last switch and
// reports whether it did.
func (s *SignalController) Update() bool {
	now := s.clock.Now()
	if now.Sub(s.lastSwitch) < s.dwell {
		return false
	}
	s.phase = s.phase.Other()
	s.lastSwitch = now
	s.switches++
	return true
}

// Phase returns the current phase.
func (s *SignalController) Phase() Phase {
	return s.phase
}

// VerticalGreen reports whether North/South have right-of-way.
func (s *SignalController) VerticalGreen() bool {
	return s.phase == VerticalGreen
}

// HorizontalGreen reports whether East/West have right-of-way.
func (s *SignalController) HorizontalGreen() bool {
	return s.phase == HorizontalGreen
}

// GreenFor reports whether road r currently has right-of-way.
func (s *SignalController) GreenFor(r Road) bool {
	return s.phase.GreenFor(r)
}

// Dwell returns the configured phase duration.
func (s *SignalController) Dwell() time.Duration {
	return s.dwell
}

// Switches returns how many times the phase has flipped.
func (s *SignalController) Switches() int {
	return s.switches
}

// Remaining returns the time left in the current phase.
func (s *SignalController) Remaining() time.Duration {
	left := s.dwell - s.clock.Now().Sub(s.lastSwitch)
	if left < 0 {
		return 0
	}
	return left
}
