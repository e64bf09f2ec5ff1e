package junction

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-junction/internal/core"
)

// Outcome is the result of advancing one vehicle by one tick.
type Outcome int

const (
	OutcomeMoved       Outcome = iota // advanced toward its target
	OutcomeIllegalTurn                // held: lane/target pairing is not allowed
	OutcomeRedLight                   // held: lane-2 vehicle at its stop line on red
	OutcomeArrived                    // both axes closed; road/lane re-bound to target
)

// String returns a short label for logs and the HUD.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeIllegalTurn:
		return "illegal-turn"
	case OutcomeRedLight:
		return "red-light"
	case OutcomeArrived:
		return "arrived"
	default:
		return "unknown"
	}
}

// Held reports whether the vehicle made no progress this tick.
func (o Outcome) Held() bool {
	return o == OutcomeIllegalTurn || o == OutcomeRedLight
}

// Engine applies the per-tick motion rules. It reads the signal but never
// changes it.
type Engine struct {
	signal *SignalController
	logger *log.Logger
}

// NewEngine creates a motion engine bound to signal.
func NewEngine(signal *SignalController, logger *log.Logger) *Engine {
	if logger == nil {
		logger = discardLogger()
	}
	return &Engine{signal: signal, logger: logger}
}

// Step advances v by one tick: target lookup, turn-legality gate, stop-line
// check, axis-prioritized move, arrival.
func (e *Engine) Step(v *Vehicle) Outcome {
	target := TargetPoint(v.TargetRoad, v.TargetLane)

	if !Legal(v.Road, v.Lane, v.TargetRoad, v.TargetLane) {
		e.logger.Debug("holding vehicle: illegal turn", "vehicle", v.String())
		return OutcomeIllegalTurn
	}

	if v.Lane == LaneThrough {
		if stop, hold := StopCoordinate(v.Road, e.signal.Phase()); hold {
			if *v.coord(v.Road.TravelAxis()) == stop {
				e.logger.Debug("holding vehicle: red light",
					"vehicle", v.String(),
					"axis", v.Road.TravelAxis(),
					"stop", stop,
				)
				return OutcomeRedLight
			}
		}
	}

	first := PriorityAxis(v.Road, v.TargetRoad)
	second := AxisY
	if first == AxisY {
		second = AxisX
	}

	reachedFirst := reached(v, target, first)
	reachedSecond := reached(v, target, second)

	switch {
	case !reachedFirst:
		advance(v, target, first)
	case !reachedSecond:
		snap(v, target, first)
		advance(v, target, second)
	default:
		snap(v, target, first)
		snap(v, target, second)
		v.Road, v.Lane = v.TargetRoad, v.TargetLane
		e.logger.Debug("vehicle arrived", "vehicle", v.ID, "road", v.Road, "lane", v.Lane)
		return OutcomeArrived
	}
	return OutcomeMoved
}

// AtTarget reports whether v is within one speed step of its target anchor
// on both axes. This is the same test Step uses to detect arrival.
func (e *Engine) AtTarget(v *Vehicle) bool {
	target := TargetPoint(v.TargetRoad, v.TargetLane)
	return reached(v, target, AxisX) && reached(v, target, AxisY)
}

func reached(v *Vehicle, target Point, a Axis) bool {
	return core.Abs(*v.coord(a)-target.On(a)) <= v.Speed
}

func advance(v *Vehicle, target Point, a Axis) {
	c := v.coord(a)
	if *c < target.On(a) {
		*c += v.Speed
	} else {
		*c -= v.Speed
	}
}

func snap(v *Vehicle, target Point, a Axis) {
	*v.coord(a) = target.On(a)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
