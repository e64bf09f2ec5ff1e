package junction

// Phase is the signal's right-of-way assignment.
type Phase int

const (
	VerticalGreen   Phase = iota // North/South may proceed
	HorizontalGreen              // East/West may proceed
)

// String returns a short phase label.
func (p Phase) String() string {
	if p == VerticalGreen {
		return "vertical-green"
	}
	return "horizontal-green"
}

// Other returns the complementary phase.
func (p Phase) Other() Phase {
	if p == VerticalGreen {
		return HorizontalGreen
	}
	return VerticalGreen
}

// GreenFor reports whether road r has right-of-way under phase p.
func (p Phase) GreenFor(r Road) bool {
	return r.Vertical() == (p == VerticalGreen)
}

// rightPredecessor maps a target road to the only road whose lane 3 may feed
// its lane 1 (West->North, North->East, East->South, South->West).
var rightPredecessor = [4]Road{
	North: West,
	East:  North,
	South: East,
	West:  South,
}

// throughSources maps a target road to the roads whose lane 2 may feed its
// lane 2: the opposite road (straight) and one perpendicular road (left turn).
var throughSources = [4][2]Road{
	North: {South, West},
	South: {North, East},
	East:  {West, North},
	West:  {East, South},
}

// Legal reports whether a vehicle on (road, lane) may travel to (target,
// targetLane). Target lane 3 is not constrained.
func Legal(road Road, lane Lane, target Road, targetLane Lane) bool {
	mustRoad(road)
	mustRoad(target)
	mustLane(lane)
	mustLane(targetLane)

	switch targetLane {
	case LaneRight:
		return lane == LaneLeft && rightPredecessor[target] == road
	case LaneThrough:
		if lane != LaneThrough {
			return false
		}
		for _, src := range throughSources[target] {
			if src == road {
				return true
			}
		}
		return false
	default:
		// TODO: left-turn departures are unchecked; decide whether lane 3
		// should get its own predecessor table like lanes 1 and 2.
		return true
	}
}

// stopLine is one entry of the road x phase stop table.
type stopLine struct {
	coord int
	hold  bool
}

// Stop coordinates on each road's travel axis: the footprint's leading edge
// touches the paved area.
const (
	stopNear = RoadMin - VehicleSize // North (y) and West (x)
	stopFar  = RoadMax               // South (y) and East (x)
)

// stopTable is indexed by [road][phase]. A road holds only under the phase
// that gives the other direction right-of-way.
var stopTable = [4][2]stopLine{
	North: {VerticalGreen: {stopNear, false}, HorizontalGreen: {stopNear, true}},
	South: {VerticalGreen: {stopFar, false}, HorizontalGreen: {stopFar, true}},
	East:  {VerticalGreen: {stopFar, true}, HorizontalGreen: {stopFar, false}},
	West:  {VerticalGreen: {stopNear, true}, HorizontalGreen: {stopNear, false}},
}

// StopCoordinate returns the stop-line coordinate on road's travel axis and
// whether lane-2 traffic on that road must hold there under phase.
func StopCoordinate(road Road, phase Phase) (int, bool) {
	mustRoad(road)
	e := stopTable[road][phase]
	return e.coord, e.hold
}

// PriorityAxis returns the axis that is closed first when moving from road
// to target. A vertical road turning into its clockwise neighbour
// (North->East, South->West) closes Y first; every other pair closes X first.
func PriorityAxis(road, target Road) Axis {
	if (road == North && target == East) || (road == South && target == West) {
		return AxisY
	}
	return AxisX
}
