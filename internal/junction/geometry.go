// Package junction implements the intersection traffic controller: lane
// geometry, the admission queue, the signal controller, the per-tick motion
// engine and the bounded population of in-flight vehicles.
//
// Everything in this package runs on a single logical thread. Renderers only
// ever see the immutable Snapshot returned by Simulation.Step.
package junction

import (
	"fmt"
	"strings"
)

// World dimensions and lane layout, in pixels.
const (
	WorldW = 600
	WorldH = 600

	// RoadMin and RoadMax bound the paved area on both axes.
	RoadMin = 150
	RoadMax = 450

	// VehicleSize is the side of the square vehicle footprint.
	VehicleSize = 20

	// MiddleLaneOffset separates the incoming and outgoing halves of lane 2.
	MiddleLaneOffset = 15

	offscreenNear = -30         // above the top edge / left of the left edge
	offscreenFar  = WorldW + 10 // below the bottom edge / right of the right edge
)

// Road is one of the four approaches to the intersection.
type Road int

const (
	North Road = iota // A: enters from the top edge
	South             // B: enters from the bottom edge
	East              // C: enters from the right edge
	West              // D: enters from the left edge
)

// Roads lists all roads in table order.
var Roads = [...]Road{North, South, East, West}

// Valid reports whether r is one of the four roads.
func (r Road) Valid() bool {
	return r >= North && r <= West
}

// Vertical reports whether the road runs top to bottom.
func (r Road) Vertical() bool {
	return r == North || r == South
}

// Letter returns the single-letter road code used on the wire.
func (r Road) Letter() byte {
	mustRoad(r)
	return "ABCD"[r]
}

// String returns the road name.
func (r Road) String() string {
	switch r {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Road(%d)", int(r))
	}
}

// RoadFromLetter converts a wire letter ('A'..'D') to a Road.
func RoadFromLetter(b byte) (Road, bool) {
	if b < 'A' || b > 'D' {
		return 0, false
	}
	return Road(b - 'A'), true
}

// ParseRoad accepts a road name ("north") or letter ("A"), case-insensitive.
func ParseRoad(s string) (Road, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "a":
		return North, true
	case "south", "b":
		return South, true
	case "east", "c":
		return East, true
	case "west", "d":
		return West, true
	}
	return 0, false
}

// Lane is a sub-channel of a road: 1 (right/exit), 2 (through), 3 (left).
type Lane int

const (
	LaneRight   Lane = 1
	LaneThrough Lane = 2
	LaneLeft    Lane = 3
)

// Valid reports whether l is 1, 2 or 3.
func (l Lane) Valid() bool {
	return l >= LaneRight && l <= LaneLeft
}

// Path selects which half of lane 2 an anchor refers to.
type Path int

const (
	Incoming Path = iota // the half a vehicle enters on
	Outgoing             // the half a vehicle leaves on
)

// Axis is a screen axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// TravelAxis returns the axis a vehicle on road r moves along while entering.
func (r Road) TravelAxis() Axis {
	if r.Vertical() {
		return AxisY
	}
	return AxisX
}

// Point is a pixel coordinate (top-left corner of a vehicle footprint).
type Point struct {
	X, Y int
}

// On returns the coordinate of p on axis a.
func (p Point) On(a Axis) int {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// span is the extent of a lane on the axis perpendicular to travel.
type span struct {
	start, end int
}

// laneSpans holds lane extents indexed by [road][lane-1].
var laneSpans = [4][3]span{
	North: {{150, 250}, {250, 350}, {350, 450}},
	South: {{350, 450}, {250, 350}, {150, 250}},
	East:  {{150, 250}, {250, 350}, {350, 450}},
	West:  {{350, 450}, {250, 350}, {150, 250}},
}

// entryCoord is the fixed off-screen coordinate on each road's travel axis.
var entryCoord = [4]int{
	North: offscreenNear,
	South: offscreenFar,
	East:  offscreenFar,
	West:  offscreenNear,
}

// middleOffsets is the lane-2 offset indexed by [road][path]. Incoming on a
// road and outgoing on the opposite road share a line.
var middleOffsets = [4][2]int{
	North: {Incoming: -MiddleLaneOffset, Outgoing: +MiddleLaneOffset},
	South: {Incoming: +MiddleLaneOffset, Outgoing: -MiddleLaneOffset},
	East:  {Incoming: -MiddleLaneOffset, Outgoing: +MiddleLaneOffset},
	West:  {Incoming: +MiddleLaneOffset, Outgoing: -MiddleLaneOffset},
}

// Anchor returns the canonical footprint position for (road, lane) on the
// given path. Out-of-domain input is a programmer error and panics.
func Anchor(road Road, lane Lane, path Path) Point {
	mustRoad(road)
	mustLane(lane)
	if path != Incoming && path != Outgoing {
		panic(fmt.Sprintf("junction: invalid path %d", int(path)))
	}

	s := laneSpans[road][lane-1]
	across := (s.start+s.end)/2 - VehicleSize/2
	if lane == LaneThrough {
		across += middleOffsets[road][path]
	}

	if road.Vertical() {
		return Point{X: across, Y: entryCoord[road]}
	}
	return Point{X: entryCoord[road], Y: across}
}

// SpawnPoint is where a vehicle entering on (road, lane) appears.
func SpawnPoint(road Road, lane Lane) Point {
	return Anchor(road, lane, Incoming)
}

// TargetPoint is where a vehicle leaving on (road, lane) is headed.
func TargetPoint(road Road, lane Lane) Point {
	return Anchor(road, lane, Outgoing)
}

func mustRoad(r Road) {
	if !r.Valid() {
		panic(fmt.Sprintf("junction: road out of range: %d", int(r)))
	}
}

func mustLane(l Lane) {
	if !l.Valid() {
		panic(fmt.Sprintf("junction: lane out of range: %d", int(l)))
	}
}
