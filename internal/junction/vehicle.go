package junction

import (
	"fmt"

	"github.com/vovakirdan/tui-junction/internal/core"
)

// Vehicle is a single simulated car. Road/Lane and TargetRoad/TargetLane are
// only ever changed together, on arrival.
type Vehicle struct {
	ID    uint32
	Rect  core.Rect // X/Y mutable, W/H fixed footprint
	Speed int       // pixels advanced per tick

	Road Road
	Lane Lane

	TargetRoad Road
	TargetLane Lane
}

// NewVehicle places a vehicle at the spawn anchor of (road, lane).
// Panics on out-of-domain roads or lanes, or a target equal to the origin.
func NewVehicle(id uint32, road Road, lane Lane, target Road, targetLane Lane, speed, w, h int) *Vehicle {
	mustRoad(road)
	mustRoad(target)
	mustLane(lane)
	mustLane(targetLane)
	if road == target {
		panic(fmt.Sprintf("junction: vehicle %d targets its own road %s", id, road))
	}

	p := SpawnPoint(road, lane)
	return &Vehicle{
		ID:         id,
		Rect:       core.NewRect(p.X, p.Y, w, h),
		Speed:      speed,
		Road:       road,
		Lane:       lane,
		TargetRoad: target,
		TargetLane: targetLane,
	}
}

// Position returns the footprint's top-left corner.
func (v *Vehicle) Position() Point {
	return Point{X: v.Rect.X, Y: v.Rect.Y}
}

// coord returns a pointer to the position component on axis a.
func (v *Vehicle) coord(a Axis) *int {
	if a == AxisX {
		return &v.Rect.X
	}
	return &v.Rect.Y
}

// String is used in log lines.
func (v *Vehicle) String() string {
	return fmt.Sprintf("#%d %s%d->%s%d", v.ID, v.Road, v.Lane, v.TargetRoad, v.TargetLane)
}
