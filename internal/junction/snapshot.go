package junction

import "github.com/vovakirdan/tui-junction/internal/core"

// VehicleView is the renderable, copy-only view of one vehicle.
type VehicleView struct {
	ID         uint32
	Rect       core.Rect
	Road       Road
	Lane       Lane
	TargetRoad Road
	TargetLane Lane
}

// Stats are cumulative counters since the simulation started.
type Stats struct {
	Spawned     int // records accepted into the admission queue
	Rejected    int // records that failed validation
	Dropped     int // vehicles lost to a full admission queue
	Admitted    int // vehicles moved from the queue into the population
	Departed    int // vehicles evicted after arrival
	HeldIllegal int // vehicle-ticks spent holding on an illegal turn
	HeldRed     int // vehicle-ticks spent holding at a red stop line
	Switches    int // signal phase flips
}

// Snapshot is an immutable picture of the simulation taken once per tick,
// after all motion has been applied.
type Snapshot struct {
	Tick            uint64
	VerticalGreen   bool
	HorizontalGreen bool
	Vehicles        []VehicleView
	Departed        []VehicleView // vehicles evicted this tick, at their final positions
	Queued          int
	QueueCap        int
	Active          int
	ActiveCap       int
	SourceOpen      bool
	Stats           Stats
}

func viewOf(v *Vehicle) VehicleView {
	return VehicleView{
		ID:         v.ID,
		Rect:       v.Rect,
		Road:       v.Road,
		Lane:       v.Lane,
		TargetRoad: v.TargetRoad,
		TargetLane: v.TargetLane,
	}
}

func viewsOf(vs []*Vehicle) []VehicleView {
	if len(vs) == 0 {
		return nil
	}
	out := make([]VehicleView, len(vs))
	for i, v := range vs {
		out[i] = viewOf(v)
	}
	return out
}
