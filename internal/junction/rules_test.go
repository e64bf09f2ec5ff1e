package junction

import "testing"

func TestLegalRightLaneTable(t *testing.T) {
	// Exactly one origin (its lane 3) may feed each road's lane 1.
	expected := map[Road]Road{North: West, East: North, South: East, West: South}

	for _, target := range Roads {
		for _, road := range Roads {
			if road == target {
				continue
			}
			for _, lane := range []Lane{LaneRight, LaneThrough, LaneLeft} {
				want := lane == LaneLeft && expected[target] == road
				if got := Legal(road, lane, target, LaneRight); got != want {
					t.Errorf("Legal(%s, %d, %s, 1) = %v, expected %v", road, lane, target, got, want)
				}
			}
		}
	}
}

func TestLegalThroughLaneTable(t *testing.T) {
	expected := map[Road][]Road{
		North: {South, West},
		South: {North, East},
		East:  {West, North},
		West:  {East, South},
	}

	count := 0
	for _, target := range Roads {
		for _, road := range Roads {
			if road == target {
				continue
			}
			for _, lane := range []Lane{LaneRight, LaneThrough, LaneLeft} {
				want := false
				if lane == LaneThrough {
					for _, src := range expected[target] {
						want = want || src == road
					}
				}
				got := Legal(road, lane, target, LaneThrough)
				if got != want {
					t.Errorf("Legal(%s, %d, %s, 2) = %v, expected %v", road, lane, target, got, want)
				}
				if got {
					count++
				}
			}
		}
	}
	if count != 8 {
		t.Errorf("lane-2 legal pairings = %d, expected 8", count)
	}
}

func TestLegalLeftLaneUnconstrained(t *testing.T) {
	for _, target := range Roads {
		for _, road := range Roads {
			if road == target {
				continue
			}
			for _, lane := range []Lane{LaneRight, LaneThrough, LaneLeft} {
				if !Legal(road, lane, target, LaneLeft) {
					t.Errorf("Legal(%s, %d, %s, 3) = false, expected true", road, lane, target)
				}
			}
		}
	}
}

func TestWestLeftLaneCannotReachEastRightLane(t *testing.T) {
	if Legal(West, LaneLeft, East, LaneRight) {
		t.Error("West lane 3 -> East lane 1 should be illegal")
	}
}

func TestStopTable(t *testing.T) {
	tests := []struct {
		road     Road
		phase    Phase
		coord    int
		expected bool
	}{
		{North, VerticalGreen, 130, false},
		{North, HorizontalGreen, 130, true},
		{South, VerticalGreen, 450, false},
		{South, HorizontalGreen, 450, true},
		{East, VerticalGreen, 450, true},
		{East, HorizontalGreen, 450, false},
		{West, VerticalGreen, 130, true},
		{West, HorizontalGreen, 130, false},
	}

	for _, tc := range tests {
		coord, hold := StopCoordinate(tc.road, tc.phase)
		if coord != tc.coord || hold != tc.expected {
			t.Errorf("StopCoordinate(%s, %s) = (%d, %v), expected (%d, %v)",
				tc.road, tc.phase, coord, hold, tc.coord, tc.expected)
		}
		if hold == tc.phase.GreenFor(tc.road) {
			t.Errorf("%s under %s: hold=%v contradicts GreenFor", tc.road, tc.phase, hold)
		}
	}
}

func TestStopLineReachableFromSpawn(t *testing.T) {
	// Default speed 2 must land exactly on every stop coordinate.
	for _, road := range Roads {
		stop, _ := StopCoordinate(road, VerticalGreen)
		start := SpawnPoint(road, LaneThrough).On(road.TravelAxis())
		if d := stop - start; d%2 != 0 {
			t.Errorf("%s: distance %d from spawn to stop line is not a multiple of 2", road, d)
		}
	}
}

func TestPriorityAxis(t *testing.T) {
	for _, road := range Roads {
		for _, target := range Roads {
			if road == target {
				continue
			}
			want := AxisX
			if (road == North && target == East) || (road == South && target == West) {
				want = AxisY
			}
			if got := PriorityAxis(road, target); got != want {
				t.Errorf("PriorityAxis(%s, %s) = %s, expected %s", road, target, got, want)
			}
		}
	}
}
