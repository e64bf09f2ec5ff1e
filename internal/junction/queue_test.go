package junction

import "testing"

func testVehicle(id uint32) *Vehicle {
	return NewVehicle(id, South, LaneThrough, North, LaneThrough, 2, VehicleSize, VehicleSize)
}

func TestQueueFIFO(t *testing.T) {
	q := NewAdmissionQueue(4, nil)
	for i := uint32(1); i <= 3; i++ {
		q.Enqueue(testVehicle(i))
	}

	if v, ok := q.Peek(); !ok || v.ID != 1 {
		t.Errorf("Peek() = %v, expected vehicle 1", v)
	}
	for i := uint32(1); i <= 3; i++ {
		v, ok := q.Dequeue()
		if !ok {
			t.Fatalf("Dequeue() returned empty at %d", i)
		}
		if v.ID != i {
			t.Errorf("Dequeue() = %d, expected %d", v.ID, i)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue() on empty queue should report false")
	}
}

func TestQueueOverflowDrops(t *testing.T) {
	q := NewAdmissionQueue(DefaultCapacity, nil)
	for i := uint32(1); i <= DefaultCapacity+1; i++ {
		ok := q.Enqueue(testVehicle(i))
		if i <= DefaultCapacity && !ok {
			t.Fatalf("Enqueue(%d) rejected below capacity", i)
		}
		if i == DefaultCapacity+1 && ok {
			t.Error("Enqueue() past capacity should report false")
		}
	}

	if q.Len() != DefaultCapacity {
		t.Errorf("Len() = %d, expected %d", q.Len(), DefaultCapacity)
	}
	if q.Dropped() != 1 {
		t.Errorf("Dropped() = %d, expected 1", q.Dropped())
	}
	if !q.IsFull() {
		t.Error("IsFull() = false, expected true")
	}

	drained := q.Drain()
	for i, v := range drained {
		if v.ID != uint32(i+1) {
			t.Fatalf("drained[%d] = %d, expected %d", i, v.ID, i+1)
		}
	}
	if !q.IsEmpty() {
		t.Error("IsEmpty() after Drain = false, expected true")
	}
}

func TestQueueWrapAround(t *testing.T) {
	q := NewAdmissionQueue(3, nil)
	next := uint32(1)
	want := uint32(1)

	// Interleave so front and rear wrap several times.
	for round := 0; round < 10; round++ {
		for q.Enqueue(testVehicle(next)) {
			next++
		}
		for i := 0; i < 2; i++ {
			v, ok := q.Dequeue()
			if !ok {
				t.Fatal("Dequeue() unexpectedly empty")
			}
			if v.ID != want {
				t.Fatalf("round %d: Dequeue() = %d, expected %d", round, v.ID, want)
			}
			want++
		}
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", q.Len())
	}
}

func TestQueueDefaultCapacity(t *testing.T) {
	q := NewAdmissionQueue(0, nil)
	if q.Cap() != DefaultCapacity {
		t.Errorf("Cap() = %d, expected %d", q.Cap(), DefaultCapacity)
	}
}
