package junction

import "github.com/charmbracelet/log"

// DefaultCapacity bounds both the admission queue and the active population.
const DefaultCapacity = 100

// AdmissionQueue is a bounded FIFO ring buffer between spawn arrivals and the
// active population. When full, new vehicles are dropped rather than blocking
// the producer side.
type AdmissionQueue struct {
	buf     []*Vehicle
	front   int // index of the oldest vehicle
	size    int // tracked explicitly so full and empty are distinguishable
	dropped int
	logger  *log.Logger
}

// NewAdmissionQueue creates a queue holding at most capacity vehicles.
// A nil logger discards drop reports.
func NewAdmissionQueue(capacity int, logger *log.Logger) *AdmissionQueue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &AdmissionQueue{
		buf:    make([]*Vehicle, capacity),
		logger: logger,
	}
}

// Enqueue appends v. On a full queue v is discarded, the drop is counted and
// logged, and Enqueue returns false.
func (q *AdmissionQueue) Enqueue(v *Vehicle) bool {
	if q.IsFull() {
		q.dropped++
		q.logger.Warn("admission queue full, dropping vehicle",
			"vehicle", v.ID,
			"capacity", len(q.buf),
			"dropped", q.dropped,
		)
		return false
	}
	rear := (q.front + q.size) % len(q.buf)
	q.buf[rear] = v
	q.size++
	return true
}

// Dequeue removes and returns the oldest vehicle. The second result is false
// when the queue is empty.
func (q *AdmissionQueue) Dequeue() (*Vehicle, bool) {
	if q.IsEmpty() {
		return nil, false
	}
	v := q.buf[q.front]
	q.buf[q.front] = nil
	q.front = (q.front + 1) % len(q.buf)
	q.size--
	return v, true
}

// Peek returns the oldest vehicle without removing it.
func (q *AdmissionQueue) Peek() (*Vehicle, bool) {
	if q.IsEmpty() {
		return nil, false
	}
	return q.buf[q.front], true
}

// IsFull reports whether the next Enqueue would drop.
func (q *AdmissionQueue) IsFull() bool {
	return q.size == len(q.buf)
}

// IsEmpty reports whether the queue holds no vehicles.
func (q *AdmissionQueue) IsEmpty() bool {
	return q.size == 0
}

// Len returns the number of queued vehicles.
func (q *AdmissionQueue) Len() int {
	return q.size
}

// Cap returns the queue capacity.
func (q *AdmissionQueue) Cap() int {
	return len(q.buf)
}

// Dropped returns how many vehicles were discarded on overflow.
func (q *AdmissionQueue) Dropped() int {
	return q.dropped
}

// Drain empties the queue and returns its contents in FIFO order.
func (q *AdmissionQueue) Drain() []*Vehicle {
	out := make([]*Vehicle, 0, q.size)
	for {
		v, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
