package junction

import "errors"

// ErrPopulationFull is returned by Admit when every slot is occupied.
var ErrPopulationFull = errors.New("junction: active population full")

// Population is the fixed-capacity, ordered set of in-flight vehicles.
// Evicted vehicles are tombstoned (nil) during a pass and compacted away at
// the end of it, preserving the relative order of survivors. Slot indices are
// not stable across ticks.
type Population struct {
	slots    []*Vehicle
	capacity int
}

// TickReport summarises one Advance pass.
type TickReport struct {
	Moved    int
	Illegal  int
	RedLight int
	Departed []*Vehicle // evicted this tick, at their final positions
}

// NewPopulation creates an empty population bounded by capacity.
func NewPopulation(capacity int) *Population {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Population{
		slots:    make([]*Vehicle, 0, capacity),
		capacity: capacity,
	}
}

// Admit appends v. It refuses with ErrPopulationFull at capacity.
func (p *Population) Admit(v *Vehicle) error {
	if p.Full() {
		return ErrPopulationFull
	}
	p.slots = append(p.slots, v)
	return nil
}

// AdmitFrom moves vehicles from q in FIFO order until q is empty or the
// population is full. Capacity is checked before each dequeue, so a full
// population leaves the queue untouched. Returns the number admitted.
func (p *Population) AdmitFrom(q *AdmissionQueue) int {
	n := 0
	for !p.Full() {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		// Cannot fail: capacity was checked above.
		_ = p.Admit(v)
		n++
	}
	return n
}

// Advance runs engine over every vehicle in slot order, evicts those that
// arrived and sit exactly on their target, then compacts.
func (p *Population) Advance(engine *Engine) TickReport {
	var report TickReport
	for i, v := range p.slots {
		switch engine.Step(v) {
		case OutcomeMoved:
			report.Moved++
		case OutcomeIllegalTurn:
			report.Illegal++
		case OutcomeRedLight:
			report.RedLight++
		case OutcomeArrived:
			if engine.AtTarget(v) {
				report.Departed = append(report.Departed, v)
				p.slots[i] = nil
			}
		}
	}
	p.compact()
	return report
}

// compact removes tombstones in place, keeping survivor order.
func (p *Population) compact() {
	w := 0
	for _, v := range p.slots {
		if v == nil {
			continue
		}
		p.slots[w] = v
		w++
	}
	for i := w; i < len(p.slots); i++ {
		p.slots[i] = nil
	}
	p.slots = p.slots[:w]
}

// Vehicles returns the live vehicles in slot order. The slice is owned by
// the population and is only valid until the next mutation.
func (p *Population) Vehicles() []*Vehicle {
	return p.slots
}

// Full reports whether no more vehicles can be admitted.
func (p *Population) Full() bool {
	return len(p.slots) >= p.capacity
}

// Len returns the number of live vehicles.
func (p *Population) Len() int {
	return len(p.slots)
}

// Cap returns the population capacity.
func (p *Population) Cap() int {
	return p.capacity
}

// Release drops every vehicle and returns how many were held.
func (p *Population) Release() int {
	n := len(p.slots)
	for i := range p.slots {
		p.slots[i] = nil
	}
	p.slots = p.slots[:0]
	return n
}
