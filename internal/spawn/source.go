package spawn

// State describes whether a source can still deliver records.
type State int

const (
	StateOpen   State = iota
	StateClosed       // producer went away; no more records will arrive
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Source delivers spawn records to the simulation.
//
// Poll must return immediately with whatever records are available, possibly
// none. An empty poll is not an error.
type Source interface {
	Poll() []Record
	State() State
	Close() error
}
