package junction

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-junction/internal/spawn"
)

// Options configures a Simulation.
type Options struct {
	QueueCapacity      int
	PopulationCapacity int
	Dwell              time.Duration
	InitialPhase       Phase
	Clock              Clock // defaults to SystemClock
}

// DefaultOptions returns 100/100 capacity, an 8.5 s dwell and horizontal
// green first.
func DefaultOptions() Options {
	return Options{
		QueueCapacity:      DefaultCapacity,
		PopulationCapacity: DefaultCapacity,
		Dwell:              DefaultDwell,
		InitialPhase:       HorizontalGreen,
	}
}

// Simulation owns the queue, population and signal and runs one tick per
// Step call. It is not safe for concurrent use.
type Simulation struct {
	source     spawn.Source
	queue      *AdmissionQueue
	population *Population
	signal     *SignalController
	engine     *Engine
	logger     *log.Logger

	tick       uint64
	stats      Stats
	sourceOpen bool
	closed     bool
}

// New creates a simulation fed by src. A nil logger discards output.
func New(opts Options, src spawn.Source, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = discardLogger()
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	signal := NewSignalController(clock, opts.Dwell, opts.InitialPhase)
	return &Simulation{
		source:     src,
		queue:      NewAdmissionQueue(opts.QueueCapacity, logger),
		population: NewPopulation(opts.PopulationCapacity),
		signal:     signal,
		engine:     NewEngine(signal, logger),
		logger:     logger,
		sourceOpen: true,
	}
}

// Step runs one tick: ingest spawn records, admit from the queue, advance the
// signal, move every vehicle, compact, and return a snapshot. After Close it
// only returns the final snapshot.
func (s *Simulation) Step() Snapshot {
	if s.closed {
		return s.snapshot(nil)
	}
	s.tick++

	s.ingest()
	s.stats.Admitted += s.population.AdmitFrom(s.queue)

	if s.signal.Update() {
		s.stats.Switches++
		s.logger.Info("signal switched", "phase", s.signal.Phase(), "tick", s.tick)
	}

	report := s.population.Advance(s.engine)
	s.stats.HeldIllegal += report.Illegal
	s.stats.HeldRed += report.RedLight
	s.stats.Departed += len(report.Departed)
	s.stats.Dropped = s.queue.Dropped()

	return s.snapshot(report.Departed)
}

// ingest polls the source once and queues every valid record.
func (s *Simulation) ingest() {
	if s.source == nil {
		return
	}
	for _, rec := range s.source.Poll() {
		if err := rec.Validate(); err != nil {
			s.stats.Rejected++
			s.logger.Error("rejecting spawn record", "error", err)
			continue
		}
		if s.queue.Enqueue(vehicleFromRecord(rec)) {
			s.stats.Spawned++
		}
	}
	if s.sourceOpen && s.source.State() == spawn.StateClosed {
		s.sourceOpen = false
		s.logger.Warn("spawn source closed, continuing with active vehicles",
			"active", s.population.Len(),
			"queued", s.queue.Len(),
		)
	}
}

// vehicleFromRecord converts a validated record.
func vehicleFromRecord(r spawn.Record) *Vehicle {
	road, _ := RoadFromLetter(r.Road)
	target, _ := RoadFromLetter(r.TargetRoad)
	return NewVehicle(
		uint32(r.VehicleID),
		road, Lane(r.Lane),
		target, Lane(r.TargetLane),
		int(r.Speed), int(r.Width), int(r.Height),
	)
}

func (s *Simulation) snapshot(departed []*Vehicle) Snapshot {
	return Snapshot{
		Tick:            s.tick,
		VerticalGreen:   s.signal.VerticalGreen(),
		HorizontalGreen: s.signal.HorizontalGreen(),
		Vehicles:        viewsOf(s.population.Vehicles()),
		Departed:        viewsOf(departed),
		Queued:          s.queue.Len(),
		QueueCap:        s.queue.Cap(),
		Active:          s.population.Len(),
		ActiveCap:       s.population.Cap(),
		SourceOpen:      s.sourceOpen,
		Stats:           s.stats,
	}
}

// Signal exposes the signal controller for read-only inspection.
func (s *Simulation) Signal() *SignalController {
	return s.signal
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Close releases every queued and active vehicle and closes the source.
func (s *Simulation) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	queued := len(s.queue.Drain())
	active := s.population.Release()
	s.logger.Info("simulation stopped",
		"ticks", s.tick,
		"released_queued", queued,
		"released_active", active,
		"departed", s.stats.Departed,
		"dropped", s.stats.Dropped,
	)
	if s.source == nil {
		return nil
	}
	return s.source.Close()
}
