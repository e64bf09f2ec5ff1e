package spawn

import (
	"fmt"
	"math/rand"
	"time"
)

// Pattern selects which routes a Generator produces.
type Pattern string

const (
	// PatternMixed sends lane-2 vehicles straight across and lane-3 vehicles
	// into the left-hand road's lane 1.
	PatternMixed Pattern = "mixed"
	// PatternStraight sends only lane-2 vehicles straight across.
	PatternStraight Pattern = "straight"
	// PatternRandom picks any origin, lane and target, legal or not.
	PatternRandom Pattern = "random"
)

var roadLetters = [...]byte{'A', 'B', 'C', 'D'}

// opposite maps a road letter to the road straight across.
var opposite = map[byte]byte{'A': 'B', 'B': 'A', 'C': 'D', 'D': 'C'}

// leftOf maps a road letter to the road reached by a left turn from lane 3.
var leftOf = map[byte]byte{'A': 'C', 'B': 'D', 'C': 'B', 'D': 'A'}

// GeneratorConfig controls generated vehicles and emission timing.
type GeneratorConfig struct {
	Pattern     Pattern
	Speed       int32
	Size        int32
	MinInterval time.Duration
	MaxInterval time.Duration
	Burst       int // records per emission
	Seed        int64
}

// DefaultGeneratorConfig returns the classic traffic mix: 2 px/tick, 20x20,
// one vehicle every 1-3 seconds.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Pattern:     PatternMixed,
		Speed:       2,
		Size:        20,
		MinInterval: time.Second,
		MaxInterval: 3 * time.Second,
		Burst:       1,
	}
}

// Generator manufactures spawn records with monotonically increasing ids.
type Generator struct {
	cfg    GeneratorConfig
	rng    *rand.Rand
	lastID int32
}

// NewGenerator creates a generator. A zero seed uses the current time.
func NewGenerator(cfg GeneratorConfig) (*Generator, error) {
	switch cfg.Pattern {
	case PatternMixed, PatternStraight, PatternRandom:
	case "":
		cfg.Pattern = PatternMixed
	default:
		return nil, fmt.Errorf("spawn: unknown pattern %q", cfg.Pattern)
	}
	if cfg.Speed <= 0 {
		cfg.Speed = 2
	}
	if cfg.Size <= 0 {
		cfg.Size = 20
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxInterval < cfg.MinInterval {
		cfg.MaxInterval = cfg.MinInterval
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

// Next returns the next record.
func (g *Generator) Next() Record {
	g.lastID++
	r := Record{
		VehicleID: g.lastID,
		Speed:     g.cfg.Speed,
		Width:     g.cfg.Size,
		Height:    g.cfg.Size,
		Road:      roadLetters[g.rng.Intn(len(roadLetters))],
	}

	switch g.cfg.Pattern {
	case PatternStraight:
		r.Lane = 2
	case PatternRandom:
		r.Lane = int32(g.rng.Intn(3) + 1)
	default:
		r.Lane = int32(g.rng.Intn(2) + 2)
	}

	switch {
	case g.cfg.Pattern == PatternRandom:
		r.TargetRoad = roadLetters[g.rng.Intn(len(roadLetters))]
		for r.TargetRoad == r.Road {
			r.TargetRoad = roadLetters[g.rng.Intn(len(roadLetters))]
		}
		r.TargetLane = int32(g.rng.Intn(3) + 1)
	case r.Lane == 2:
		r.TargetRoad = opposite[r.Road]
		r.TargetLane = 2
	default:
		r.TargetRoad = leftOf[r.Road]
		r.TargetLane = 1
	}
	return r
}

// Interval returns a random wait in [MinInterval, MaxInterval].
func (g *Generator) Interval() time.Duration {
	span := g.cfg.MaxInterval - g.cfg.MinInterval
	if span <= 0 {
		return g.cfg.MinInterval
	}
	return g.cfg.MinInterval + time.Duration(g.rng.Int63n(int64(span)+1))
}

// Burst returns the number of records per emission.
func (g *Generator) Burst() int {
	return g.cfg.Burst
}

// GeneratorSource is an in-process Source that emits a burst of generated
// records each time its randomized interval elapses.
type GeneratorSource struct {
	gen   *Generator
	now   func() time.Time
	next  time.Time
	scale float64
}

// NewGeneratorSource wraps gen. now defaults to time.Now; the first burst is
// emitted on the first Poll.
func NewGeneratorSource(gen *Generator, now func() time.Time) *GeneratorSource {
	if now == nil {
		now = time.Now
	}
	return &GeneratorSource{gen: gen, now: now, next: now(), scale: 1}
}

// SetIntervalScale multiplies every subsequent wait by f. Values <= 0 are
// ignored.
func (s *GeneratorSource) SetIntervalScale(f float64) {
	if f > 0 {
		s.scale = f
	}
}

// Poll emits a burst if the interval has elapsed.
func (s *GeneratorSource) Poll() []Record {
	t := s.now()
	if t.Before(s.next) {
		return nil
	}
	out := make([]Record, 0, s.gen.Burst())
	for i := 0; i < s.gen.Burst(); i++ {
		out = append(out, s.gen.Next())
	}
	s.next = t.Add(time.Duration(float64(s.gen.Interval()) * s.scale))
	return out
}

// State is always open.
func (s *GeneratorSource) State() State {
	return StateOpen
}

// Close is a no-op.
func (s *GeneratorSource) Close() error {
	return nil
}
