// Package config provides YAML-based configuration loading and density
// presets for the junction simulator.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-junction/internal/junction"
	"github.com/vovakirdan/tui-junction/internal/spawn"
)

// JunctionConfig contains all configuration for a simulation run.
type JunctionConfig struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Signal     SignalConfig     `yaml:"signal"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Producer   ProducerConfig   `yaml:"producer"`
	Rush       RushConfig       `yaml:"rush"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig defines tick rate and capacity bounds.
type SimulationConfig struct {
	TickRate           int `yaml:"tick_rate"` // ticks per second
	QueueCapacity      int `yaml:"queue_capacity"`
	PopulationCapacity int `yaml:"population_capacity"`
}

// SignalConfig defines the traffic-light cycle.
type SignalConfig struct {
	DwellMS      int    `yaml:"dwell_ms"`
	InitialGreen string `yaml:"initial_green"` // "horizontal" or "vertical"
}

// GeneratorConfig defines in-process and served vehicle generation.
type GeneratorConfig struct {
	Pattern       string `yaml:"pattern"` // "mixed", "straight" or "random"
	Speed         int    `yaml:"speed"`
	Size          int    `yaml:"size"`
	MinIntervalMS int    `yaml:"min_interval_ms"`
	MaxIntervalMS int    `yaml:"max_interval_ms"`
	Burst         int    `yaml:"burst"`
}

// ProducerConfig defines where the network scenario connects and where
// `junction generate` listens.
type ProducerConfig struct {
	Addr   string `yaml:"addr"`
	Listen string `yaml:"listen"`
}

// RushConfig defines how the rush scenario shortens emission intervals over
// time.
type RushConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = base traffic, 1.0 = peak
	RampTicks    int     `yaml:"ramp_ticks"`    // ticks until peak is reached
	Compression  float64 `yaml:"compression"`   // fraction of the interval removed at peak
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // TUI mode only; headless logs to stderr
}

// Options converts the config into simulation options.
func (c JunctionConfig) Options() (junction.Options, error) {
	opts := junction.DefaultOptions()
	if c.Simulation.QueueCapacity > 0 {
		opts.QueueCapacity = c.Simulation.QueueCapacity
	}
	if c.Simulation.PopulationCapacity > 0 {
		opts.PopulationCapacity = c.Simulation.PopulationCapacity
	}
	if c.Signal.DwellMS > 0 {
		opts.Dwell = time.Duration(c.Signal.DwellMS) * time.Millisecond
	}

	switch c.Signal.InitialGreen {
	case "", "horizontal":
		opts.InitialPhase = junction.HorizontalGreen
	case "vertical":
		opts.InitialPhase = junction.VerticalGreen
	default:
		return opts, fmt.Errorf("config: unknown initial_green %q", c.Signal.InitialGreen)
	}
	return opts, nil
}

// GeneratorSettings converts the generator section. seed is passed through
// unchanged; zero means time-seeded.
func (c JunctionConfig) GeneratorSettings(seed int64) spawn.GeneratorConfig {
	g := spawn.DefaultGeneratorConfig()
	if c.Generator.Pattern != "" {
		g.Pattern = spawn.Pattern(c.Generator.Pattern)
	}
	if c.Generator.Speed > 0 {
		g.Speed = int32(c.Generator.Speed)
	}
	if c.Generator.Size > 0 {
		g.Size = int32(c.Generator.Size)
	}
	if c.Generator.MinIntervalMS > 0 {
		g.MinInterval = time.Duration(c.Generator.MinIntervalMS) * time.Millisecond
	}
	if c.Generator.MaxIntervalMS > 0 {
		g.MaxInterval = time.Duration(c.Generator.MaxIntervalMS) * time.Millisecond
	}
	if c.Generator.Burst > 0 {
		g.Burst = c.Generator.Burst
	}
	g.Seed = seed
	return g
}

// TickInterval returns the wall-clock duration of one tick.
func (c JunctionConfig) TickInterval() time.Duration {
	rate := c.Simulation.TickRate
	if rate <= 0 {
		rate = 30
	}
	return time.Second / time.Duration(rate)
}
