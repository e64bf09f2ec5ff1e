package config

import (
	_ "embed"
)

//go:embed defaults/junction.yaml
var defaultJunctionYAML []byte

// DefaultConfig returns the stock configuration: 100-vehicle queue and
// population, 8.5 s signal dwell, one vehicle every 1-3 s.
func DefaultConfig() JunctionConfig {
	return JunctionConfig{
		Simulation: SimulationConfig{
			TickRate:           30,
			QueueCapacity:      100,
			PopulationCapacity: 100,
		},
		Signal: SignalConfig{
			DwellMS:      8500,
			InitialGreen: "horizontal",
		},
		Generator: GeneratorConfig{
			Pattern:       "mixed",
			Speed:         2,
			Size:          20,
			MinIntervalMS: 1000,
			MaxIntervalMS: 3000,
			Burst:         1,
		},
		Producer: ProducerConfig{
			Addr:   "localhost:8080",
			Listen: ":8080",
		},
		Rush: RushConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			RampTicks:    5400, // 3 minutes at 30 ticks/s
			Compression:  0.8,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.junction/junction.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultJunctionYAML
}
