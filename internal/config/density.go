package config

import "math"

// DensityPreset represents a named traffic density.
type DensityPreset string

const (
	DensityLight  DensityPreset = "light"
	DensityNormal DensityPreset = "normal"
	DensityHeavy  DensityPreset = "heavy"
	DensityBurst  DensityPreset = "burst"
)

// Presets lists the density presets in increasing order.
var Presets = []DensityPreset{DensityLight, DensityNormal, DensityHeavy, DensityBurst}

// ParseDensity validates a preset name. The empty string means normal.
func ParseDensity(s string) (DensityPreset, bool) {
	if s == "" {
		return DensityNormal, true
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// InitialLevelForPreset returns the rush starting level for a preset.
func InitialLevelForPreset(preset DensityPreset) float64 {
	switch preset {
	case DensityLight:
		return 0.0
	case DensityNormal:
		return 0.2
	case DensityHeavy:
		return 0.5
	case DensityBurst:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyDensityPreset adjusts generation timing and the rush starting level
// for a preset. Normal leaves the loaded config untouched.
func ApplyDensityPreset(cfg *JunctionConfig, preset DensityPreset) {
	if preset == DensityNormal {
		return
	}
	cfg.Rush.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DensityLight:
		cfg.Generator.MinIntervalMS = 2500
		cfg.Generator.MaxIntervalMS = 5000
		cfg.Generator.Burst = 1
	case DensityHeavy:
		cfg.Generator.MinIntervalMS = 300
		cfg.Generator.MaxIntervalMS = 900
		cfg.Generator.Burst = 1
	case DensityBurst:
		cfg.Generator.MinIntervalMS = 2000
		cfg.Generator.MaxIntervalMS = 4000
		cfg.Generator.Burst = 6
	}
}

// RushRamp calculates how much the rush scenario compresses emission
// intervals as ticks accumulate.
type RushRamp struct {
	cfg          RushConfig
	initialLevel float64
}

// NewRushRamp creates a ramp from cfg.
func NewRushRamp(cfg RushConfig) *RushRamp {
	return &RushRamp{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether the ramp progresses.
func (r *RushRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.RampTicks > 0
}

// Level returns the current rush level (0.0 to 1.0) after ticks.
func (r *RushRamp) Level(ticks int) float64 {
	if !r.IsEnabled() {
		return r.initialLevel
	}
	progress := clampF(float64(ticks)/float64(r.cfg.RampTicks), 0.0, 1.0)
	// Interpolate from initial level to 1.0
	return r.initialLevel + progress*(1.0-r.initialLevel)
}

// Scale returns the factor applied to a base interval after ticks. It never
// drops below 0.05 so the generator always waits a little.
func (r *RushRamp) Scale(ticks int) float64 {
	f := 1.0 - r.Level(ticks)*clampF(r.cfg.Compression, 0.0, 1.0)
	return math.Max(f, 0.05)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
