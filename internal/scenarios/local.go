// Package scenarios registers the built-in traffic scenarios. Import it for
// its side effects.
package scenarios

import (
	"github.com/vovakirdan/tui-junction/internal/registry"
	"github.com/vovakirdan/tui-junction/internal/spawn"
)

func init() {
	registry.Register("local", "In-process generator (configured pattern)", func(env registry.Env) (spawn.Source, error) {
		return newGeneratorSource(env, "")
	})
	registry.Register("straight", "Straight-through traffic only", func(env registry.Env) (spawn.Source, error) {
		return newGeneratorSource(env, spawn.PatternStraight)
	})
}

// newGeneratorSource builds an in-process source from the generator config.
// A non-empty pattern overrides the configured one.
func newGeneratorSource(env registry.Env, pattern spawn.Pattern) (*spawn.GeneratorSource, error) {
	gcfg := env.Config.GeneratorSettings(env.Seed)
	if pattern != "" {
		gcfg.Pattern = pattern
	}
	gen, err := spawn.NewGenerator(gcfg)
	if err != nil {
		return nil, err
	}
	if env.Logger != nil {
		env.Logger.Debug("generator ready",
			"pattern", gcfg.Pattern,
			"min_interval", gcfg.MinInterval,
			"max_interval", gcfg.MaxInterval,
			"burst", gcfg.Burst,
		)
	}
	return spawn.NewGeneratorSource(gen, env.Clock.Now), nil
}
