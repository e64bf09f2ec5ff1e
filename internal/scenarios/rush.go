package scenarios

import (
	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/registry"
	"github.com/vovakirdan/tui-junction/internal/spawn"
)

func init() {
	registry.Register("rush", "Traffic that builds toward rush hour", func(env registry.Env) (spawn.Source, error) {
		src, err := newGeneratorSource(env, "")
		if err != nil {
			return nil, err
		}
		return newRushSource(src, config.NewRushRamp(env.Config.Rush)), nil
	})
}

// rushSource shortens the generator's waits as polls (one per tick)
// accumulate.
type rushSource struct {
	*spawn.GeneratorSource
	ramp  *config.RushRamp
	polls int
}

func newRushSource(src *spawn.GeneratorSource, ramp *config.RushRamp) *rushSource {
	src.SetIntervalScale(ramp.Scale(0))
	return &rushSource{GeneratorSource: src, ramp: ramp}
}

func (r *rushSource) Poll() []spawn.Record {
	r.polls++
	r.SetIntervalScale(r.ramp.Scale(r.polls))
	return r.GeneratorSource.Poll()
}
