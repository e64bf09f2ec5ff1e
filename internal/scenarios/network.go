package scenarios

import (
	"github.com/vovakirdan/tui-junction/internal/registry"
	"github.com/vovakirdan/tui-junction/internal/spawn"
)

func init() {
	registry.Register("network", "Records from a TCP producer (junction generate)", func(env registry.Env) (spawn.Source, error) {
		src, err := spawn.DialStream(env.Ctx, env.Config.Producer.Addr, env.Logger)
		if err != nil {
			return nil, err
		}
		return src, nil
	})
}
