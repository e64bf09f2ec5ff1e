// Package registry provides a global registry for scenario factories.
// Scenarios register themselves in init() functions, allowing the CLI and
// the SSH server to discover and instantiate spawn sources without
// hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/junction"
	"github.com/vovakirdan/tui-junction/internal/spawn"
)

// Env is everything a scenario needs to build its spawn source.
type Env struct {
	Ctx    context.Context
	Config config.JunctionConfig
	Seed   int64          // zero means time-seeded
	Clock  junction.Clock // shared with the signal so fixed-step runs stay deterministic
	Logger *log.Logger
}

// ScenarioInfo contains metadata about a registered scenario.
type ScenarioInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh spawn source for one simulation.
type Factory func(env Env) (spawn.Source, error)

type entry struct {
	title   string
	factory Factory
}

var (
	scenarios = make(map[string]entry)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Typically called from an init() function.
// Panics if a scenario with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := scenarios[id]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}
	scenarios[id] = entry{title: title, factory: f}
}

// List returns information about all registered scenarios, sorted by ID.
func List() []ScenarioInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScenarioInfo, 0, len(scenarios))
	for id, e := range scenarios {
		result = append(result, ScenarioInfo{ID: id, Title: e.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds the spawn source for scenario id.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, env Env) (spawn.Source, error) {
	mu.RLock()
	e, ok := scenarios[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scenario %q", id)
	}
	if env.Ctx == nil {
		env.Ctx = context.Background()
	}
	if env.Clock == nil {
		env.Clock = junction.SystemClock{}
	}

	src, err := e.factory(env)
	if err != nil {
		return nil, fmt.Errorf("registry: scenario %q: %w", id, err)
	}
	return src, nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := scenarios[id]
	return ok
}
