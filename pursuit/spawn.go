package pursuit

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/spawn"
)

// SpawnConfig controls the initial agent set
type SpawnConfig struct {
	Count   int
	Scatter spawn.ScatterConfig

	// Patterns cycles over this list instead of every pattern when set
	Patterns []Pattern

	// Route supplies patrol waypoints for an agent starting at pos, may be nil
	Route func(pos mgl64.Vec3) []mgl64.Vec3
}

// Spawn scatters agents around center, assigning patterns round-robin with a
// random personality each
func Spawn(center mgl64.Vec3, cfg SpawnConfig, rng *rand.Rand) []*Agent {
	positions := spawn.ScatterAgents(center, cfg.Count, cfg.Scatter, rng)
	cycle := cfg.Patterns
	if len(cycle) == 0 {
		cycle = Patterns()
	}

	agents := make([]*Agent, len(positions))
	for i, pos := range positions {
		a := NewAgent(i, cycle[i%len(cycle)], RandomPersonality(rng), pos)
		if a.Pattern == PatternPatrol && cfg.Route != nil {
			a.Waypoints = cfg.Route(pos)
		}
		agents[i] = a
	}
	return agents
}
