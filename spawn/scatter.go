package spawn

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/maze"
	"github.com/lixenwraith/nextbot-maze/parameter"
	"github.com/lixenwraith/nextbot-maze/vmath"
)

// ScatterConfig shapes the agent ring around the player start
type ScatterConfig struct {
	RadiusMin, RadiusMax float64
	Height               float64
	AngleJitter          float64
}

// DefaultScatterConfig returns the parameter defaults
func DefaultScatterConfig() ScatterConfig {
	return ScatterConfig{
		RadiusMin:   parameter.BotSpawnRadiusMin,
		RadiusMax:   parameter.BotSpawnRadiusMax,
		Height:      parameter.BotSpawnHeight,
		AngleJitter: parameter.BotSpawnAngleJitter,
	}
}

// ScatterAgents places n agents on staggered angles around center at a fixed
// drop height; agents settle through the vertical resolution step, so no
// obstruction check is made here
func ScatterAgents(center mgl64.Vec3, n int, cfg ScatterConfig, rng *rand.Rand) []mgl64.Vec3 {
	if n <= 0 {
		return nil
	}
	out := make([]mgl64.Vec3, n)
	span := cfg.RadiusMax - cfg.RadiusMin
	for i := range out {
		angle := 2*math.Pi*float64(i)/float64(n) + (rng.Float64()*2-1)*cfg.AngleJitter
		radius := cfg.RadiusMin + rng.Float64()*span
		p := vmath.PolarXZ(center, angle, radius)
		p[1] = cfg.Height
		out[i] = p
	}
	return out
}

// PatrolRoute returns world waypoints along the maze path from the cell under
// from to a random open cell, capped at limit points
// Returns nil when the world has no grid or from lies outside it
func PatrolRoute(g *maze.Grid, layout maze.Layout, from mgl64.Vec3, rng *rand.Rand, limit int) []mgl64.Vec3 {
	if g == nil {
		return nil
	}
	start, ok := layout.CellAt(from)
	if !ok || !g.IsPath(start.X, start.Y) {
		start, ok = nearestPath(g, start)
		if !ok {
			return nil
		}
	}
	cells := g.PathCells()
	if len(cells) < 2 {
		return nil
	}
	goal := cells[rng.Intn(len(cells))]
	path := g.ShortestPath(start, goal)
	if limit > 0 && len(path) > limit {
		path = path[:limit]
	}
	out := make([]mgl64.Vec3, 0, len(path))
	for _, c := range path {
		out = append(out, layout.CellCenter(c))
	}
	return out
}

// nearestPath finds the closest open cell by Manhattan ring search
func nearestPath(g *maze.Grid, c maze.Point) (maze.Point, bool) {
	c.X = min(max(c.X, 0), g.Width-1)
	c.Y = min(max(c.Y, 0), g.Height-1)
	limit := max(g.Width, g.Height)
	for r := 0; r <= limit; r++ {
		for dx := -r; dx <= r; dx++ {
			dy := r - abs(dx)
			for _, p := range [2]maze.Point{{X: c.X + dx, Y: c.Y + dy}, {X: c.X + dx, Y: c.Y - dy}} {
				if g.IsPath(p.X, p.Y) {
					return p, true
				}
			}
		}
	}
	return maze.Point{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
