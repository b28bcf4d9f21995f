// Package world builds the static play space, from a generated maze or an
// externally supplied collision model, into one uniform shape.
package world

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/collision"
	"github.com/lixenwraith/nextbot-maze/maze"
)

// ErrInvalidWorld is returned for construction parameters that cannot describe a world
var ErrInvalidWorld = errors.New("world: invalid construction parameters")

// World is the static environment consumed by placement and simulation
type World struct {
	Collision *collision.World
	Bounds    collision.AABB
	FloorY    float64

	// Maze-only, nil/empty for model worlds
	Grid      *maze.Grid
	Layout    maze.Layout
	Walls     []collision.AABB
	OpenCells []mgl64.Vec3
	Origin    maze.Point

	// Degraded is set when the requested world could not be built and a
	// fallback stands in: an obstacle-free world or a maze replacing a model
	Degraded bool
}

// IsMaze reports whether the world carries a grid
func (w *World) IsMaze() bool {
	return w.Grid != nil
}

// MazeConfig is the input of FromMaze
type MazeConfig struct {
	Width, Height int
	Seed          int64
	Geometry      maze.MaterializeConfig
}

// FromMaze generates and materializes a maze
// Zero-sized inputs fail fast; grids too small to carve degrade to an obstacle-free world
func FromMaze(cfg MazeConfig, rng *rand.Rand, logger *log.Logger) (*World, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Geometry.CellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %f", ErrInvalidWorld, cfg.Geometry.CellSize)
	}

	res, err := maze.Generate(maze.Config{Width: cfg.Width, Height: cfg.Height, Seed: cfg.Seed})
	switch {
	case errors.Is(err, maze.ErrDegenerate):
		logger.Warn("maze degenerate, using obstacle-free world", "width", cfg.Width, "height", cfg.Height)
		return openWorld(cfg), nil
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorld, err)
	}

	geo := maze.Materialize(res.Grid, cfg.Geometry, rng)
	if len(geo.World.Colliders) == 0 {
		logger.Warn("maze produced no colliders, using obstacle-free world")
		return openWorld(cfg), nil
	}

	logger.Info("maze built",
		"width", res.Grid.Width,
		"height", res.Grid.Height,
		"colliders", len(geo.World.Colliders),
		"paths", res.Grid.PathCount(),
	)

	return &World{
		Collision: geo.World,
		Bounds:    geo.Bounds,
		FloorY:    geo.Floor.Max[1],
		Grid:      res.Grid,
		Layout:    geo.Layout,
		Walls:     geo.Walls,
		OpenCells: geo.OpenCells,
		Origin:    res.Origin,
	}, nil
}

// FromModel wraps collision geometry from a loaded static model
func FromModel(colliders []collision.AABB, bounds collision.AABB) (*World, error) {
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: empty model bounds", ErrInvalidWorld)
	}
	size := bounds.Size()
	if size[0] <= 0 || size[2] <= 0 {
		return nil, fmt.Errorf("%w: zero-sized model footprint", ErrInvalidWorld)
	}
	b := bounds
	return &World{
		Collision: collision.NewWorld(colliders, &b),
		Bounds:    bounds,
		FloorY:    bounds.Min[1],
	}, nil
}

// openWorld is the recovery world: bounds of the requested footprint, no colliders
func openWorld(cfg MazeConfig) *World {
	sizeX := float64(max(cfg.Width, 1)) * cfg.Geometry.CellSize
	sizeZ := float64(max(cfg.Height, 1)) * cfg.Geometry.CellSize
	bounds := collision.AABB{
		Min: mgl64.Vec3{-sizeX / 2, 0, -sizeZ / 2},
		Max: mgl64.Vec3{sizeX / 2, cfg.Geometry.WallHeight, sizeZ / 2},
	}
	return &World{
		Collision: collision.NewWorld(nil, &bounds),
		Bounds:    bounds,
		Degraded:  true,
	}
}
