package maze

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/collision"
	"github.com/lixenwraith/nextbot-maze/parameter"
)

// MaterializeConfig sizes the geometry built from a grid
type MaterializeConfig struct {
	CellSize       float64
	WallHeight     float64
	WallJitter     float64 // Cosmetic, max extra height per wall
	WallInset      float64
	FloorThickness float64
	OuterWalls     bool
}

// DefaultMaterializeConfig mirrors the parameter defaults
func DefaultMaterializeConfig() MaterializeConfig {
	return MaterializeConfig{
		CellSize:       parameter.MazeCellSize,
		WallHeight:     parameter.MazeWallHeight,
		WallJitter:     parameter.MazeWallJitter,
		WallInset:      parameter.MazeWallInset,
		FloorThickness: parameter.MazeFloorThickness,
		OuterWalls:     true,
	}
}

// Layout maps grid cells to world coordinates, the grid is centered on the origin
type Layout struct {
	Width, Height int
	CellSize      float64
}

// CellCenter returns the world position of a cell center at ground level (Y = 0)
func (l Layout) CellCenter(p Point) mgl64.Vec3 {
	return mgl64.Vec3{
		(float64(p.X)-float64(l.Width)/2)*l.CellSize + l.CellSize/2,
		0,
		(float64(p.Y)-float64(l.Height)/2)*l.CellSize + l.CellSize/2,
	}
}

// CellAt returns the cell containing world position p, ok false outside the grid
func (l Layout) CellAt(p mgl64.Vec3) (Point, bool) {
	if l.CellSize <= 0 {
		return Point{}, false
	}
	fx := p[0]/l.CellSize + float64(l.Width)/2
	fz := p[2]/l.CellSize + float64(l.Height)/2
	if fx < 0 || fz < 0 {
		return Point{}, false
	}
	c := Point{X: int(fx), Y: int(fz)}
	if c.X >= l.Width || c.Y >= l.Height {
		return Point{}, false
	}
	return c, true
}

// Extent is the world footprint of the grid at ground level
func (l Layout) Extent() (sizeX, sizeZ float64) {
	return float64(l.Width) * l.CellSize, float64(l.Height) * l.CellSize
}

// Geometry is the materialized maze
type Geometry struct {
	Walls     []collision.AABB // One per Wall cell, also present in World.Colliders
	Floor     collision.AABB
	Outer     []collision.AABB
	World     *collision.World
	Bounds    collision.AABB // Grid footprint from floor bottom to tallest wall
	OpenCells []mgl64.Vec3   // World centers of Path cells, for placement
	Layout    Layout
}

// Materialize converts a grid into wall volumes, a floor, optional sealing walls and colliders
// rng drives cosmetic height jitter only, nil disables jitter
func Materialize(g *Grid, cfg MaterializeConfig, rng *rand.Rand) Geometry {
	layout := Layout{Width: g.Width, Height: g.Height, CellSize: cfg.CellSize}
	sizeX, sizeZ := layout.Extent()

	geo := Geometry{Layout: layout}

	geo.Floor = collision.NewAABB(
		mgl64.Vec3{0, -cfg.FloorThickness / 2, 0},
		mgl64.Vec3{sizeX, cfg.FloorThickness, sizeZ},
	)
	colliders := []collision.AABB{geo.Floor}

	top := 0.0
	wallSpan := cfg.CellSize - cfg.WallInset
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{x, y}
			center := layout.CellCenter(p)
			if g.Cells[y][x] == Path {
				geo.OpenCells = append(geo.OpenCells, center)
				continue
			}

			h := cfg.WallHeight
			if rng != nil && cfg.WallJitter > 0 {
				h += rng.Float64() * cfg.WallJitter
			}
			wall := collision.NewAABB(
				mgl64.Vec3{center[0], h / 2, center[2]},
				mgl64.Vec3{wallSpan, h, wallSpan},
			)
			geo.Walls = append(geo.Walls, wall)
			colliders = append(colliders, wall)
			top = max(top, h)
		}
	}

	if cfg.OuterWalls {
		geo.Outer = outerWalls(sizeX, sizeZ, cfg.WallHeight+parameter.MazeOuterHeightBonus)
		colliders = append(colliders, geo.Outer...)
		top = max(top, cfg.WallHeight+parameter.MazeOuterHeightBonus)
	}

	geo.Bounds = collision.AABB{
		Min: mgl64.Vec3{-sizeX / 2, -cfg.FloorThickness, -sizeZ / 2},
		Max: mgl64.Vec3{sizeX / 2, top, sizeZ / 2},
	}
	geo.World = collision.NewWorld(colliders, &geo.Bounds)
	return geo
}

// outerWalls seals the play area just beyond the grid footprint
func outerWalls(sizeX, sizeZ, height float64) []collision.AABB {
	spanX := sizeX + parameter.MazeOuterMargin
	spanZ := sizeZ + parameter.MazeOuterMargin
	t := parameter.MazeOuterThickness
	y := height / 2

	return []collision.AABB{
		collision.NewAABB(mgl64.Vec3{0, y, -spanZ/2 - t/2}, mgl64.Vec3{spanX, height, t}), // North
		collision.NewAABB(mgl64.Vec3{0, y, spanZ/2 + t/2}, mgl64.Vec3{spanX, height, t}),  // South
		collision.NewAABB(mgl64.Vec3{spanX/2 + t/2, y, 0}, mgl64.Vec3{t, height, spanZ}),  // East
		collision.NewAABB(mgl64.Vec3{-spanX/2 - t/2, y, 0}, mgl64.Vec3{t, height, spanZ}), // West
	}
}
