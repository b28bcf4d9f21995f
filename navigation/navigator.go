package navigation

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/maze"
	"github.com/lixenwraith/nextbot-maze/vmath"
)

// Navigator keeps a flow field toward the player cell and turns it into world steering
// Recomputes only when the target changes cell, at most once per MinTicks updates
type Navigator struct {
	Field    *FlowField
	Grid     *maze.Grid
	Layout   maze.Layout
	MinTicks int

	target    mgl64.Vec3
	sinceLast int
	computes  int
}

// NewNavigator returns nil for a nil grid, callers treat nil as "no maze"
func NewNavigator(g *maze.Grid, layout maze.Layout, minTicks int) *Navigator {
	if g == nil {
		return nil
	}
	return &Navigator{
		Field:     NewFlowField(g.Width, g.Height),
		Grid:      g,
		Layout:    layout,
		MinTicks:  minTicks,
		sinceLast: minTicks,
	}
}

// Update retargets the field, returns true when it was recomputed
func (n *Navigator) Update(target mgl64.Vec3) bool {
	if n == nil {
		return false
	}
	n.target = target
	n.sinceLast++

	cell, ok := n.Layout.CellAt(target)
	if !ok || !n.Grid.IsPath(cell.X, cell.Y) {
		// Keep the last field, the player is on a wall top or outside the grid
		return false
	}
	if n.Field.Valid && cell == n.Field.Target {
		return false
	}
	if n.Field.Valid && n.sinceLast < n.MinTicks {
		return false
	}

	n.Field.Compute(n.Grid, cell)
	n.sinceLast = 0
	n.computes++
	return n.Field.Valid
}

// Computes is the number of field recomputations so far
func (n *Navigator) Computes() int {
	if n == nil {
		return 0
	}
	return n.computes
}

// Direction returns the normalized XZ heading for an agent at pos
// In the target cell the heading points at the target itself
func (n *Navigator) Direction(pos mgl64.Vec3) (mgl64.Vec3, bool) {
	if n == nil || !n.Field.Valid {
		return mgl64.Vec3{}, false
	}
	cell, ok := n.Layout.CellAt(pos)
	if !ok {
		return mgl64.Vec3{}, false
	}

	var aim mgl64.Vec3
	switch d := n.Field.Direction(cell); d {
	case DirNone:
		return mgl64.Vec3{}, false
	case DirTarget:
		aim = n.target
	default:
		aim = n.Layout.CellCenter(maze.Point{X: cell.X + Steps[d].X, Y: cell.Y + Steps[d].Y})
	}

	dir := vmath.SafeNormalize(vmath.Flatten(aim.Sub(pos)))
	return dir, !vmath.IsZero(dir)
}

// Clear reports whether the ground segment from a to b crosses only open cells
func (n *Navigator) Clear(a, b mgl64.Vec3) bool {
	if n == nil || n.Layout.CellSize <= 0 {
		return false
	}
	toCell := func(p mgl64.Vec3) (float64, float64) {
		return p[0]/n.Layout.CellSize + float64(n.Layout.Width)/2,
			p[2]/n.Layout.CellSize + float64(n.Layout.Height)/2
	}
	x1, y1 := toCell(a)
	x2, y2 := toCell(b)

	clear := true
	vmath.Traverse(x1, y1, x2, y2, func(x, y int) bool {
		clear = n.Grid.IsPath(x, y)
		return clear
	})
	return clear
}
