// Package navigation computes maze-aware steering toward a moving target.
package navigation

import (
	"container/heap"

	"github.com/lixenwraith/nextbot-maze/maze"
)

// Direction indices into Steps, N is toward -Y (grid rows), which maps to -Z in world space
const (
	DirNone   int8 = -1 // Blocked or unreachable
	DirTarget int8 = -2 // At target cell
	DirN      int8 = 0
	DirNE     int8 = 1
	DirE      int8 = 2
	DirSE     int8 = 3
	DirS      int8 = 4
	DirSW     int8 = 5
	DirW      int8 = 6
	DirNW     int8 = 7
	DirCount  int8 = 8
)

// Steps are the cell offsets of DirN..DirNW
var Steps = [DirCount]maze.Point{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

// Edge costs approximate Euclidean distance: cardinal 10, diagonal 14
const (
	costCardinal    = 10
	costDiagonal    = 14
	costUnreachable = 1<<30 - 1
)

func stepCost(d int8) int {
	if d%2 == 1 {
		return costDiagonal
	}
	return costCardinal
}

type node struct {
	idx, dist int
}

// frontier implements heap.Interface ordered by distance
type frontier []node

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(node)) }
func (f *frontier) Pop() any {
	old := *f
	n := old[len(old)-1]
	*f = old[:len(old)-1]
	return n
}

// FlowField stores, per grid cell, the step leading toward the target
type FlowField struct {
	Width, Height int
	Directions    []int8
	Distances     []int

	Target maze.Point
	Valid  bool

	open frontier
}

// NewFlowField allocates a field for a grid of the given size
func NewFlowField(width, height int) *FlowField {
	n := width * height
	return &FlowField{
		Width:      width,
		Height:     height,
		Directions: make([]int8, n),
		Distances:  make([]int, n),
		Target:     maze.Point{X: -1, Y: -1},
		open:       make(frontier, 0, n/4),
	}
}

// Direction returns the flow at a cell, DirNone when invalid or blocked
func (f *FlowField) Direction(c maze.Point) int8 {
	if !f.Valid || c.X < 0 || c.Y < 0 || c.X >= f.Width || c.Y >= f.Height {
		return DirNone
	}
	return f.Directions[c.Y*f.Width+c.X]
}

// Distance returns weighted distance to target, -1 if unreachable
func (f *FlowField) Distance(c maze.Point) int {
	if !f.Valid || c.X < 0 || c.Y < 0 || c.X >= f.Width || c.Y >= f.Height {
		return -1
	}
	if d := f.Distances[c.Y*f.Width+c.X]; d < costUnreachable {
		return d
	}
	return -1
}

// passable reports whether a step from c in direction d is legal
// Diagonals require both adjacent cardinals to be open
func passable(g *maze.Grid, c maze.Point, d int8) bool {
	s := Steps[d]
	if g.IsWall(c.X+s.X, c.Y+s.Y) {
		return false
	}
	if s.X != 0 && s.Y != 0 {
		return g.IsPath(c.X+s.X, c.Y) && g.IsPath(c.X, c.Y+s.Y)
	}
	return true
}

// Compute runs weighted Dijkstra outward from target over g, then points each
// reached cell at its lowest-distance neighbor
func (f *FlowField) Compute(g *maze.Grid, target maze.Point) {
	if g == nil || g.Width != f.Width || g.Height != f.Height || g.IsWall(target.X, target.Y) {
		f.Valid = false
		return
	}

	w := f.Width
	for i := range f.Distances {
		f.Distances[i] = costUnreachable
		f.Directions[i] = DirNone
	}

	start := target.Y*w + target.X
	f.Distances[start] = 0
	f.open = f.open[:0]
	heap.Push(&f.open, node{idx: start})

	for f.open.Len() > 0 {
		n := heap.Pop(&f.open).(node)
		if n.dist > f.Distances[n.idx] {
			continue
		}
		c := maze.Point{X: n.idx % w, Y: n.idx / w}
		for d := int8(0); d < DirCount; d++ {
			if !passable(g, c, d) {
				continue
			}
			next := (c.Y+Steps[d].Y)*w + c.X + Steps[d].X
			if nd := n.dist + stepCost(d); nd < f.Distances[next] {
				f.Distances[next] = nd
				heap.Push(&f.open, node{idx: next, dist: nd})
			}
		}
	}

	for y := 0; y < f.Height; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			dist := f.Distances[idx]
			if dist == 0 || dist >= costUnreachable {
				continue
			}
			c := maze.Point{X: x, Y: y}
			best, bestDist := DirNone, dist
			for d := int8(0); d < DirCount; d++ {
				if !passable(g, c, d) {
					continue
				}
				if nd := f.Distances[(y+Steps[d].Y)*w+x+Steps[d].X]; nd < bestDist {
					best, bestDist = d, nd
				}
			}
			f.Directions[idx] = best
		}
	}

	f.Directions[start] = DirTarget
	f.Target = target
	f.Valid = true
}
