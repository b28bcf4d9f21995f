package maze

import (
	"io"
	"strings"
)

// Grid is a Width × Height cell map, Cells[y][x] is Wall or Path
type Grid struct {
	Width, Height int
	Cells         [][]bool
}

// NewGrid creates a grid filled with walls
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]bool, width)
		for x := range cells[y] {
			cells[y][x] = Wall
		}
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// IsWall treats out-of-bounds as wall
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.Cells[y][x] == Wall
}

func (g *Grid) IsPath(x, y int) bool {
	return !g.IsWall(x, y)
}

// PathCells lists every open cell in row-major order
func (g *Grid) PathCells() []Point {
	var out []Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] == Path {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// PathCount returns the number of open cells
func (g *Grid) PathCount() int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] == Path {
				n++
			}
		}
	}
	return n
}

// EdgeCount returns the number of orthogonally adjacent open cell pairs
// A connected acyclic maze has exactly PathCount()-1 edges
func (g *Grid) EdgeCount() int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Cells[y][x] != Path {
				continue
			}
			if g.IsPath(x+1, y) {
				n++
			}
			if g.IsPath(x, y+1) {
				n++
			}
		}
	}
	return n
}

var orthoDirs = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// FloodFill returns the number of open cells reachable from start (0 if start is a wall)
func (g *Grid) FloodFill(start Point) int {
	if g.IsWall(start.X, start.Y) {
		return 0
	}
	visited := make([]bool, g.Width*g.Height)
	visited[start.Y*g.Width+start.X] = true
	queue := []Point{start}
	count := 0

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		count++

		for _, d := range orthoDirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if g.IsWall(nx, ny) {
				continue
			}
			idx := ny*g.Width + nx
			if !visited[idx] {
				visited[idx] = true
				queue = append(queue, Point{nx, ny})
			}
		}
	}
	return count
}

// ShortestPath returns the cell path from start to end inclusive, nil if unreachable
func (g *Grid) ShortestPath(start, end Point) []Point {
	if g.IsWall(start.X, start.Y) || g.IsWall(end.X, end.Y) {
		return nil
	}

	queue := []Point{start}
	cameFrom := make(map[Point]Point)
	visited := map[Point]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []Point{}
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range orthoDirs {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			if g.IsWall(next.X, next.Y) || visited[next] {
				continue
			}
			visited[next] = true
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

// Render writes the grid as text, walls as '█'
// marks overrides single cells (e.g. origin, route)
func (g *Grid) Render(w io.Writer, marks map[Point]rune) error {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if r, ok := marks[Point{x, y}]; ok {
				sb.WriteRune(r)
			} else if g.Cells[y][x] == Wall {
				sb.WriteRune('█')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
