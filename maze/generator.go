package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/nextbot-maze/parameter"
)

// Cell types
const (
	Wall = true
	Path = false
)

var (
	// ErrInvalidDimensions is returned for zero or negative grid sizes
	ErrInvalidDimensions = errors.New("maze: invalid dimensions")
	// ErrDegenerate is returned when the grid has no interior cell to carve
	ErrDegenerate = errors.New("maze: grid too small to carve")
)

type Point struct {
	X, Y int
}

type Config struct {
	Width, Height int

	Start *Point // Optional carve origin (nil = random odd-aligned interior cell)
	Seed  int64  // Optional (0 = Random)
}

type Result struct {
	Grid   *Grid
	Origin Point
}

// Generate carves a perfect maze with recursive backtracking
// Outer ring is always Wall; every Path cell is reachable from Origin exactly one way
func Generate(cfg Config) (Result, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Result{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if cfg.Width < parameter.MazeMinSize || cfg.Height < parameter.MazeMinSize {
		return Result{}, fmt.Errorf("%w: %dx%d", ErrDegenerate, cfg.Width, cfg.Height)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := NewGrid(cfg.Width, cfg.Height)
	origin := resolveOrigin(grid, cfg.Start, rng)

	recursiveBacktracker(grid, origin, rng)

	// Carve never touches the ring, restore it anyway so the invariant holds by construction
	sealBorders(grid)

	return Result{Grid: grid, Origin: origin}, nil
}

// --- Core Algorithm ---

// carveFrame is one level of the depth-first carve: a cell and its shuffled exits
type carveFrame struct {
	at   Point
	dirs [4]Point
	next int
}

var stepDirs = [4]Point{{0, -2}, {2, 0}, {0, 2}, {-2, 0}} // up, right, down, left

// recursiveBacktracker is the depth-first carve with an explicit stack
// Each frame shuffles its four 2-step directions once and walks them in order,
// matching the recursive formulation without its stack depth
func recursiveBacktracker(g *Grid, start Point, rng *rand.Rand) {
	g.Cells[start.Y][start.X] = Path
	stack := []carveFrame{newFrame(start, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		nx, ny := top.at.X+d.X, top.at.Y+d.Y
		// Interior only, border ring stays Wall
		if nx <= 0 || nx >= g.Width-1 || ny <= 0 || ny >= g.Height-1 {
			continue
		}
		if g.Cells[ny][nx] != Wall {
			continue
		}

		g.Cells[top.at.Y+d.Y/2][top.at.X+d.X/2] = Path
		g.Cells[ny][nx] = Path
		stack = append(stack, newFrame(Point{nx, ny}, rng))
	}
}

func newFrame(at Point, rng *rand.Rand) carveFrame {
	f := carveFrame{at: at, dirs: stepDirs}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

func sealBorders(g *Grid) {
	for x := 0; x < g.Width; x++ {
		g.Cells[0][x] = Wall
		g.Cells[g.Height-1][x] = Wall
	}
	for y := 0; y < g.Height; y++ {
		g.Cells[y][0] = Wall
		g.Cells[y][g.Width-1] = Wall
	}
}

// --- Helpers ---

// resolveOrigin picks or clamps the carve origin to an odd-aligned interior cell
// Even dimensions leave the last interior row/column uncarved rather than breaching the ring
func resolveOrigin(g *Grid, p *Point, rng *rand.Rand) Point {
	if p == nil {
		return Point{
			X: 2*rng.Intn(oddSlots(g.Width)) + 1,
			Y: 2*rng.Intn(oddSlots(g.Height)) + 1,
		}
	}
	return Point{X: clampOdd(p.X, g.Width), Y: clampOdd(p.Y, g.Height)}
}

// oddSlots counts odd interior coordinates 1, 3, 5, ... strictly inside the ring
func oddSlots(n int) int {
	return (n - 1) / 2
}

func clampOdd(v, n int) int {
	if v < 1 {
		v = 1
	}
	if hi := 2*(oddSlots(n)-1) + 1; v > hi {
		v = hi
	}
	if v%2 == 0 {
		v--
	}
	return v
}
