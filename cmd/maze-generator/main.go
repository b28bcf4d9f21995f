package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/nextbot-maze/maze"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== PERFECT MAZE GENERATOR ===")

		w := getInt(reader, "Width [Odd prefered] (default 41): ", 41)
		h := getInt(reader, "Height [Odd prefered] (default 21): ", 21)
		seed := getInt64(reader, "Seed [0 = random] (default 0): ", 0)

		fmt.Print("Show route to farthest cell? [Y/n]: ")
		routeStr, _ := reader.ReadString('\n')
		showRoute := strings.ToLower(strings.TrimSpace(routeStr)) != "n"

		fmt.Println("\nGenerating...")
		startT := time.Now()
		res, err := maze.Generate(maze.Config{Width: w, Height: h, Seed: seed})
		dur := time.Since(startT)

		switch {
		case errors.Is(err, maze.ErrDegenerate):
			fmt.Printf("Grid %dx%d is too small to carve, the game would use an open arena\n", w, h)
		case err != nil:
			fmt.Printf("Error: %v\n", err)
		default:
			report(res, dur, showRoute)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func report(res maze.Result, dur time.Duration, showRoute bool) {
	g := res.Grid
	paths := g.PathCount()
	fmt.Printf("Done in %v\n", dur)
	fmt.Printf("Grid Dimensions: %dx%d  Origin: (%d,%d)\n", g.Width, g.Height, res.Origin.X, res.Origin.Y)
	fmt.Printf("Path cells: %d  Reachable: %d  Edges: %d  Acyclic: %v\n",
		paths, g.FloodFill(res.Origin), g.EdgeCount(), g.EdgeCount() == paths-1)

	marks := map[maze.Point]rune{res.Origin: 'S'}
	if showRoute {
		route := farthestRoute(g, res.Origin)
		if len(route) > 1 {
			for _, p := range route[1 : len(route)-1] {
				marks[p] = '•'
			}
			end := route[len(route)-1]
			marks[end] = 'E'
			fmt.Printf("Longest route from origin: %d steps to (%d,%d)\n", len(route)-1, end.X, end.Y)
		}
	}

	if err := g.Render(os.Stdout, marks); err != nil {
		fmt.Printf("Render failed: %v\n", err)
	}
}

// farthestRoute returns the longest shortest-path from origin
func farthestRoute(g *maze.Grid, origin maze.Point) []maze.Point {
	var best []maze.Point
	for _, p := range g.PathCells() {
		if route := g.ShortestPath(origin, p); len(route) > len(best) {
			best = route
		}
	}
	return best
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getInt64(r *bufio.Reader, prompt string, def int64) int64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}
