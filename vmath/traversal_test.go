package vmath

import (
	"testing"
)

func collect(x1, y1, x2, y2 float64) [][2]int {
	var cells [][2]int
	Traverse(x1, y1, x2, y2, func(x, y int) bool {
		cells = append(cells, [2]int{x, y})
		return true
	})
	return cells
}

func TestTraverseHorizontal(t *testing.T) {
	got := collect(0.5, 0.5, 3.5, 0.5)
	want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected cell %v at step %d, got %v", want[i], i, got[i])
		}
	}
}

func TestTraverseReverse(t *testing.T) {
	got := collect(2.5, 3.5, 2.5, 0.5)
	if len(got) != 4 || got[0] != [2]int{2, 3} || got[3] != [2]int{2, 0} {
		t.Errorf("Expected 4 cells from (2,3) to (2,0), got %v", got)
	}
}

func TestTraverseExactDiagonal(t *testing.T) {
	got := collect(0.5, 0.5, 2.5, 2.5)
	want := [][2]int{{0, 0}, {1, 1}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected cell %v at step %d, got %v", want[i], i, got[i])
		}
	}
}

func TestTraverseShallowVisitsEveryCrossedCell(t *testing.T) {
	got := collect(0.2, 0.2, 3.8, 1.6)
	last := got[len(got)-1]
	if last != [2]int{3, 1} {
		t.Errorf("Expected to end at (3,1), got %v", last)
	}
	for i := 1; i < len(got); i++ {
		dx := got[i][0] - got[i-1][0]
		dy := got[i][1] - got[i-1][1]
		if dx < 0 || dy < 0 || dx+dy != 1 {
			t.Errorf("Expected one orthogonal step, got %v -> %v", got[i-1], got[i])
		}
	}
}

func TestTraverseSameCell(t *testing.T) {
	if got := collect(1.1, 1.1, 1.9, 1.9); len(got) != 1 {
		t.Errorf("Expected a single cell, got %v", got)
	}
}

func TestTraverseStopsEarly(t *testing.T) {
	visits := 0
	Traverse(0.5, 0.5, 9.5, 0.5, func(x, y int) bool {
		visits++
		return x < 2
	})
	if visits != 3 {
		t.Errorf("Expected traversal to stop at the third cell, got %d visits", visits)
	}
}
