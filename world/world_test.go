package world

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/maze"
)

func testConfig(w, h int) MazeConfig {
	return MazeConfig{Width: w, Height: h, Seed: 3, Geometry: maze.DefaultMaterializeConfig()}
}

func TestFromMazeBuildsColliders(t *testing.T) {
	w, err := FromMaze(testConfig(11, 11), rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("FromMaze: %v", err)
	}
	if !w.IsMaze() || w.Degraded {
		t.Fatal("Expected a maze world")
	}
	if w.Collision.Empty() {
		t.Fatal("Expected colliders")
	}
	if len(w.OpenCells) != w.Grid.PathCount() {
		t.Errorf("Expected %d open cells, got %d", w.Grid.PathCount(), len(w.OpenCells))
	}
	if w.FloorY != 0 {
		t.Errorf("Expected floor top at 0, got %f", w.FloorY)
	}
}

func TestFromMazeDegenerateRecovers(t *testing.T) {
	w, err := FromMaze(testConfig(2, 2), rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("Expected recovery, got %v", err)
	}
	if !w.Degraded || w.IsMaze() {
		t.Error("Expected degraded obstacle-free world")
	}
	if !w.Collision.Empty() {
		t.Error("Expected no colliders")
	}
	if w.Bounds.Empty() {
		t.Error("Expected usable bounds")
	}
}

func TestFromMazeRejectsZeroSize(t *testing.T) {
	_, err := FromMaze(testConfig(0, 10), rand.New(rand.NewSource(1)), nil)
	if !errors.Is(err, ErrInvalidWorld) {
		t.Errorf("Expected ErrInvalidWorld, got %v", err)
	}
	cfg := testConfig(10, 10)
	cfg.Geometry.CellSize = 0
	if _, err := FromMaze(cfg, rand.New(rand.NewSource(1)), nil); !errors.Is(err, ErrInvalidWorld) {
		t.Errorf("Expected ErrInvalidWorld for zero cell size, got %v", err)
	}
}

func TestParseModel(t *testing.T) {
	src := []byte(`
boxes:
  - {min: [-50, -1, -50], max: [50, 0, 50]}
  - {min: [5, 0, 5], max: [10, 8, 10]}
`)
	w, err := ParseModel(src)
	if err != nil {
		t.Fatalf("ParseModel: %v", err)
	}
	if len(w.Collision.Colliders) != 3 {
		t.Fatalf("Expected 2 colliders plus floor, got %d", len(w.Collision.Colliders))
	}
	if w.Bounds.Min[0] != -50 || w.Bounds.Max[1] != 8 {
		t.Errorf("Expected bounds from box union, got %v", w.Bounds)
	}
	if w.IsMaze() {
		t.Error("Model world must not carry a grid")
	}
}

func TestParseModelErrors(t *testing.T) {
	cases := map[string]string{
		"empty":    `{}`,
		"inverted": `boxes: [{min: [1, 1, 1], max: [0, 0, 0]}]`,
		"flat":     `bounds: {min: [0, 0, 0], max: [0, 5, 0]}`,
		"scale":    `{scale: 0, boxes: [{min: [0, 0, 0], max: [1, 1, 1]}]}`,
	}
	for name, src := range cases {
		if _, err := ParseModel([]byte(src)); !errors.Is(err, ErrInvalidWorld) {
			t.Errorf("%s: expected ErrInvalidWorld, got %v", name, err)
		}
	}
	if _, err := ParseModel([]byte("boxes: [")); err == nil {
		t.Error("Expected yaml error")
	}
}

func TestLoadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	src := "floor: false\nbounds: {min: [-20, 0, -20], max: [20, 10, 20]}\nboxes: []\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if !w.Collision.Empty() {
		t.Error("Expected no colliders")
	}
	if _, err := LoadModel(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseModelScale(t *testing.T) {
	src := []byte(`
scale: 10
floor: false
boxes:
  - {min: [-5, 0, -5], max: [5, 3, 5]}
  - {min: [1, 0, 1], max: [2, 1, 2]}
`)
	w, err := ParseModel(src)
	if err != nil {
		t.Fatalf("ParseModel: %v", err)
	}
	if len(w.Collision.Colliders) != 2 {
		t.Fatalf("Expected no floor, got %d colliders", len(w.Collision.Colliders))
	}
	if w.Bounds.Min != (mgl64.Vec3{-50, 0, -50}) || w.Bounds.Max != (mgl64.Vec3{50, 30, 50}) {
		t.Errorf("Expected bounds scaled by 10, got %v", w.Bounds)
	}
	if b := w.Collision.Colliders[1]; b.Min != (mgl64.Vec3{10, 0, 10}) || b.Max != (mgl64.Vec3{20, 10, 20}) {
		t.Errorf("Expected box scaled by 10, got %v", b)
	}
}

func TestParseModelAutoFloor(t *testing.T) {
	src := []byte(`
bounds: {min: [-50, 0, -50], max: [50, 30, 50]}
boxes:
  - {min: [20, 0, 20], max: [30, 10, 30]}
`)
	w, err := ParseModel(src)
	if err != nil {
		t.Fatalf("ParseModel: %v", err)
	}
	if len(w.Collision.Colliders) != 2 {
		t.Fatalf("Expected box plus floor, got %d", len(w.Collision.Colliders))
	}
	floor := w.Collision.Colliders[1]
	if floor != AutoFloor(w.Bounds) {
		t.Errorf("Expected auto floor last, got %v", floor)
	}
	if floor.Max[1] != 0 || floor.Min[0] != -75 || floor.Max[2] != 75 {
		t.Errorf("Expected 150-wide slab topped at y=0, got %v", floor)
	}
	if w.Bounds.Min[0] != -50 {
		t.Errorf("Expected declared bounds untouched, got %v", w.Bounds)
	}

	if ground, ok := w.Collision.ProbeDown(-40, -40, 10, 200); !ok || ground != 0 {
		t.Errorf("Expected ground at 0 outside the box, got %f %v", ground, ok)
	}
}
