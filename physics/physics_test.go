package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/collision"
)

func TestCapSpeed(t *testing.T) {
	v := mgl64.Vec3{3, 5, 4}
	if !CapSpeed(&v, 1) {
		t.Fatal("Expected clamp")
	}
	if h := math.Hypot(v[0], v[2]); math.Abs(h-1) > 1e-9 {
		t.Errorf("Expected horizontal speed 1, got %f", h)
	}
	if v[1] != 5 {
		t.Errorf("Expected Y untouched, got %f", v[1])
	}
	slow := mgl64.Vec3{0.1, 0, 0}
	if CapSpeed(&slow, 1) {
		t.Error("Expected no clamp under the cap")
	}
}

func TestFrictionAndAccelerate(t *testing.T) {
	v := mgl64.Vec3{1, 1, -2}
	Friction(&v, 0.5)
	if v != (mgl64.Vec3{0.5, 1, -1}) {
		t.Errorf("Unexpected friction result %v", v)
	}
	Accelerate(&v, mgl64.Vec3{0, 9, 1}, 0.5)
	if v != (mgl64.Vec3{0.5, 1, -0.5}) {
		t.Errorf("Unexpected accelerate result %v", v)
	}
}

func testVertical() VerticalConfig {
	return VerticalConfig{
		Gravity:       -0.03,
		Height:        2,
		ProbeLift:     10,
		ProbeDepth:    200,
		FallLimit:     -50,
		RespawnHeight: 10,
		DefaultHeight: 2,
	}
}

func TestSettle(t *testing.T) {
	floor := collision.AABB{Min: mgl64.Vec3{-10, -1, -10}, Max: mgl64.Vec3{10, 0, 10}}
	w := collision.NewWorld([]collision.AABB{floor}, nil)
	cfg := testVertical()

	y, vy, f := Settle(w, 0, 2, 0, 0, cfg)
	if f != Grounded || y != 2 || vy != 0 {
		t.Errorf("Expected grounded at 2, got %s y=%f vy=%f", f, y, vy)
	}

	y, vy, f = Settle(w, 0, 20, 0, 0, cfg)
	if f != Airborne || vy != -0.03 || math.Abs(y-19.97) > 1e-9 {
		t.Errorf("Expected airborne fall, got %s y=%f vy=%f", f, y, vy)
	}

	// Off the floor: keep falling, then respawn
	y, _, f = Settle(w, 50, 5, 50, 0, cfg)
	if f != Airborne || y >= 5 {
		t.Errorf("Expected airborne off the edge, got %s y=%f", f, y)
	}
	y, vy, f = Settle(w, 50, -60, 50, -1, cfg)
	if f != Respawned || y != 10 || vy != 0 {
		t.Errorf("Expected respawn at 10, got %s y=%f vy=%f", f, y, vy)
	}
}

func TestSettleEmptyWorld(t *testing.T) {
	y, vy, f := Settle(collision.NewWorld(nil, nil), 0, 30, 0, -3, testVertical())
	if f != Hovering || y != 2 || vy != 0 {
		t.Errorf("Expected default height, got %s y=%f vy=%f", f, y, vy)
	}
}
