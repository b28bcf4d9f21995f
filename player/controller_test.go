package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/collision"
)

func openWorld() *collision.World {
	bounds := collision.AABB{Min: mgl64.Vec3{-50, -1, -50}, Max: mgl64.Vec3{50, 20, 50}}
	floor := collision.AABB{Min: mgl64.Vec3{-50, -1, -50}, Max: mgl64.Vec3{50, 0, 50}}
	return collision.NewWorld([]collision.AABB{floor}, &bounds)
}

func TestForwardMovement(t *testing.T) {
	c := New(DefaultConfig(), openWorld(), 0, mgl64.Vec3{0, 2, 0}, 0)
	for i := 0; i < 60; i++ {
		c.Step(Intent{Forward: 1})
	}
	if c.Position.Z() <= 5 || math.Abs(c.Position.X()) > 1e-9 {
		t.Errorf("Expected travel along +Z, got %v", c.Position)
	}
	if c.Speed() > DefaultConfig().Speed+1e-9 {
		t.Errorf("Speed %f exceeds cap", c.Speed())
	}
	if !c.OnGround || c.Position.Y() != 2 {
		t.Errorf("Expected grounded at eye height, got y=%f", c.Position.Y())
	}
	if c.Distance <= 0 {
		t.Error("Expected distance to accumulate")
	}
}

func TestStrafeLeftIsPositiveX(t *testing.T) {
	c := New(DefaultConfig(), openWorld(), 0, mgl64.Vec3{0, 2, 0}, 0)
	c.Step(Intent{Strafe: 1})
	if c.Position.X() <= 0 {
		t.Errorf("Expected strafe left toward +X when facing +Z, got %v", c.Position)
	}
}

func TestFrictionStops(t *testing.T) {
	c := New(DefaultConfig(), openWorld(), 0, mgl64.Vec3{0, 2, 0}, 0)
	c.Step(Intent{Forward: 1})
	for i := 0; i < 300; i++ {
		c.Step(Intent{})
	}
	if c.Speed() > 1e-6 {
		t.Errorf("Expected friction to stop the player, speed %f", c.Speed())
	}
}

func TestWallBlocksAndSlides(t *testing.T) {
	w := openWorld()
	w.Colliders = append(w.Colliders, collision.AABB{Min: mgl64.Vec3{-60, 0, 3}, Max: mgl64.Vec3{60, 10, 4}})
	c := New(DefaultConfig(), w, 0, mgl64.Vec3{0, 2, 0}, math.Pi/4)

	for i := 0; i < 120; i++ {
		c.Step(Intent{Forward: 1})
	}
	if c.Position.Z()+0.4 > 3 {
		t.Errorf("Expected wall to stop Z before 2.6, got %f", c.Position.Z())
	}
	if c.Position.X() <= 5 {
		t.Errorf("Expected slide along X, got %f", c.Position.X())
	}
}

func TestBoundsStop(t *testing.T) {
	c := New(DefaultConfig(), openWorld(), 0, mgl64.Vec3{0, 2, 45}, 0)
	for i := 0; i < 200; i++ {
		c.Step(Intent{Forward: 1})
	}
	if c.Position.Z() > 49 {
		t.Errorf("Expected bounds margin to hold, got z=%f", c.Position.Z())
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	c := New(DefaultConfig(), openWorld(), 0, mgl64.Vec3{0, 2, 0}, 0)
	c.Step(Intent{})
	if !c.OnGround {
		t.Fatal("Expected grounded")
	}
	c.Step(Intent{Jump: true})
	if c.OnGround || c.Position.Y() <= 2 {
		t.Fatalf("Expected airborne after jump, y=%f", c.Position.Y())
	}
	vy := c.VelocityY
	c.Step(Intent{Jump: true})
	if c.VelocityY >= vy {
		t.Error("Expected no double jump")
	}

	for i := 0; i < 200 && !c.OnGround; i++ {
		c.Step(Intent{})
	}
	if !c.OnGround || c.Position.Y() != 2 {
		t.Errorf("Expected landing at eye height, got y=%f", c.Position.Y())
	}
}

func TestLandOnWallTop(t *testing.T) {
	w := openWorld()
	w.Colliders = append(w.Colliders, collision.AABB{Min: mgl64.Vec3{-5, 0, -5}, Max: mgl64.Vec3{5, 10, 5}})
	c := New(DefaultConfig(), w, 0, mgl64.Vec3{0, 15, 0}, 0)
	for i := 0; i < 300; i++ {
		c.Step(Intent{})
	}
	if !c.OnGround || c.Position.Y() < 10.8 {
		t.Errorf("Expected to rest on the wall top, got y=%f ground=%v", c.Position.Y(), c.OnGround)
	}
}

func TestTurn(t *testing.T) {
	c := New(DefaultConfig(), openWorld(), 0, mgl64.Vec3{0, 2, 0}, 0)
	c.Step(Intent{Turn: 1})
	if math.Abs(c.Yaw-DefaultConfig().TurnRate) > 1e-12 {
		t.Errorf("Expected yaw %f, got %f", DefaultConfig().TurnRate, c.Yaw)
	}
	if math.Abs(c.Facing().Len()-1) > 1e-9 {
		t.Error("Expected unit facing")
	}
}
