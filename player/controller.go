// Package player moves the first-person player through the collision world.
package player

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/collision"
	"github.com/lixenwraith/nextbot-maze/parameter"
	"github.com/lixenwraith/nextbot-maze/physics"
	"github.com/lixenwraith/nextbot-maze/vmath"
)

// Intent is one tick of input, axes in [-1, 1]
type Intent struct {
	Forward float64 // +1 forward, -1 back
	Strafe  float64 // +1 left, -1 right
	Turn    float64 // +1 turn left, -1 turn right
	Jump    bool
}

// Config tunes movement
type Config struct {
	Speed          float64
	Acceleration   float64
	Friction       float64
	Gravity        float64
	JumpVelocity   float64
	JumpMultiplier float64
	EyeHeight      float64
	TurnRate       float64
	BoundsMargin   float64
	DistanceScale  float64
}

// DefaultConfig returns the parameter defaults
func DefaultConfig() Config {
	return Config{
		Speed:          parameter.PlayerBaseSpeed,
		Acceleration:   parameter.PlayerAcceleration,
		Friction:       parameter.PlayerFriction,
		Gravity:        parameter.PlayerGravity,
		JumpVelocity:   parameter.PlayerJumpVelocity,
		JumpMultiplier: 1,
		EyeHeight:      parameter.PlayerEyeHeight,
		TurnRate:       parameter.PlayerTurnRate,
		BoundsMargin:   parameter.PlayerBoundsMargin,
		DistanceScale:  parameter.PlayerDistanceScale,
	}
}

// Controller owns the player kinematics
type Controller struct {
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3 // Horizontal only, Y unused
	VelocityY float64
	Yaw       float64
	OnGround  bool
	Distance  float64

	cfg    Config
	world  *collision.World
	floorY float64
}

// New places the player at spawn facing yaw; floorY is the walkable floor top
func New(cfg Config, world *collision.World, floorY float64, spawn mgl64.Vec3, yaw float64) *Controller {
	return &Controller{
		Position: spawn,
		Yaw:      yaw,
		cfg:      cfg,
		world:    world,
		floorY:   floorY,
	}
}

// Facing is the unit ground-plane view direction
func (c *Controller) Facing() mgl64.Vec3 {
	return vmath.FromYaw(c.Yaw)
}

// Speed is the current horizontal speed
func (c *Controller) Speed() float64 {
	return mgl64.Vec2{c.Velocity[0], c.Velocity[2]}.Len()
}

// Blocked tests the movement box at p against colliders and world bounds
func (c *Controller) Blocked(p mgl64.Vec3) bool {
	return c.world.Overlaps(collision.BodyBox(p)) || c.world.OutOfBounds(p, c.cfg.BoundsMargin)
}

// Step advances one tick: turn, accelerate, per-axis collide, then vertical
func (c *Controller) Step(in Intent) {
	last := c.Position
	c.Yaw += in.Turn * c.cfg.TurnRate

	fwd := c.Facing()
	left := vmath.LeftOf(fwd)
	physics.Friction(&c.Velocity, c.cfg.Friction)
	physics.Accelerate(&c.Velocity, fwd, clamp1(in.Forward)*c.cfg.Acceleration)
	physics.Accelerate(&c.Velocity, left, clamp1(in.Strafe)*c.cfg.Acceleration)
	physics.CapSpeed(&c.Velocity, c.cfg.Speed)

	// Axes resolve independently so the player slides along walls
	for _, axis := range [2]int{0, 2} {
		next := c.Position
		next[axis] += c.Velocity[axis]
		if c.Blocked(next) {
			c.Velocity[axis] = 0
			continue
		}
		c.Position = next
	}

	if in.Jump && c.OnGround {
		c.VelocityY = c.cfg.JumpVelocity * c.cfg.JumpMultiplier
	}

	prevY := c.Position[1]
	c.Position[1], c.VelocityY = physics.ApplyGravity(c.Position[1], c.VelocityY, c.cfg.Gravity)
	rest := c.floorY + c.cfg.EyeHeight
	switch {
	case c.world.Overlaps(collision.BodyBox(c.Position)):
		c.Position[1] = prevY
		c.VelocityY = 0
		c.OnGround = true
	case c.Position[1] <= rest:
		c.Position[1] = rest
		c.VelocityY = 0
		c.OnGround = true
	default:
		c.OnGround = false
	}

	c.Distance += c.Position.Sub(last).Len() * c.cfg.DistanceScale
}

func clamp1(v float64) float64 {
	return max(-1, min(1, v))
}
