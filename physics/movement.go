// Package physics holds the per-tick motion primitives shared by the player and agents.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// CapSpeed limits the horizontal (XZ) magnitude of v to maxSpeed, Y is untouched
// Returns true if velocity was clamped
func CapSpeed(v *mgl64.Vec3, maxSpeed float64) bool {
	h := mgl64.Vec2{v[0], v[2]}
	mag := h.Len()
	if mag <= maxSpeed || mag == 0 {
		return false
	}
	s := maxSpeed / mag
	v[0] *= s
	v[2] *= s
	return true
}

// Friction scales horizontal velocity by factor
func Friction(v *mgl64.Vec3, factor float64) {
	v[0] *= factor
	v[2] *= factor
}

// ApplyGravity integrates one tick of gravity, returns new (y, vy)
func ApplyGravity(y, vy, gravity float64) (float64, float64) {
	vy += gravity
	return y + vy, vy
}

// Accelerate adds dir*amount to the horizontal velocity
func Accelerate(v *mgl64.Vec3, dir mgl64.Vec3, amount float64) {
	v[0] += dir[0] * amount
	v[2] += dir[2] * amount
}
