package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis
var Up = mgl64.Vec3{0, 1, 0}

// epsilon below which a vector is treated as zero length
const epsilon = 1e-9

// SafeNormalize returns unit vector, zero vector for zero input
// mgl64.Normalize divides by length and yields NaN on zero vectors
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Flatten projects v onto the ground plane (Y = 0)
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// HorizontalDistance returns XZ distance between a and b
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	dx := a[0] - b[0]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dz*dz)
}

// Distance returns true 3D distance between a and b
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// LeftOf returns the ground-plane unit vector to the left of forward
// Right-handed Y-up: left = up × forward
func LeftOf(forward mgl64.Vec3) mgl64.Vec3 {
	return SafeNormalize(Up.Cross(Flatten(forward)))
}

// RotateY rotates v about the Y axis by angle radians (counter-clockwise seen from above +Y)
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	sin, cos := math.Sincos(angle)
	return mgl64.Vec3{
		v[0]*cos + v[2]*sin,
		v[1],
		-v[0]*sin + v[2]*cos,
	}
}

// Yaw returns heading angle of v on the ground plane, 0 = +Z
func Yaw(v mgl64.Vec3) float64 {
	return math.Atan2(v[0], v[2])
}

// FromYaw returns the unit ground-plane heading for yaw, inverse of Yaw
func FromYaw(yaw float64) mgl64.Vec3 {
	sin, cos := math.Sincos(yaw)
	return mgl64.Vec3{sin, 0, cos}
}

// Lerp linearly interpolates from a to b by t
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// PolarXZ returns center offset by radius along angle on the ground plane
// angle 0 = +X, π/2 = +Z
func PolarXZ(center mgl64.Vec3, angle, radius float64) mgl64.Vec3 {
	sin, cos := math.Sincos(angle)
	return mgl64.Vec3{center[0] + cos*radius, center[1], center[2] + sin*radius}
}

// IsZero reports whether v is effectively zero length
func IsZero(v mgl64.Vec3) bool {
	return v.Len() < epsilon
}
