package pursuit

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Falloff is the repulsion magnitude at XZ distance d, zero at and beyond radius
func Falloff(d, radius, strength float64) float64 {
	if d >= radius || radius <= 0 {
		return 0
	}
	g := 1 - d/radius
	return g * g * strength
}

// Separation sums the push away from every other position within radius
// Positions closer than degenerate get a random unit push of full strength
func Separation(self int, positions []mgl64.Vec3, radius, strength, degenerate float64, rng *rand.Rand) mgl64.Vec3 {
	var push mgl64.Vec3
	me := positions[self]
	for i, other := range positions {
		if i == self {
			continue
		}
		dx := me[0] - other[0]
		dz := me[2] - other[2]
		d := math.Hypot(dx, dz)
		if d >= radius {
			continue
		}
		if d > degenerate {
			f := Falloff(d, radius, strength)
			push[0] += dx / d * f
			push[2] += dz / d * f
			continue
		}
		sin, cos := math.Sincos(rng.Float64() * 2 * math.Pi)
		push[0] += cos * strength
		push[2] += sin * strength
	}
	return push
}
