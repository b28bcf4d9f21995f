// Package spawn chooses non-obstructed starting positions for the player and agents.
package spawn

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/collision"
	"github.com/lixenwraith/nextbot-maze/parameter"
)

// Mode records which fallback produced a placement
type Mode uint8

const (
	ModeOrigin Mode = iota
	ModeRing
	ModeGrid
	ModeAboveWorld
)

func (m Mode) String() string {
	switch m {
	case ModeOrigin:
		return "origin"
	case ModeRing:
		return "ring"
	case ModeGrid:
		return "grid"
	default:
		return "above-world"
	}
}

// Placement is a resolved player start
type Placement struct {
	Position mgl64.Vec3
	Mode     Mode
	Probes   int // Candidates tested, including the accepted one
}

// Blocked reports whether the player silhouette at p overlaps world geometry
func Blocked(w *collision.World, p mgl64.Vec3) bool {
	return w.Overlaps(collision.PlayerProbe(p))
}

// ResolvePlayer walks origin, ring, grid scan and finally the above-world
// fallback, returning the first unobstructed candidate
// Candidates are probed at floorY + eye height
func ResolvePlayer(w *collision.World, bounds collision.AABB, floorY float64) Placement {
	y := floorY + parameter.PlayerEyeHeight
	probes := 0
	try := func(x, z float64) (mgl64.Vec3, bool) {
		probes++
		p := mgl64.Vec3{x, y, z}
		return p, !Blocked(w, p)
	}

	if p, ok := try(0, 0); ok {
		return Placement{Position: p, Mode: ModeOrigin, Probes: probes}
	}

	size := bounds.Size()
	radius := math.Min(math.Abs(size[0]), math.Abs(size[2]))*parameter.SpawnRingFraction - parameter.SpawnRingInset
	for i := 0; i < parameter.SpawnRingPoints; i++ {
		angle := float64(i) * 2 * math.Pi / parameter.SpawnRingPoints
		if p, ok := try(math.Cos(angle)*radius, math.Sin(angle)*radius); ok {
			return Placement{Position: p, Mode: ModeRing, Probes: probes}
		}
	}

	step := math.Max(size[0], size[2]) / parameter.SpawnGridDivisions
	if step > 0 {
		for x := bounds.Min[0] + step; x < bounds.Max[0]; x += step {
			for z := bounds.Min[2] + step; z < bounds.Max[2]; z += step {
				if p, ok := try(x, z); ok {
					return Placement{Position: p, Mode: ModeGrid, Probes: probes}
				}
			}
		}
	}

	return Placement{
		Position: mgl64.Vec3{0, bounds.Max[1] + parameter.SpawnAboveClearance, 0},
		Mode:     ModeAboveWorld,
		Probes:   probes,
	}
}
