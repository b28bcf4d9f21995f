package collision

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/parameter"
)

// AABB is an axis-aligned box in world space
type AABB struct {
	Min, Max mgl64.Vec3
}

// NewAABB creates a box from its center and full size
func NewAABB(center, size mgl64.Vec3) AABB {
	half := size.Mul(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the box midpoint
func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the full extent on each axis
func (b AABB) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Intersects reports overlap, touching faces count as overlap
func (b AABB) Intersects(o AABB) bool {
	return b.Min[0] <= o.Max[0] && b.Max[0] >= o.Min[0] &&
		b.Min[1] <= o.Max[1] && b.Max[1] >= o.Min[1] &&
		b.Min[2] <= o.Max[2] && b.Max[2] >= o.Min[2]
}

// Contains reports whether p lies inside or on the box
func (b AABB) Contains(p mgl64.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// ContainsXZ reports whether p's ground projection lies inside the box footprint
func (b AABB) ContainsXZ(x, z float64) bool {
	return x >= b.Min[0] && x <= b.Max[0] && z >= b.Min[2] && z <= b.Max[2]
}

// Union returns the smallest box enclosing both
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{min(b.Min[0], o.Min[0]), min(b.Min[1], o.Min[1]), min(b.Min[2], o.Min[2])},
		Max: mgl64.Vec3{max(b.Max[0], o.Max[0]), max(b.Max[1], o.Max[1]), max(b.Max[2], o.Max[2])},
	}
}

// Translate returns the box moved by d
func (b AABB) Translate(d mgl64.Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Empty reports a box with no volume on some axis inverted
func (b AABB) Empty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// PlayerProbe approximates the player silhouette around a candidate spawn point
func PlayerProbe(p mgl64.Vec3) AABB {
	return AABB{
		Min: mgl64.Vec3{p[0] - parameter.SpawnProbeHalfWidth, p[1] - parameter.SpawnProbeBelow, p[2] - parameter.SpawnProbeHalfWidth},
		Max: mgl64.Vec3{p[0] + parameter.SpawnProbeHalfWidth, p[1] + parameter.SpawnProbeAbove, p[2] + parameter.SpawnProbeHalfWidth},
	}
}

// BodyBox is the movement box used while walking
func BodyBox(p mgl64.Vec3) AABB {
	return AABB{
		Min: mgl64.Vec3{p[0] - parameter.BodyHalfWidth, p[1] - parameter.BodyBelow, p[2] - parameter.BodyHalfWidth},
		Max: mgl64.Vec3{p[0] + parameter.BodyHalfWidth, p[1] + parameter.BodyAbove, p[2] + parameter.BodyHalfWidth},
	}
}
