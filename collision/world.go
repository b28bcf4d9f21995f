package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World is the static set of colliders plus optional overall bounds
// Read-only once built, safe for concurrent readers
type World struct {
	Colliders []AABB
	Bounds    *AABB
}

// NewWorld wraps colliders, bounds may be nil
func NewWorld(colliders []AABB, bounds *AABB) *World {
	return &World{Colliders: colliders, Bounds: bounds}
}

// Empty reports a world with no obstacles
func (w *World) Empty() bool {
	return w == nil || len(w.Colliders) == 0
}

// Overlaps reports whether box intersects any collider, stops at first hit
func (w *World) Overlaps(box AABB) bool {
	if w.Empty() {
		return false
	}
	for i := range w.Colliders {
		if box.Intersects(w.Colliders[i]) {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether p lies within margin of, or beyond, the bounds footprint
// A world without bounds is unbounded
func (w *World) OutOfBounds(p mgl64.Vec3, margin float64) bool {
	if w == nil || w.Bounds == nil {
		return false
	}
	b := w.Bounds
	return p[0] < b.Min[0]+margin || p[0] > b.Max[0]-margin ||
		p[2] < b.Min[2]+margin || p[2] > b.Max[2]-margin
}

// Extent returns Bounds if set, else the union of all colliders
// ok is false when neither exists
func (w *World) Extent() (AABB, bool) {
	if w == nil {
		return AABB{}, false
	}
	if w.Bounds != nil {
		return *w.Bounds, true
	}
	if len(w.Colliders) == 0 {
		return AABB{}, false
	}
	ext := w.Colliders[0]
	for _, c := range w.Colliders[1:] {
		ext = ext.Union(c)
	}
	return ext, true
}

// ProbeDown casts a ray straight down from (x, fromY, z) and returns the Y of the
// nearest top face it meets within maxDist
func (w *World) ProbeDown(x, z, fromY, maxDist float64) (float64, bool) {
	if w.Empty() {
		return 0, false
	}
	best := math.Inf(-1)
	found := false
	lowest := fromY - maxDist
	for i := range w.Colliders {
		c := &w.Colliders[i]
		if !c.ContainsXZ(x, z) {
			continue
		}
		// Origin inside a box: the ray starts in solid, its top is not below us
		top := c.Max[1]
		if top > fromY || top < lowest {
			continue
		}
		if top > best {
			best = top
			found = true
		}
	}
	return best, found
}

// Raycast tests the segment from→to against all colliders
// Returns the smallest segment parameter t in [0,1] of the first hit
func (w *World) Raycast(from, to mgl64.Vec3) (float64, bool) {
	if w.Empty() {
		return 0, false
	}
	best := math.Inf(1)
	for i := range w.Colliders {
		if t, ok := SegmentHit(from, to, w.Colliders[i]); ok && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// SegmentHit returns the segment parameter where from→to enters box (slab test)
// A segment starting inside the box hits at t = 0
func SegmentHit(from, to mgl64.Vec3, box AABB) (float64, bool) {
	d := to.Sub(from)
	tMin, tMax := 0.0, 1.0

	for axis := 0; axis < 3; axis++ {
		if math.Abs(d[axis]) < 1e-12 {
			if from[axis] < box.Min[axis] || from[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / d[axis]
		t1 := (box.Min[axis] - from[axis]) * inv
		t2 := (box.Max[axis] - from[axis]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
