package world

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/nextbot-maze/collision"
	"github.com/lixenwraith/nextbot-maze/parameter"
)

// modelFile is the on-disk collision description of an imported static model
//
//	scale: 10
//	floor: true
//	bounds: {min: [-5, 0, -5], max: [5, 3, 5]}
//	boxes:
//	  - {min: [1, 0, 1], max: [2, 1, 2]}
//
// Scale multiplies every coordinate before bounds are derived. Floor adds a
// ground slab under the play area and defaults to true.
type modelFile struct {
	Scale  *float64  `yaml:"scale"`
	Floor  *bool     `yaml:"floor"`
	Bounds *boxSpec  `yaml:"bounds"`
	Boxes  []boxSpec `yaml:"boxes"`
}

type boxSpec struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

func (b boxSpec) aabb(scale float64) collision.AABB {
	return collision.AABB{
		Min: mgl64.Vec3(b.Min).Mul(scale),
		Max: mgl64.Vec3(b.Max).Mul(scale),
	}
}

// AutoFloor is a thin slab whose top sits at the bottom of bounds, centered on
// the footprint and 1.5 times its larger side so bots cannot walk off the edge
func AutoFloor(bounds collision.AABB) collision.AABB {
	size := bounds.Size()
	half := max(size[0], size[2]) * parameter.ModelFloorSpan / 2
	c := bounds.Center()
	y := bounds.Min[1]
	return collision.AABB{
		Min: mgl64.Vec3{c[0] - half, y - parameter.ModelFloorThickness, c[2] - half},
		Max: mgl64.Vec3{c[0] + half, y, c[2] + half},
	}
}

// LoadModel reads a YAML collision model; bounds default to the union of its boxes
func LoadModel(path string) (*World, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseModel(raw)
}

// ParseModel decodes a YAML collision model
func ParseModel(raw []byte) (*World, error) {
	var mf modelFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	scale := 1.0
	if mf.Scale != nil {
		scale = *mf.Scale
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale %f", ErrInvalidWorld, scale)
	}

	colliders := make([]collision.AABB, 0, len(mf.Boxes)+1)
	for i, b := range mf.Boxes {
		box := b.aabb(scale)
		if box.Empty() {
			return nil, fmt.Errorf("%w: box %d has min > max", ErrInvalidWorld, i)
		}
		colliders = append(colliders, box)
	}

	var bounds collision.AABB
	switch {
	case mf.Bounds != nil:
		bounds = mf.Bounds.aabb(scale)
	case len(colliders) > 0:
		ext, _ := collision.NewWorld(colliders, nil).Extent()
		bounds = ext
	default:
		return nil, fmt.Errorf("%w: model has neither bounds nor boxes", ErrInvalidWorld)
	}

	if mf.Floor == nil || *mf.Floor {
		colliders = append(colliders, AutoFloor(bounds))
	}
	return FromModel(colliders, bounds)
}
