package physics

import (
	"github.com/lixenwraith/nextbot-maze/collision"
)

// Footing is the outcome of one vertical step
type Footing uint8

const (
	Airborne  Footing = iota // No ground hit, still falling
	Grounded                 // Snapped onto a surface
	Respawned                // Fell past the limit and was reset
	Hovering                 // No geometry in the world, held at the default height
)

func (f Footing) String() string {
	switch f {
	case Airborne:
		return "airborne"
	case Grounded:
		return "grounded"
	case Respawned:
		return "respawned"
	default:
		return "hovering"
	}
}

// VerticalConfig tunes gravity, ground probing and fall recovery
type VerticalConfig struct {
	Gravity       float64
	Height        float64 // Resting offset of the body origin above ground
	ProbeLift     float64 // Probe starts this far above the body
	ProbeDepth    float64 // Max probe length
	FallLimit     float64
	RespawnHeight float64
	DefaultHeight float64
}

// Settle applies gravity then resolves the body against the ground under (x, z)
// A hit only snaps when the body has sunk to or below resting height; a miss
// leaves the body falling until it passes FallLimit, then it respawns
func Settle(w *collision.World, x, y, z, vy float64, cfg VerticalConfig) (float64, float64, Footing) {
	if w.Empty() {
		return cfg.DefaultHeight, 0, Hovering
	}

	y, vy = ApplyGravity(y, vy, cfg.Gravity)

	ground, ok := w.ProbeDown(x, z, y+cfg.ProbeLift, cfg.ProbeDepth)
	switch {
	case ok:
		if rest := ground + cfg.Height; y <= rest {
			return rest, 0, Grounded
		}
		return y, vy, Airborne
	case y < cfg.FallLimit:
		return cfg.RespawnHeight, 0, Respawned
	default:
		return y, vy, Airborne
	}
}
