package pursuit

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/parameter"
	"github.com/lixenwraith/nextbot-maze/physics"
)

// Personality is the per-agent randomized tuning shared by all patterns
type Personality struct {
	Aggression        float64 // Shortens charge cooldowns
	WanderFreq        float64 // Oscillation rate multiplier
	WanderAmp         float64 // Oscillation amplitude
	SideBias          float64 // In [-1, 1]; the sign picks the first sidestep, >= 0 is left
	PreferredDistance float64 // Flank offset from the player
	Phase             float64 // Time offset (rad) desynchronizing identical patterns
	Speed             float64 // Movement speed multiplier
	Hesitation        float64 // In [0, 0.5]; slows patience waits and charger recovery
}

// NeutralPersonality yields unscaled pattern behavior
func NeutralPersonality() Personality {
	return Personality{
		Aggression:        1,
		WanderFreq:        1,
		WanderAmp:         1,
		SideBias:          1,
		PreferredDistance: parameter.PersonalityDistanceMin,
		Speed:             1,
	}
}

// RandomPersonality samples every trait from its configured range
func RandomPersonality(rng *rand.Rand) Personality {
	between := func(lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) }
	return Personality{
		Aggression:        between(parameter.PersonalityAggressionMin, parameter.PersonalityAggressionMax),
		WanderFreq:        between(parameter.PersonalityWanderFreqMin, parameter.PersonalityWanderFreqMax),
		WanderAmp:         between(parameter.PersonalityWanderAmpMin, parameter.PersonalityWanderAmpMax),
		SideBias:          between(-parameter.PersonalitySideBiasMax, parameter.PersonalitySideBiasMax),
		PreferredDistance: between(parameter.PersonalityDistanceMin, parameter.PersonalityDistanceMax),
		Phase:             rng.Float64() * 2 * math.Pi,
		Speed:             between(parameter.PersonalitySpeedMin, parameter.PersonalitySpeedMax),
		Hesitation:        between(0, parameter.PersonalityHesitationMax),
	}
}

// Agent is one pursuer, mutated in place by Engine.Update
type Agent struct {
	ID          int
	Pattern     Pattern
	Personality Personality

	Position  mgl64.Vec3
	VelocityY float64
	Yaw       float64 // Facing, always toward the player
	Footing   physics.Footing

	// Patrol route, consumed front to back then reversed
	Waypoints []mgl64.Vec3
	waypoint  int

	charge   chargeState
	stalk    stalkState
	predator predatorState
}

type chargeState struct {
	started  bool
	last     time.Duration
	cooldown time.Duration
	dir      mgl64.Vec3
}

type stalkState struct {
	cached   bool
	fallback mgl64.Vec3
}

type predatorState struct {
	seen       bool
	lastPlayer mgl64.Vec3
}

// NewAgent builds an agent at pos
func NewAgent(id int, pattern Pattern, personality Personality, pos mgl64.Vec3) *Agent {
	return &Agent{
		ID:          id,
		Pattern:     pattern,
		Personality: personality,
		Position:    pos,
		Footing:     physics.Airborne,
	}
}

// Charging reports whether a charger is inside its burst window at now
func (a *Agent) Charging(now time.Duration) bool {
	return a.Pattern == PatternCharger && a.charge.started && now-a.charge.last < parameter.ChargeBurst
}

// hesitant scales the slow phases of waiting patterns
func (a *Agent) hesitant() float64 {
	return 1 - min(max(a.Personality.Hesitation, 0), 1)
}
