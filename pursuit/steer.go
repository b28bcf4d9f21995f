package pursuit

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/navigation"
	"github.com/lixenwraith/nextbot-maze/parameter"
	"github.com/lixenwraith/nextbot-maze/vmath"
)

// Steer is a pattern's output: a ground-plane direction and a speed factor (1 = normal)
type Steer struct {
	Dir   mgl64.Vec3
	Speed float64
}

// situation is the read-only input shared by every pattern for one agent
type situation struct {
	player mgl64.Vec3
	facing mgl64.Vec3 // Flattened player view direction
	toward mgl64.Vec3 // Unit XZ direction agent -> player
	dist   float64    // XZ distance agent -> player
	now    time.Duration
	index  int // Position of the agent in the update list
	rng    *rand.Rand
	nav    *navigation.Navigator
}

func (s *situation) seconds() float64 {
	return s.now.Seconds()
}

// side is the left-hand perpendicular of the direction to the player
func (s *situation) side() mgl64.Vec3 {
	return vmath.LeftOf(s.toward)
}

type steerFunc func(a *Agent, s *situation) Steer

var strategies = [PatternCount]steerFunc{
	PatternDirect:     steerDirect,
	PatternFlankLeft:  steerFlank(1),
	PatternFlankRight: steerFlank(-1),
	PatternZigzag:     steerZigzag,
	PatternErratic:    steerErratic,
	PatternCircling:   steerCircling,
	PatternSpiral:     steerSpiral,
	PatternStalker:    steerStalker,
	PatternCharger:    steerCharger,
	PatternPatience:   steerPatience,
	PatternArcher:     steerArcher,
	PatternPredator:   steerPredator,
	PatternFearful:    steerFearful,
	PatternSwarmer:    steerSwarmer,
	PatternJitter:     steerJitter,
	PatternPatrol:     steerPatrol,
	PatternTracker:    steerTracker,
}

// desired dispatches to the agent's pattern, unknown patterns pursue directly
func desired(a *Agent, s *situation) Steer {
	if a.Pattern >= 0 && a.Pattern < PatternCount {
		return strategies[a.Pattern](a, s)
	}
	return steerDirect(a, s)
}

// aim returns the unit XZ direction from the agent to p, falling back to the player direction
func aim(a *Agent, s *situation, p mgl64.Vec3) mgl64.Vec3 {
	d := vmath.SafeNormalize(vmath.Flatten(p.Sub(a.Position)))
	if vmath.IsZero(d) {
		return s.toward
	}
	return d
}

func steerDirect(_ *Agent, s *situation) Steer {
	return Steer{Dir: s.toward, Speed: 1}
}

// steerFlank aims at a point beside the player relative to the player's facing,
// blended partially toward the player so the bot still closes in
func steerFlank(sign float64) steerFunc {
	return func(a *Agent, s *situation) Steer {
		left := vmath.LeftOf(s.facing)
		if vmath.IsZero(left) {
			left = s.side()
		}
		target := s.player.Add(left.Mul(sign * a.Personality.PreferredDistance))
		dir := vmath.Lerp(aim(a, s, target), s.toward, parameter.FlankBlend)
		return Steer{Dir: vmath.SafeNormalize(dir), Speed: 1}
	}
}

func steerZigzag(a *Agent, s *situation) Steer {
	p := a.Personality
	w := math.Sin(s.seconds()*parameter.ZigzagBaseFreq*p.WanderFreq+p.Phase) * p.WanderAmp
	return Steer{Dir: s.toward.Add(s.side().Mul(w)), Speed: 1}
}

func steerErratic(a *Agent, s *situation) Steer {
	t := s.seconds()
	w := math.Sin(t*parameter.ErraticFreqA+a.Personality.Phase) * math.Cos(t*parameter.ErraticFreqB) * parameter.ErraticGain
	return Steer{Dir: s.toward.Add(s.side().Mul(w)), Speed: 1}
}

func steerCircling(a *Agent, s *situation) Steer {
	t := s.seconds()
	radius := parameter.CircleRadius + math.Sin(t)*parameter.CircleRadiusWobble
	angle := t*parameter.CircleAngularSpeed + a.Personality.Phase
	return Steer{Dir: aim(a, s, vmath.PolarXZ(s.player, angle, radius)), Speed: 1}
}

func steerSpiral(a *Agent, s *situation) Steer {
	radius := s.dist * parameter.SpiralRadiusFactor
	angle := s.seconds()*parameter.SpiralAngularSpeed + a.Personality.Phase
	return Steer{Dir: aim(a, s, vmath.PolarXZ(s.player, angle, radius)), Speed: 1}
}

// steerStalker advances only while outside the player's view cone; when
// watched it returns to and holds the last unwatched position
func steerStalker(a *Agent, s *situation) Steer {
	fromPlayer := s.toward.Mul(-1)
	watched := !vmath.IsZero(s.facing) && s.facing.Dot(fromPlayer) > parameter.StalkerWatchCos

	if watched {
		if !a.stalk.cached {
			a.stalk.fallback = a.Position
			a.stalk.cached = true
		}
		if vmath.HorizontalDistance(a.Position, a.stalk.fallback) <= parameter.StalkerHoldRange {
			return Steer{Dir: s.toward, Speed: 0}
		}
		return Steer{Dir: aim(a, s, a.stalk.fallback), Speed: 1}
	}

	a.stalk.fallback = a.Position
	a.stalk.cached = true
	switch {
	case s.dist < parameter.StalkerNear:
		return Steer{Dir: s.toward, Speed: parameter.StalkerCreep}
	case s.dist > parameter.StalkerFar:
		return Steer{Dir: s.toward, Speed: parameter.StalkerRush}
	default:
		return Steer{Dir: s.toward, Speed: 1}
	}
}

// steerCharger cycles: short locked-direction burst, then slow recovery until the cooldown expires
func steerCharger(a *Agent, s *situation) Steer {
	c := &a.charge
	if !c.started {
		c.started = true
		c.last = s.now
		c.cooldown = chargeCooldown(a, s.rng)
	}

	since := s.now - c.last
	switch {
	case since > c.cooldown:
		c.last = s.now
		c.cooldown = chargeCooldown(a, s.rng)
		c.dir = s.toward
		return Steer{Dir: c.dir, Speed: parameter.ChargeStartSpeed}
	case since < parameter.ChargeBurst && !vmath.IsZero(c.dir):
		return Steer{Dir: c.dir, Speed: parameter.ChargeBurstSpeed}
	default:
		return Steer{Dir: s.toward, Speed: parameter.ChargeRecover * a.hesitant()}
	}
}

func chargeCooldown(a *Agent, rng *rand.Rand) time.Duration {
	span := parameter.ChargeCooldownMax - parameter.ChargeCooldownMin
	d := parameter.ChargeCooldownMin + time.Duration(rng.Float64()*float64(span))
	if agg := a.Personality.Aggression; agg > 0 {
		d = time.Duration(float64(d) / agg)
	}
	return d
}

func steerPatience(a *Agent, s *situation) Steer {
	if s.dist > parameter.PatienceRange {
		return Steer{Dir: s.toward, Speed: parameter.PatienceWait * a.hesitant()}
	}
	return Steer{Dir: s.toward, Speed: parameter.PatienceRush}
}

func steerArcher(a *Agent, s *situation) Steer {
	swing := math.Sin(s.seconds()*parameter.ArcherFreq+a.Personality.Phase) * parameter.ArcherSwing
	return Steer{Dir: vmath.RotateY(s.toward, swing), Speed: 1}
}

// steerPredator leads the player by its per-tick displacement
func steerPredator(a *Agent, s *situation) Steer {
	var vel mgl64.Vec3
	if a.predator.seen {
		vel = vmath.Flatten(s.player.Sub(a.predator.lastPlayer))
	}
	a.predator.lastPlayer = s.player
	a.predator.seen = true
	return Steer{Dir: aim(a, s, s.player.Add(vel.Mul(parameter.PredatorLookahead))), Speed: 1}
}

func steerFearful(_ *Agent, s *situation) Steer {
	switch {
	case s.dist < parameter.FearfulNear:
		return Steer{Dir: s.toward.Mul(-1), Speed: parameter.FearfulBackoff}
	case s.dist > parameter.FearfulFar:
		return Steer{Dir: s.toward, Speed: parameter.FearfulRush}
	default:
		return Steer{Dir: s.toward, Speed: 1}
	}
}

// steerSwarmer claims a ring slot around the player offset by update order
func steerSwarmer(a *Agent, s *situation) Steer {
	fromPlayer := s.toward.Mul(-1)
	angle := math.Atan2(fromPlayer[2], fromPlayer[0]) + float64(s.index)*parameter.SwarmSpread
	return Steer{Dir: aim(a, s, vmath.PolarXZ(s.player, angle, parameter.SwarmRadius)), Speed: 1}
}

func steerJitter(_ *Agent, s *situation) Steer {
	noise := mgl64.Vec3{
		(s.rng.Float64()*2 - 1) * parameter.JitterAmount,
		0,
		(s.rng.Float64()*2 - 1) * parameter.JitterAmount,
	}
	return Steer{Dir: s.toward.Add(noise), Speed: 1}
}

// steerPatrol walks the waypoint list until the player is in range
// An empty list pursues directly
func steerPatrol(a *Agent, s *situation) Steer {
	if len(a.Waypoints) == 0 || s.dist <= parameter.PatrolEngageRange {
		return steerDirect(a, s)
	}
	if a.waypoint >= len(a.Waypoints) {
		a.waypoint = 0
	}
	if vmath.HorizontalDistance(a.Position, a.Waypoints[a.waypoint]) <= parameter.PatrolReach {
		a.waypoint++
		if a.waypoint == len(a.Waypoints) {
			reverse(a.Waypoints)
			a.waypoint = 0
		}
	}
	return Steer{Dir: aim(a, s, a.Waypoints[a.waypoint]), Speed: 1}
}

func reverse(p []mgl64.Vec3) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// steerTracker follows the maze flow field, direct when no field covers the agent
func steerTracker(a *Agent, s *situation) Steer {
	// The field only matters while walls are in the way
	if !s.nav.Clear(a.Position, s.player) {
		if dir, ok := s.nav.Direction(a.Position); ok {
			return Steer{Dir: dir, Speed: 1}
		}
	}
	return steerDirect(a, s)
}
