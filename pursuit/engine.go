package pursuit

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/nextbot-maze/collision"
	"github.com/lixenwraith/nextbot-maze/navigation"
	"github.com/lixenwraith/nextbot-maze/parameter"
	"github.com/lixenwraith/nextbot-maze/physics"
	"github.com/lixenwraith/nextbot-maze/vmath"
)

// Config holds the tunable constants of the per-tick update
type Config struct {
	BaseSpeed       float64
	SpeedMultiplier float64
	MinChase        float64
	KillRadius      float64

	RepulsionRadius     float64
	RepulsionStrength   float64
	RepulsionWeight     float64
	RepulsionDegenerate float64

	// AvoidWalls enables the raycast sidestep; off, agents pass through geometry
	AvoidWalls     bool
	AvoidLookahead float64

	Vertical physics.VerticalConfig
}

// DefaultConfig returns the parameter defaults
func DefaultConfig() Config {
	return Config{
		BaseSpeed:           parameter.BotBaseSpeed,
		SpeedMultiplier:     parameter.BotSpeedMultiplier,
		MinChase:            parameter.BotMinChaseDistance,
		KillRadius:          parameter.BotKillRadius,
		RepulsionRadius:     parameter.BotRepulsionRadius,
		RepulsionStrength:   parameter.BotRepulsionStrength,
		RepulsionWeight:     parameter.BotRepulsionWeight,
		RepulsionDegenerate: parameter.BotRepulsionDegenerate,
		AvoidLookahead:      parameter.BotAvoidLookahead,
		Vertical: physics.VerticalConfig{
			Gravity:       parameter.BotGravity,
			Height:        parameter.BotHeight,
			ProbeLift:     parameter.BotProbeLift,
			ProbeDepth:    parameter.BotProbeDepth,
			FallLimit:     parameter.BotFallLimit,
			RespawnHeight: parameter.BotRespawnHeight,
			DefaultHeight: parameter.BotDefaultHeight,
		},
	}
}

// TickInput is the per-tick view of the player
type TickInput struct {
	Player mgl64.Vec3
	Facing mgl64.Vec3
	Now    time.Duration // Elapsed simulation time, excludes pauses
}

// TickResult reports what the tick changed beyond agent state
type TickResult struct {
	Eliminated bool
	Killer     int // Agent ID of the first contact, -1 if none
	Respawns   int
}

// Engine advances agents one tick at a time
// The collision world is only read
type Engine struct {
	cfg    Config
	world  *collision.World
	nav    *navigation.Navigator
	rng    *rand.Rand
	logger *log.Logger

	snapshot []mgl64.Vec3
}

// NewEngine wires the update to a world; nav may be nil
func NewEngine(cfg Config, world *collision.World, nav *navigation.Navigator, rng *rand.Rand, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{cfg: cfg, world: world, nav: nav, rng: rng, logger: logger}
}

// Config returns the engine tuning
func (e *Engine) Config() Config {
	return e.cfg
}

// SetSpeedMultiplier changes the global difficulty knob
func (e *Engine) SetSpeedMultiplier(m float64) {
	e.cfg.SpeedMultiplier = m
}

// Update runs one tick over agents in order: vertical, steering, separation,
// integration, avoidance, facing, contact
func (e *Engine) Update(agents []*Agent, in TickInput) TickResult {
	res := TickResult{Killer: -1}
	if len(agents) == 0 {
		return res
	}

	e.nav.Update(in.Player)

	// Separation reads tick-start positions so update order does not bias the push
	e.snapshot = e.snapshot[:0]
	for _, a := range agents {
		e.snapshot = append(e.snapshot, a.Position)
	}

	facing := vmath.SafeNormalize(vmath.Flatten(in.Facing))
	for i, a := range agents {
		if e.settle(a) == physics.Respawned {
			res.Respawns++
			e.logger.Debug("bot respawned", "id", a.ID, "pattern", a.Pattern)
		}

		e.move(i, a, in, facing)

		a.Yaw = vmath.Yaw(vmath.Flatten(in.Player.Sub(a.Position)))

		if !res.Eliminated && vmath.Distance(a.Position, in.Player) < e.cfg.KillRadius {
			res.Eliminated = true
			res.Killer = a.ID
		}
	}
	return res
}

func (e *Engine) settle(a *Agent) physics.Footing {
	p := a.Position
	y, vy, f := physics.Settle(e.world, p[0], p[1], p[2], a.VelocityY, e.cfg.Vertical)
	a.Position[1] = y
	a.VelocityY = vy
	a.Footing = f
	return f
}

func (e *Engine) move(i int, a *Agent, in TickInput, facing mgl64.Vec3) {
	dist := vmath.HorizontalDistance(a.Position, in.Player)
	if dist <= e.cfg.MinChase {
		return
	}

	s := situation{
		player: in.Player,
		facing: facing,
		toward: vmath.SafeNormalize(vmath.Flatten(in.Player.Sub(a.Position))),
		dist:   dist,
		now:    in.Now,
		index:  i,
		rng:    e.rng,
		nav:    e.nav,
	}
	st := desired(a, &s)
	if st.Speed <= 0 {
		return
	}

	push := Separation(i, e.snapshot, e.cfg.RepulsionRadius, e.cfg.RepulsionStrength, e.cfg.RepulsionDegenerate, e.rng)
	dir := vmath.SafeNormalize(vmath.SafeNormalize(st.Dir).Add(push.Mul(e.cfg.RepulsionWeight)))
	if vmath.IsZero(dir) {
		return
	}
	if e.cfg.AvoidWalls {
		dir = e.avoid(a, dir)
	}

	step := e.cfg.BaseSpeed * e.cfg.SpeedMultiplier * a.Personality.Speed * st.Speed
	a.Position = a.Position.Add(dir.Mul(step))
}

// avoid probes ahead and sidesteps, bias side first, then the other, else retreats
func (e *Engine) avoid(a *Agent, dir mgl64.Vec3) mgl64.Vec3 {
	if !e.blocked(a.Position, dir) {
		return dir
	}
	side := vmath.LeftOf(dir)
	if a.Personality.SideBias < 0 {
		side = side.Mul(-1)
	}
	for _, alt := range [2]mgl64.Vec3{side, side.Mul(-1)} {
		if !e.blocked(a.Position, alt) {
			return alt
		}
	}
	return dir.Mul(-1)
}

func (e *Engine) blocked(from, dir mgl64.Vec3) bool {
	_, hit := e.world.Raycast(from, from.Add(dir.Mul(e.cfg.AvoidLookahead)))
	return hit
}
