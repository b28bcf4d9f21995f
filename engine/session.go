// Package engine drives the fixed-step simulation: one Session per run, advanced by Step.
package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/lixenwraith/nextbot-maze/audio"
	"github.com/lixenwraith/nextbot-maze/config"
	"github.com/lixenwraith/nextbot-maze/maze"
	"github.com/lixenwraith/nextbot-maze/navigation"
	"github.com/lixenwraith/nextbot-maze/parameter"
	"github.com/lixenwraith/nextbot-maze/player"
	"github.com/lixenwraith/nextbot-maze/pursuit"
	"github.com/lixenwraith/nextbot-maze/spawn"
	"github.com/lixenwraith/nextbot-maze/world"
)

// Options are the collaborators of a session; only Config is required
type Options struct {
	Config config.Config

	// World replaces maze generation and the configured model file
	World *world.World

	// Audio plays bot sounds, nil is silent
	Audio audio.Player

	// Time drives the survival clock, nil uses the system clock
	Time TimeProvider

	Logger *log.Logger

	// OnDeath fires once, on the tick the player is caught
	OnDeath func(DeathReport)
}

// TickInput is what the driver feeds each tick
type TickInput struct {
	Intent player.Intent
	Paused bool
}

// AgentState is the per-tick render view of one bot
type AgentState struct {
	ID       int
	Pattern  pursuit.Pattern
	Position mgl64.Vec3
	Yaw      float64
	Gain     float64
	Visual   Visual
}

// TickOutput is the result of one Step
type TickOutput struct {
	Tick    uint64
	Stepped bool // False when paused or dead, nothing was mutated
	Agents  []AgentState

	// Eliminated is true only on the tick contact happened
	Eliminated bool
}

// Stats accumulates per-run counters for the HUD and batch reports
type Stats struct {
	Ticks    uint64
	SimTime  time.Duration // Ticks times the fixed step
	Distance float64
	Respawns int
	Loudest  float64 // Highest gain of the last tick
}

// DeathReport is passed to OnDeath
type DeathReport struct {
	Session  uuid.UUID
	Killer   int
	Pattern  pursuit.Pattern
	Survived time.Duration
	Stats    Stats
}

// Session is the whole mutable simulation state, owned by one driver
type Session struct {
	ID     uuid.UUID
	Seed   int64
	World  *world.World
	Player *player.Controller
	Agents []*pursuit.Agent
	Spawn  spawn.Placement
	Health float64
	Stats  Stats

	// Visuals holds one entry per agent, placeholder until the queue delivers
	Visuals []Visual
	Gains   []float64

	pursuit  *pursuit.Engine
	gate     *audio.Gate
	audio    audio.Player
	clock    *PausableClock
	queue    *VisualQueue
	interval time.Duration
	logger   *log.Logger
	onDeath  func(DeathReport)

	paused bool
	dead   bool
	died   bool // OnDeath already fired
	killer int
}

// NewSession builds the world, places the player and spawns the bots
// Only invalid configuration errors; generation and placement failures degrade
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	patterns, _ := cfg.PatternList()

	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", id.String())

	w, err := buildWorld(cfg, opts.World, seed, rng, logger)
	if err != nil {
		return nil, err
	}

	placement := spawn.ResolvePlayer(w.Collision, w.Bounds, w.FloorY)
	logger.Info("player placed", "mode", placement.Mode, "pos", placement.Position, "probes", placement.Probes)

	ctrl := player.New(playerConfig(cfg), w.Collision, w.FloorY, placement.Position, 0)

	nav := navigation.NewNavigator(w.Grid, w.Layout, parameter.NavFlowMinTicksBetweenCompute)
	eng := pursuit.NewEngine(pursuitConfig(cfg), w.Collision, nav, rng, logger)

	agents := pursuit.Spawn(placement.Position, pursuit.SpawnConfig{
		Count: cfg.Pursuit.Agents,
		Scatter: spawn.ScatterConfig{
			RadiusMin:   cfg.Spawn.RadiusMin,
			RadiusMax:   cfg.Spawn.RadiusMax,
			Height:      cfg.Spawn.Height,
			AngleJitter: parameter.BotSpawnAngleJitter,
		},
		Patterns: patterns,
		Route: func(pos mgl64.Vec3) []mgl64.Vec3 {
			return spawn.PatrolRoute(w.Grid, w.Layout, pos, rng, parameter.BotPatrolWaypoints)
		},
	}, rng)
	for _, a := range agents {
		logger.Debug("bot spawned", "id", a.ID, "pattern", a.Pattern, "pos", a.Position)
	}

	sound := opts.Audio
	if sound == nil || !cfg.Audio.Enabled {
		sound = audio.NopPlayer{}
	}
	gate := audio.NewGate(sound, audio.Bands{
		Inner:      cfg.Audio.InnerRadius,
		Middle:     cfg.Audio.MiddleRadius,
		Outer:      cfg.Audio.OuterRadius,
		MiddleGain: cfg.Audio.MiddleGain,
	}, cfg.Audio.Cooldown)

	visuals := make([]Visual, len(agents))
	for i := range visuals {
		visuals[i] = PlaceholderVisual
	}

	s := &Session{
		ID:       id,
		Seed:     seed,
		World:    w,
		Player:   ctrl,
		Agents:   agents,
		Spawn:    placement,
		Health:   parameter.PlayerMaxHealth,
		Visuals:  visuals,
		Gains:    make([]float64, len(agents)),
		pursuit:  eng,
		gate:     gate,
		audio:    sound,
		clock:    NewPausableClock(opts.Time),
		queue:    NewVisualQueue(parameter.VisualQueueSize),
		interval: cfg.TickInterval(),
		logger:   logger,
		onDeath:  opts.OnDeath,
		killer:   -1,
	}
	logger.Info("session ready", "seed", seed, "agents", len(agents), "maze", w.IsMaze(), "degraded", w.Degraded)
	return s, nil
}

func buildWorld(cfg config.Config, given *world.World, seed int64, rng *rand.Rand, logger *log.Logger) (*world.World, error) {
	if given != nil {
		return given, nil
	}
	fallback := false
	if cfg.Maze.Model != "" {
		w, err := world.LoadModel(cfg.Maze.Model)
		if err == nil {
			logger.Info("model loaded", "path", cfg.Maze.Model, "colliders", len(w.Collision.Colliders))
			return w, nil
		}
		// A broken model file is an asset failure, play a generated maze instead
		logger.Warn("model load failed, generating maze", "path", cfg.Maze.Model, "err", err)
		fallback = true
	}

	geo := maze.DefaultMaterializeConfig()
	geo.CellSize = cfg.Maze.CellSize
	geo.WallHeight = cfg.Maze.WallHeight
	geo.WallJitter = cfg.Maze.WallJitter
	geo.WallInset = cfg.Maze.WallInset
	geo.OuterWalls = cfg.Maze.OuterWalls

	w, err := world.FromMaze(world.MazeConfig{
		Width:    cfg.Maze.Width,
		Height:   cfg.Maze.Height,
		Seed:     seed,
		Geometry: geo,
	}, rng, logger)
	if err != nil {
		return nil, fmt.Errorf("engine: build maze: %w", err)
	}
	w.Degraded = w.Degraded || fallback
	return w, nil
}

func playerConfig(cfg config.Config) player.Config {
	pc := player.DefaultConfig()
	pc.Speed = cfg.Player.Speed
	pc.Acceleration = cfg.Player.Acceleration
	pc.Friction = cfg.Player.Friction
	pc.JumpVelocity = cfg.Player.JumpVelocity
	pc.JumpMultiplier = cfg.Player.JumpMultiplier
	pc.TurnRate = cfg.Player.TurnRate
	return pc
}

func pursuitConfig(cfg config.Config) pursuit.Config {
	pc := pursuit.DefaultConfig()
	pc.BaseSpeed = cfg.Pursuit.BaseSpeed
	pc.SpeedMultiplier = cfg.Pursuit.SpeedMultiplier
	pc.KillRadius = cfg.Pursuit.KillRadius
	pc.MinChase = cfg.Pursuit.MinChase
	pc.RepulsionRadius = cfg.Pursuit.RepulsionRadius
	pc.RepulsionStrength = cfg.Pursuit.RepulsionStrength
	pc.AvoidWalls = cfg.Pursuit.AvoidWalls
	return pc
}

// VisualQueue returns the queue asset loaders post to
func (s *Session) VisualQueue() *VisualQueue {
	return s.queue
}

// Clock returns the survival clock
func (s *Session) Clock() *PausableClock {
	return s.clock
}

// Paused reports the soft stop
func (s *Session) Paused() bool {
	return s.paused
}

// Dead reports the hard stop
func (s *Session) Dead() bool {
	return s.dead
}

// Killer is the agent ID that caught the player, -1 while alive
func (s *Session) Killer() int {
	return s.killer
}

// ActiveSounds counts playing bot voices
func (s *Session) ActiveSounds() int {
	return s.gate.Active()
}

// SetSpeedMultiplier changes bot speed mid-run
func (s *Session) SetSpeedMultiplier(m float64) {
	s.pursuit.SetSpeedMultiplier(m)
}

// Step advances one fixed tick
// Paused or dead sessions return the current view without mutating anything,
// and resuming continues from the same tick
func (s *Session) Step(in TickInput) TickOutput {
	s.setPaused(in.Paused)

	if s.paused || s.dead {
		return s.output(false, false)
	}

	s.queue.Drain(s.Visuals)

	s.Player.Step(in.Intent)
	s.Stats.Ticks++
	s.Stats.SimTime += s.interval

	res := s.pursuit.Update(s.Agents, pursuit.TickInput{
		Player: s.Player.Position,
		Facing: s.Player.Facing(),
		Now:    s.Stats.SimTime,
	})
	s.Stats.Respawns += res.Respawns
	s.Stats.Distance = s.Player.Distance

	positions := make([]mgl64.Vec3, len(s.Agents))
	for i, a := range s.Agents {
		positions[i] = a.Position
	}
	s.Gains = s.gate.Update(s.Stats.SimTime, s.Player.Position, positions)
	s.Stats.Loudest = 0
	for _, g := range s.Gains {
		s.Stats.Loudest = max(s.Stats.Loudest, g)
	}

	if res.Eliminated {
		s.eliminate(res.Killer)
	}
	return s.output(true, res.Eliminated)
}

func (s *Session) setPaused(paused bool) {
	if paused == s.paused || s.dead {
		return
	}
	s.paused = paused
	if paused {
		s.clock.Pause()
	} else {
		s.clock.Resume()
	}
	if p, ok := s.audio.(interface{ SetPaused(bool) }); ok {
		p.SetPaused(paused)
	}
	s.logger.Info("pause", "paused", paused, "tick", s.Stats.Ticks)
}

func (s *Session) eliminate(killer int) {
	s.dead = true
	s.killer = killer
	s.Health = 0
	s.clock.Pause()
	s.gate.StopAll()

	report := DeathReport{
		Session:  s.ID,
		Killer:   killer,
		Survived: s.clock.Elapsed(),
		Stats:    s.Stats,
	}
	for _, a := range s.Agents {
		if a.ID == killer {
			report.Pattern = a.Pattern
		}
	}
	s.logger.Info("player eliminated", "killer", killer, "pattern", report.Pattern, "ticks", s.Stats.Ticks, "distance", s.Stats.Distance)

	if !s.died && s.onDeath != nil {
		s.died = true
		s.onDeath(report)
	}
}

func (s *Session) output(stepped, eliminated bool) TickOutput {
	out := TickOutput{
		Tick:       s.Stats.Ticks,
		Stepped:    stepped,
		Eliminated: eliminated,
		Agents:     make([]AgentState, len(s.Agents)),
	}
	for i, a := range s.Agents {
		out.Agents[i] = AgentState{
			ID:       a.ID,
			Pattern:  a.Pattern,
			Position: a.Position,
			Yaw:      a.Yaw,
			Gain:     s.Gains[i],
			Visual:   s.Visuals[i],
		}
	}
	return out
}
