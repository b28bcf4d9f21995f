// Package config loads game settings from YAML and NEXTBOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/nextbot-maze/parameter"
	"github.com/lixenwraith/nextbot-maze/pursuit"
)

// ErrInvalidConfig is returned by Validate and wraps every rejected field
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full set of per-run settings
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Pursuit PursuitConfig `yaml:"pursuit"`
	Audio   AudioConfig   `yaml:"audio"`
	Player  PlayerConfig  `yaml:"player"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Loop    LoopConfig    `yaml:"loop"`
}

// MazeConfig selects and sizes the world; Model replaces the maze when set
// and loads, otherwise the maze is generated
type MazeConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Seed       int64   `yaml:"seed"` // 0 picks a time-based seed
	CellSize   float64 `yaml:"cell_size"`
	WallHeight float64 `yaml:"wall_height"`
	WallJitter float64 `yaml:"wall_jitter"`
	WallInset  float64 `yaml:"wall_inset"`
	OuterWalls bool    `yaml:"outer_walls"`
	Model      string  `yaml:"model"`
}

// PursuitConfig tunes the bots
type PursuitConfig struct {
	Agents            int      `yaml:"agents"`
	Patterns          []string `yaml:"patterns"` // Empty cycles through every pattern
	BaseSpeed         float64  `yaml:"base_speed"`
	SpeedMultiplier   float64  `yaml:"speed_multiplier"`
	KillRadius        float64  `yaml:"kill_radius"`
	MinChase          float64  `yaml:"min_chase"`
	RepulsionRadius   float64  `yaml:"repulsion_radius"`
	RepulsionStrength float64  `yaml:"repulsion_strength"`
	AvoidWalls        bool     `yaml:"avoid_walls"`
}

// AudioConfig tunes proximity sound
type AudioConfig struct {
	Enabled       bool          `yaml:"enabled"`
	MasterVolume  float64       `yaml:"master_volume"`  // 0.0-1.0
	EffectsVolume float64       `yaml:"effects_volume"` // Bot voices bus, 0.0-1.0
	MusicVolume   float64       `yaml:"music_volume"`   // Background music bus, 0.0-1.0
	Sounds        string        `yaml:"sounds"`         // Directory of <index>.wav files, empty synthesizes
	Music         string        `yaml:"music"`          // Looped background wav, empty is silence
	InnerRadius   float64       `yaml:"inner_radius"`
	MiddleRadius  float64       `yaml:"middle_radius"`
	OuterRadius   float64       `yaml:"outer_radius"`
	MiddleGain    float64       `yaml:"middle_gain"`
	Cooldown      time.Duration `yaml:"cooldown"`
}

// PlayerConfig tunes player movement
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`
	Acceleration   float64 `yaml:"acceleration"`
	Friction       float64 `yaml:"friction"`
	JumpVelocity   float64 `yaml:"jump_velocity"`
	JumpMultiplier float64 `yaml:"jump_multiplier"`
	TurnRate       float64 `yaml:"turn_rate"`
}

// SpawnConfig sizes the bot scatter ring
type SpawnConfig struct {
	RadiusMin float64 `yaml:"radius_min"`
	RadiusMax float64 `yaml:"radius_max"`
	Height    float64 `yaml:"height"`
}

// LoopConfig sets the fixed simulation rate
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// Default returns the parameter defaults
func Default() Config {
	return Config{
		Maze: MazeConfig{
			Width:      parameter.MazeSize,
			Height:     parameter.MazeSize,
			CellSize:   parameter.MazeCellSize,
			WallHeight: parameter.MazeWallHeight,
			WallJitter: parameter.MazeWallJitter,
			WallInset:  parameter.MazeWallInset,
			OuterWalls: true,
		},
		Pursuit: PursuitConfig{
			Agents:            parameter.BotDefaultCount,
			BaseSpeed:         parameter.BotBaseSpeed,
			SpeedMultiplier:   parameter.BotSpeedMultiplier,
			KillRadius:        parameter.BotKillRadius,
			MinChase:          parameter.BotMinChaseDistance,
			RepulsionRadius:   parameter.BotRepulsionRadius,
			RepulsionStrength: parameter.BotRepulsionStrength,
		},
		Audio: AudioConfig{
			Enabled:       true,
			MasterVolume:  parameter.AudioMasterVolume,
			EffectsVolume: parameter.AudioEffectsVolume,
			MusicVolume:   parameter.AudioMusicVolume,
			InnerRadius:   parameter.AudioInnerRadius,
			MiddleRadius:  parameter.AudioMiddleRadius,
			OuterRadius:   parameter.AudioOuterRadius,
			MiddleGain:    parameter.AudioMiddleGain,
			Cooldown:      parameter.AudioTriggerCooldown,
		},
		Player: PlayerConfig{
			Speed:          parameter.PlayerBaseSpeed,
			Acceleration:   parameter.PlayerAcceleration,
			Friction:       parameter.PlayerFriction,
			JumpVelocity:   parameter.PlayerJumpVelocity,
			JumpMultiplier: 1,
			TurnRate:       parameter.PlayerTurnRate,
		},
		Spawn: SpawnConfig{
			RadiusMin: parameter.BotSpawnRadiusMin,
			RadiusMax: parameter.BotSpawnRadiusMax,
			Height:    parameter.BotSpawnHeight,
		},
		Loop: LoopConfig{TickRate: parameter.TickRate},
	}
}

// Load reads a YAML file over the defaults
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML over the defaults, absent keys keep their default
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// TickInterval converts the tick rate to the fixed step
func (c Config) TickInterval() time.Duration {
	if c.Loop.TickRate <= 0 {
		return parameter.TickInterval
	}
	return time.Second / time.Duration(c.Loop.TickRate)
}

// Validate rejects values the simulation cannot be built from
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, field string, v any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s = %v", ErrInvalidConfig, field, v))
		}
	}

	// The maze backs a model that fails to load, so it is checked either way
	check(c.Maze.Width > 0, "maze.width", c.Maze.Width)
	check(c.Maze.Height > 0, "maze.height", c.Maze.Height)
	check(c.Maze.CellSize > 0, "maze.cell_size", c.Maze.CellSize)
	check(c.Maze.WallHeight > 0, "maze.wall_height", c.Maze.WallHeight)
	check(c.Maze.WallInset >= 0 && c.Maze.WallInset < c.Maze.CellSize, "maze.wall_inset", c.Maze.WallInset)

	check(c.Pursuit.Agents >= 0, "pursuit.agents", c.Pursuit.Agents)
	check(c.Pursuit.BaseSpeed > 0, "pursuit.base_speed", c.Pursuit.BaseSpeed)
	check(c.Pursuit.SpeedMultiplier >= 0, "pursuit.speed_multiplier", c.Pursuit.SpeedMultiplier)
	check(c.Pursuit.KillRadius > 0, "pursuit.kill_radius", c.Pursuit.KillRadius)
	check(c.Pursuit.MinChase >= 0, "pursuit.min_chase", c.Pursuit.MinChase)
	check(c.Pursuit.RepulsionRadius > 0, "pursuit.repulsion_radius", c.Pursuit.RepulsionRadius)
	check(c.Pursuit.RepulsionStrength >= 0, "pursuit.repulsion_strength", c.Pursuit.RepulsionStrength)
	if _, err := c.PatternList(); err != nil {
		errs = append(errs, fmt.Errorf("%w: pursuit.patterns: %v", ErrInvalidConfig, err))
	}

	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "audio.master_volume", c.Audio.MasterVolume)
	check(c.Audio.EffectsVolume >= 0 && c.Audio.EffectsVolume <= 1, "audio.effects_volume", c.Audio.EffectsVolume)
	check(c.Audio.MusicVolume >= 0 && c.Audio.MusicVolume <= 1, "audio.music_volume", c.Audio.MusicVolume)
	check(c.Audio.InnerRadius >= 0, "audio.inner_radius", c.Audio.InnerRadius)
	check(c.Audio.MiddleRadius >= c.Audio.InnerRadius, "audio.middle_radius", c.Audio.MiddleRadius)
	check(c.Audio.OuterRadius >= c.Audio.MiddleRadius, "audio.outer_radius", c.Audio.OuterRadius)
	check(c.Audio.MiddleGain >= 0 && c.Audio.MiddleGain <= 1, "audio.middle_gain", c.Audio.MiddleGain)
	check(c.Audio.Cooldown >= 0, "audio.cooldown", c.Audio.Cooldown)

	check(c.Player.Speed > 0, "player.speed", c.Player.Speed)
	check(c.Player.Friction >= 0 && c.Player.Friction <= 1, "player.friction", c.Player.Friction)
	check(c.Player.JumpMultiplier >= 0, "player.jump_multiplier", c.Player.JumpMultiplier)

	check(c.Spawn.RadiusMin >= 0 && c.Spawn.RadiusMax >= c.Spawn.RadiusMin, "spawn.radius", [2]float64{c.Spawn.RadiusMin, c.Spawn.RadiusMax})
	check(c.Loop.TickRate > 0, "loop.tick_rate", c.Loop.TickRate)

	return errors.Join(errs...)
}

// PatternList resolves the configured pattern names, nil means every pattern
func (c Config) PatternList() ([]pursuit.Pattern, error) {
	return pursuit.ParsePatterns(strings.Join(c.Pursuit.Patterns, ","))
}
