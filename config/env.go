package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnv
const (
	EnvAudioEnabled = "NEXTBOT_AUDIO_ENABLED"
	EnvMasterVolume = "NEXTBOT_MASTER_VOLUME" // 0-100
	EnvBotSpeed     = "NEXTBOT_BOT_SPEED"     // Speed multiplier
	EnvAgents       = "NEXTBOT_AGENTS"
	EnvSeed         = "NEXTBOT_SEED"
	EnvPatterns     = "NEXTBOT_PATTERNS" // Comma-separated
)

// ApplyEnv overrides cfg from NEXTBOT_* variables
// Malformed values are ignored and the previous setting is kept
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if speed := os.Getenv(EnvBotSpeed); speed != "" {
		if val, err := strconv.ParseFloat(speed, 64); err == nil && val >= 0 {
			cfg.Pursuit.SpeedMultiplier = val
		}
	}

	if agents := os.Getenv(EnvAgents); agents != "" {
		if val, err := strconv.Atoi(agents); err == nil && val >= 0 {
			cfg.Pursuit.Agents = val
		}
	}

	if seed := os.Getenv(EnvSeed); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Maze.Seed = val
		}
	}

	if patterns := os.Getenv(EnvPatterns); patterns != "" {
		cfg.Pursuit.Patterns = strings.Split(patterns, ",")
	}
}
