package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master gain (0.0-1.0)
	AudioMasterVolume = 0.8

	// AudioEffectsVolume is the default gain of the bot voice bus under master
	AudioEffectsVolume = 0.8

	// AudioMusicVolume is the default gain of the background music bus under master
	AudioMusicVolume = 0.7
)

// Proximity Audio Gate
const (
	// AudioInnerRadius is the XZ distance within which a bot plays at full volume
	AudioInnerRadius = 30.0

	// AudioMiddleRadius ends the reduced-volume band
	AudioMiddleRadius = 45.0

	// AudioOuterRadius is the audible limit; gain fades linearly to zero across the outer band
	AudioOuterRadius = 60.0

	// AudioMiddleGain is the fixed gain of the middle band
	AudioMiddleGain = 0.6

	// AudioTriggerCooldown is the minimum time between triggers of one bot
	AudioTriggerCooldown = 3 * time.Second

	// AudioCompletionQueue bounds finished-voice notifications between ticks
	AudioCompletionQueue = 64
)

// Placeholder Scream
const (
	ScreamDuration = 1200 * time.Millisecond
	ScreamAttack   = 20 * time.Millisecond
	ScreamRelease  = 400 * time.Millisecond
	ScreamBaseFreq = 220.0
	ScreamFreqStep = 55.0
)
