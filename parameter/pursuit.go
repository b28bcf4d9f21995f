package parameter

import "time"

// Nextbot Motion (per tick at TickRate)
const (
	// BotBaseSpeed is horizontal units travelled per tick at speed factor 1
	BotBaseSpeed = 0.3

	// BotSpeedMultiplier is the global difficulty knob applied to every bot
	BotSpeedMultiplier = 1.0

	// BotGravity is added to vertical velocity every tick
	BotGravity = -0.03

	// BotHeight is the resting offset of a bot's origin above the ground
	BotHeight = 2.0

	// BotDefaultHeight is used when the world has no geometry to probe
	BotDefaultHeight = 2.0

	// BotProbeLift raises the ground probe origin above the bot
	BotProbeLift = 10.0

	// BotProbeDepth is the max downward probe distance
	BotProbeDepth = 200.0

	// BotFallLimit is the depth below which a falling bot is respawned
	BotFallLimit = -50.0

	// BotRespawnHeight is where a lost bot is placed again
	BotRespawnHeight = 10.0

	// BotMinChaseDistance stops horizontal steering once this close (XZ)
	BotMinChaseDistance = 1.0

	// BotKillRadius is the 3D contact distance that eliminates the player
	BotKillRadius = 3.0
)

// Nextbot Separation
const (
	// BotRepulsionRadius is the XZ distance under which bots push apart
	BotRepulsionRadius = 10.0

	// BotRepulsionStrength scales the quadratic falloff
	BotRepulsionStrength = 0.8

	// BotRepulsionWeight scales accumulated repulsion before it joins the desired direction
	BotRepulsionWeight = 2.0

	// BotRepulsionDegenerate is the distance under which a random push is used
	BotRepulsionDegenerate = 0.1
)

// Nextbot Wall Avoidance (optional stricter variant)
const (
	// BotAvoidLookahead is the probe segment length ahead of a moving bot
	BotAvoidLookahead = 3.0
)

// Nextbot Spawn
const (
	// BotSpawnHeight drops bots from above, they settle on the first ground probe
	BotSpawnHeight = 30.0

	// BotSpawnRadiusMin/Max bound the scatter ring around the player spawn
	BotSpawnRadiusMin = 15.0
	BotSpawnRadiusMax = 35.0

	// BotSpawnAngleJitter is the max random offset (radians) added to staggered angles
	BotSpawnAngleJitter = 0.4

	// BotDefaultCount is the number of bots when none is configured
	BotDefaultCount = 5

	// BotPatrolWaypoints caps waypoints kept from a patrol route
	BotPatrolWaypoints = 24
)

// Pattern Tuning
const (
	// CircleRadius is the base orbit radius of circling bots, CircleRadiusWobble its sine amplitude
	CircleRadius       = 8.0
	CircleRadiusWobble = 3.0
	// CircleAngularSpeed is orbit speed (rad/s)
	CircleAngularSpeed = 1.2

	// SpiralAngularSpeed is spiral rotation speed (rad/s); radius is half the distance
	SpiralAngularSpeed = 1.5
	SpiralRadiusFactor = 0.5

	// ZigzagBaseFreq converts per-bot wander frequency to rad/s
	ZigzagBaseFreq = 3.0

	// FlankBlend pulls flanking bots partially toward the player
	FlankBlend = 0.3

	// StalkerWatchCos is the cosine of the half-angle of the player's watch cone
	StalkerWatchCos = 0.5
	// StalkerNear/Far switch the stalker between creeping and rushing
	StalkerNear      = 8.0
	StalkerFar       = 20.0
	StalkerCreep     = 0.3
	StalkerRush      = 1.8
	StalkerHoldRange = 0.5

	// Charger phases
	ChargeCooldownMin = 2 * time.Second
	ChargeCooldownMax = 5 * time.Second
	ChargeBurst       = 500 * time.Millisecond
	ChargeStartSpeed  = 3.0
	ChargeBurstSpeed  = 2.0
	ChargeRecover     = 0.2

	// Patience waits far away then rushes
	PatienceRange = 15.0
	PatienceWait  = 0.1
	PatienceRush  = 2.0

	// ArcherSwing is the max arc deviation (rad), ArcherFreq its rate (rad/s)
	ArcherSwing = 1.0471975511965976 // π/3
	ArcherFreq  = 2.0

	// PredatorLookahead is ticks of player velocity projected ahead
	PredatorLookahead = 20.0

	// Fearful backs off when close, rushes when far
	FearfulNear    = 8.0
	FearfulFar     = 20.0
	FearfulBackoff = 1.5
	FearfulRush    = 2.0

	// SwarmRadius is the ring swarmers try to occupy around the player
	SwarmRadius = 7.0

	// ErraticFreqA/B are the two beat frequencies of erratic motion (rad/s)
	ErraticFreqA = 10.0
	ErraticFreqB = 7.0
	ErraticGain  = 2.0

	// JitterAmount is the max random per-axis noise added to jitter bots
	JitterAmount = 1.0

	// PatrolEngageRange switches patrol bots to direct pursuit
	PatrolEngageRange = 25.0
	// PatrolReach is how close a bot must get to consume a waypoint
	PatrolReach = 2.0
)

// Personality Ranges, sampled uniformly per bot at spawn
const (
	PersonalityAggressionMin = 0.3
	PersonalityAggressionMax = 1.2

	PersonalityWanderFreqMin = 0.2
	PersonalityWanderFreqMax = 2.7

	PersonalityWanderAmpMin = 0.1
	PersonalityWanderAmpMax = 1.3

	PersonalityDistanceMin = 5.0
	PersonalityDistanceMax = 17.0

	PersonalitySpeedMin = 0.8
	PersonalitySpeedMax = 1.5

	// PersonalitySideBiasMax bounds side bias to [-max, max]
	PersonalitySideBiasMax = 1.0

	// PersonalityHesitationMax caps the fraction shaved off waiting and recovery speeds
	PersonalityHesitationMax = 0.5

	// SwarmSpread is the angular slot offset between consecutive swarmers (rad)
	SwarmSpread = 0.8
)
