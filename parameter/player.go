package parameter

// Player Movement (per tick at TickRate)
const (
	PlayerMaxHealth = 100.0

	// PlayerBaseSpeed is the walking speed cap
	PlayerBaseSpeed = 0.35

	// PlayerAcceleration is added along input direction each tick
	PlayerAcceleration = 0.15

	// PlayerFriction multiplies horizontal velocity each tick
	PlayerFriction = 0.9

	// PlayerGravity is added to vertical velocity each tick
	PlayerGravity = -0.03

	// PlayerJumpVelocity is the initial vertical velocity of a jump
	PlayerJumpVelocity = 0.8

	// PlayerEyeHeight is the camera offset above the floor
	PlayerEyeHeight = 2.0

	// PlayerTurnRate is yaw change per turn input tick (rad)
	PlayerTurnRate = 0.08

	// PlayerBoundsMargin keeps the player this far inside world bounds
	PlayerBoundsMargin = 1.0

	// PlayerDistanceScale converts travelled units to the HUD distance stat
	PlayerDistanceScale = 0.5
)

// Spawn Probe
const (
	// SpawnProbeHalfWidth is the X/Z half-extent of the spawn silhouette
	SpawnProbeHalfWidth = 0.5
	// SpawnProbeBelow/Above are the Y extents below and above the probe point
	SpawnProbeBelow = 1.8
	SpawnProbeAbove = 0.2

	// BodyHalfWidth/Below/Above size the movement box
	BodyHalfWidth = 0.4
	BodyBelow     = 0.8
	BodyAbove     = 1.8

	// SpawnRingFraction and SpawnRingInset derive the ring radius from the smaller extent
	SpawnRingFraction = 0.4
	SpawnRingInset    = 2.0
	SpawnRingPoints   = 8

	// SpawnGridDivisions sets the grid scan step as larger extent / divisions
	SpawnGridDivisions = 10

	// SpawnAboveClearance lifts the last-resort spawn above the world
	SpawnAboveClearance = 5.0
)
