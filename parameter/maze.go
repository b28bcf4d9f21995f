package parameter

// Maze Generation
const (
	// MazeSize is the default grid dimension in cells (both axes)
	MazeSize = 40

	// MazeMinSize is the smallest grid that still has an interior start cell
	MazeMinSize = 3

	// MazeCellSize is the world-unit edge of one grid cell
	MazeCellSize = 10.0

	// MazeWallHeight is the nominal wall height before jitter
	MazeWallHeight = 20.0

	// MazeWallJitter is the max random height added per wall (cosmetic)
	MazeWallJitter = 2.0

	// MazeWallInset shrinks each wall box on X/Z so adjacent walls read as blocks
	MazeWallInset = 0.5

	// MazeFloorThickness keeps fast movers from tunnelling through the floor
	MazeFloorThickness = 5.0

	// MazeOuterMargin is extra span of the sealing walls beyond the grid extent
	MazeOuterMargin = 20.0

	// MazeOuterHeightBonus raises sealing walls above maze walls
	MazeOuterHeightBonus = 10.0

	// MazeOuterThickness is the depth of each sealing wall
	MazeOuterThickness = 10.0
)

// Imported Models
const (
	// ModelFloorSpan is the auto floor edge relative to the larger model side
	ModelFloorSpan = 1.5

	// ModelFloorThickness matches the maze floor so probes and bodies behave alike
	ModelFloorThickness = MazeFloorThickness
)
