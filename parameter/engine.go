package parameter

import "time"

// Game Loop Timing
const (
	// TickRate is the nominal fixed simulation rate (ticks per second)
	TickRate = 60

	// TickInterval is the fixed simulation step
	TickInterval = time.Second / TickRate

	// FrameUpdateInterval is the render interval, one frame per tick
	FrameUpdateInterval = TickInterval

	// EventQueueSize bounds buffered terminal input events
	EventQueueSize = 256

	// VisualQueueSize bounds pending asset readiness updates
	VisualQueueSize = 64
)
