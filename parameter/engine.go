package parameter

import "time"

// Frame Loop
const (
	// FrameUpdateInterval is the target frame interval for hosts that drive their own ticker (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps elapsed time fed to systems after a stall (debugger, window drag)
	MaxFrameDelta = 100 * time.Millisecond

	// TerminalEventBuffer is the capacity of the terminal poller channel
	TerminalEventBuffer = 256
)

// Event Queue
const (
	// EventQueueSize is the expected per-frame event count; larger frames grow the batch and are counted
	EventQueueSize = 256

	// RecentLogCapacity is the fixed size of the recent input and recent game event logs
	RecentLogCapacity = 5
)
