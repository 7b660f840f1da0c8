package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityControls       = 10 // Input translation, first producer of the frame batch
	PriorityPause          = 20 // Before movement/look so a pause takes effect the same frame
	PriorityCursorToggle   = 25
	PriorityEventCollector = 30
	PriorityMovement       = 40
	PriorityLook           = 50
	PriorityAudioCue       = 60
	PriorityCursorApply    = 90 // Single writer of host cursor state, runs last
)
