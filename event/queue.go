package event

import (
	"github.com/lixenwraith/gamefeel/parameter"
)

// Queue holds the semantic events of the current frame
// Single producer per push site, many consumers per frame:
//   - Push: append during the frame
//   - Batch: every consumer reads the same slice within the frame
//   - Clear: scheduler drops the batch after the last system ran
//
// The batch never drops events; frames that grow past EventQueueSize are counted
// Not safe for concurrent use; the scheduler owns it on the frame goroutine
type Queue struct {
	events    []GameEvent
	frame     int64
	oversized uint64
}

func NewQueue() *Queue {
	return &Queue{
		events: make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Begin stamps subsequent pushes with the frame number
func (q *Queue) Begin(frame int64) {
	q.frame = frame
}

// Push appends an event stamped with the current frame
func (q *Queue) Push(ev GameEvent) {
	ev.Frame = q.frame
	if len(q.events) == parameter.EventQueueSize {
		q.oversized++
	}
	q.events = append(q.events, ev)
}

// Batch returns the events pushed this frame in FIFO order
// Callers must not retain or mutate the slice past the frame
func (q *Queue) Batch() []GameEvent {
	return q.events
}

// Clear empties the batch, keeping capacity
func (q *Queue) Clear() {
	q.events = q.events[:0]
}

// Len returns pending event count
func (q *Queue) Len() int {
	return len(q.events)
}

// Oversized returns how many frames grew past EventQueueSize events
func (q *Queue) Oversized() uint64 {
	return q.oversized
}
