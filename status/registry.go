package status

import (
	"fmt"
	"sync/atomic"
)

// Well-known metric keys written by the scheduler and systems
const (
	KeyFrames      = "frames"
	KeyPaused      = "paused"
	KeyFrameMillis = "frame_ms"
	KeyEventsTotal = "events.total"
	KeyEventsBig   = "events.oversized"
)

// EventKey returns the per-type counter key, e.g. "events.Jump"
func EventKey(name string) string {
	return "events." + name
}

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write atomics directly
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Float64]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Float64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Summary renders the one-line overlay footer
func (r *Registry) Summary() string {
	paused := ""
	if r.Bools.Get(KeyPaused).Load() {
		paused = " PAUSED"
	}
	return fmt.Sprintf("frame %d  %.1fms  events %d%s",
		r.Ints.Get(KeyFrames).Load(),
		r.Floats.Get(KeyFrameMillis).Load(),
		r.Ints.Get(KeyEventsTotal).Load(),
		paused,
	)
}
