package status

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyFrames)
	a.Add(3)
	assert.Same(t, a, r.Ints.Get(KeyFrames))
	assert.Equal(t, int64(3), r.Ints.Get(KeyFrames).Load())
}

func TestRangeSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(EventKey("Move"))
	r.Ints.Get(EventKey("Fire"))
	r.Ints.Get(KeyFrames)

	var keys []string
	r.Ints.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	assert.Equal(t, []string{"events.Fire", "events.Move", "frames"}, keys)
	assert.Equal(t, 3, r.TotalCount())
}

func TestSummary(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyFrames).Store(12)
	r.Floats.Get(KeyFrameMillis).Store(16.5)
	r.Ints.Get(KeyEventsTotal).Store(30)
	assert.Equal(t, "frame 12  16.5ms  events 30", r.Summary())

	r.Bools.Get(KeyPaused).Store(true)
	assert.Contains(t, r.Summary(), "PAUSED")
}
