package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// Float64 is the float counterpart of atomic.Int64 for gauges such as frame time
type Float64 struct {
	bits atomic.Uint64
}

func (f *Float64) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *Float64) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// MetricMap hands out one stable pointer per key
// Systems cache the pointer at construction and update it without the map lock
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{
		items: make(map[string]*T),
	}
}

// Get returns the pointer for key, allocating a zero value the first time
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Range walks keys alphabetically so exports are stable
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, m.items[k])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
