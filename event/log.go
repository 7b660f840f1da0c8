package event

// Log is a bounded recency log: append at end, evict from front
// Purely diagnostic, read by the overlay
type Log[T any] struct {
	items    []T
	capacity int
}

// NewLog creates a log retaining at most capacity entries
func NewLog[T any](capacity int) *Log[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Log[T]{
		items:    make([]T, 0, capacity+1),
		capacity: capacity,
	}
}

// Push appends v and drops the oldest entries beyond capacity
func (l *Log[T]) Push(v T) {
	l.items = append(l.items, v)
	if over := len(l.items) - l.capacity; over > 0 {
		n := copy(l.items, l.items[over:])
		clear(l.items[n:])
		l.items = l.items[:n]
	}
}

// Snapshot returns a copy of the entries, oldest first
func (l *Log[T]) Snapshot() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Log[T]) Len() int { return len(l.items) }

func (l *Log[T]) Cap() int { return l.capacity }

// Clear removes all entries
func (l *Log[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}
