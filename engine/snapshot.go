package engine

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Snapshot is an immutable view of one frame for overlays and the debug server
type Snapshot struct {
	Frame    int64       `json:"frame"`
	Elapsed  float64     `json:"elapsed"`
	Paused   bool        `json:"paused"`
	Position mgl64.Vec3  `json:"position"`
	Facing   [2]float64  `json:"facing"` // Ground-plane (x, z) of the player's forward
	Yaw      float64     `json:"yaw"`
	Pitch    float64     `json:"pitch"`
	Cursor   CursorState `json:"cursor"`
	Summary  string      `json:"summary"`

	RecentInput []string `json:"recent_input"`
	RecentGame  []string `json:"recent_game"`
}

// SnapshotStore guards the last published Snapshot
// Slices inside a stored Snapshot are never mutated after Store
type SnapshotStore struct {
	mu   sync.RWMutex
	snap Snapshot
}

func (s *SnapshotStore) Store(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

func (s *SnapshotStore) Load() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
