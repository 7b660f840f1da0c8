// Package host defines what front-ends drive; subpackages implement window, terminal and headless hosts
package host

import (
	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/input"
)

// Simulation is the frame-stepped game as seen by a host
type Simulation interface {
	// Step runs one frame on the caller's goroutine
	Step(f *input.Frame)

	// Snapshot returns the view published by the last Step
	Snapshot() engine.Snapshot
}
