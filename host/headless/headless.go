// Package headless drives the simulation from scripted frames without a display
package headless

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/host"
	"github.com/lixenwraith/gamefeel/input"
)

// Options configures a headless run
type Options struct {
	// SnapshotPath, when set, receives a PNG of the final top-down view
	SnapshotPath string
	Width        int
	Height       int
	Logger       *zap.Logger
}

// Run steps every frame in order and returns the final snapshot
// Cancellation is checked between frames
func Run(ctx context.Context, sim host.Simulation, frames []input.Frame, opts Options) (engine.Snapshot, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("headless")

	for i := range frames {
		if err := ctx.Err(); err != nil {
			return sim.Snapshot(), fmt.Errorf("headless run stopped at frame %d: %w", i, err)
		}
		sim.Step(&frames[i])
	}

	snap := sim.Snapshot()
	logger.Info("run complete",
		zap.Int("frames", len(frames)),
		zap.Float64("x", snap.Position[0]),
		zap.Float64("y", snap.Position[1]),
		zap.Float64("z", snap.Position[2]),
		zap.Float64("yaw", snap.Yaw),
		zap.Float64("pitch", snap.Pitch),
		zap.Bool("paused", snap.Paused),
		zap.Strings("recent_game", snap.RecentGame),
	)

	if opts.SnapshotPath != "" {
		if err := WritePNG(opts.SnapshotPath, snap, opts.Width, opts.Height); err != nil {
			return snap, err
		}
		logger.Info("snapshot written", zap.String("path", opts.SnapshotPath))
	}
	return snap, nil
}
