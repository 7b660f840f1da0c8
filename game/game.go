// Package game assembles the world, scene and frame systems
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/gamefeel/config"
	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/input"
	"github.com/lixenwraith/gamefeel/scene"
	"github.com/lixenwraith/gamefeel/system"
)

// Options carries host-provided services
type Options struct {
	Config config.Config
	Logger *zap.Logger

	// Cursor receives cursor mode changes; nil tracks state only
	Cursor engine.CursorController

	// Audio plays event cues; nil disables cues
	Audio engine.CuePlayer

	// Hooks observe every completed frame batch
	Hooks []engine.FrameHook
}

// Game is the assembled simulation
type Game struct {
	World     *engine.World
	Scheduler *engine.Scheduler
	Bindings  input.Bindings

	logger *zap.Logger
}

// New builds the world, spawns and resolves the scene, and registers systems
// Scene precondition failures abort construction
func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := engine.NewWorld(logger)
	refs, err := scene.Setup(w, cfg.Player)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	if opts.Audio != nil {
		w.Resources.Audio = &engine.AudioResource{Player: opts.Audio, Enabled: cfg.Audio.Enabled}
	}

	bindings := cfg.KeyBindings()
	s := engine.NewScheduler(w)
	s.Add(system.NewControlsSystem(w, bindings, cfg.GamepadTuning()))
	s.Add(system.NewPauseSystem(w))
	s.Add(system.NewCursorToggleSystem(w, bindings))
	s.Add(system.NewEventCollectorSystem(w))
	s.Add(system.NewPlayerMovementSystem(w), engine.NotPaused)
	s.Add(system.NewPlayerLookSystem(w), engine.NotPaused)
	s.Add(system.NewAudioCueSystem(w))
	s.Add(system.NewCursorApplySystem(w, opts.Cursor))

	for _, h := range opts.Hooks {
		s.OnFrame(h)
	}

	// Publish the spawn state so hosts can draw before the first frame
	w.Publish()

	logger.Info("game assembled",
		zap.Uint64("player", uint64(refs.Player)),
		zap.Uint64("camera", uint64(refs.Camera)),
		zap.Int("systems", len(s.Systems())),
	)

	return &Game{
		World:     w,
		Scheduler: s,
		Bindings:  bindings,
		logger:    logger,
	}, nil
}

// Step runs one frame
func (g *Game) Step(f *input.Frame) {
	g.Scheduler.Tick(f)
}

// Snapshot returns the last published frame view; safe from any goroutine
func (g *Game) Snapshot() engine.Snapshot {
	return g.World.Snapshot()
}

// Paused reports the current game state
func (g *Game) Paused() bool {
	return g.World.Resources.Game.Paused
}
