package game

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gamefeel/config"
	"github.com/lixenwraith/gamefeel/event"
	"github.com/lixenwraith/gamefeel/input"
)

type cueRecorder struct {
	cues []event.EventType
}

func (c *cueRecorder) PlayCue(t event.EventType) { c.cues = append(c.cues, t) }

func TestNewPublishesSpawn(t *testing.T) {
	g, err := New(Options{Config: config.Default()})
	require.NoError(t, err)

	snap := g.Snapshot()
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, snap.Position)
	assert.Len(t, g.Scheduler.Systems(), 8)
	assert.False(t, g.Paused())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Player.WalkSpeed = -1
	_, err := New(Options{Config: cfg})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestCustomTuningAndBindings(t *testing.T) {
	cfg := config.Default()
	cfg.Player.WalkSpeed = 2
	cfg.Bindings.Forward = "ArrowUp"
	g, err := New(Options{Config: cfg})
	require.NoError(t, err)

	var held input.KeySet
	held.Press(input.ArrowUp)
	g.Step(&input.Frame{Delta: 500 * time.Millisecond, Held: held})
	assert.InDelta(t, -1, g.Snapshot().Position[2], 1e-9)
}

func TestAudioFollowsConfig(t *testing.T) {
	rec := &cueRecorder{}
	cfg := config.Default()
	cfg.Audio.Enabled = true
	g, err := New(Options{Config: cfg, Audio: rec})
	require.NoError(t, err)

	g.Step(&input.Frame{Keys: []input.KeyEvent{{Key: input.Space, State: input.Pressed}}})
	assert.Equal(t, []event.EventType{event.EventJump}, rec.cues)

	cfg.Audio.Enabled = false
	g, err = New(Options{Config: cfg, Audio: rec})
	require.NoError(t, err)
	g.Step(&input.Frame{Keys: []input.KeyEvent{{Key: input.Space, State: input.Pressed}}})
	assert.Len(t, rec.cues, 1)
}
