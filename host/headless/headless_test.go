package headless_test

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gamefeel/config"
	"github.com/lixenwraith/gamefeel/game"
	"github.com/lixenwraith/gamefeel/host/headless"
	"github.com/lixenwraith/gamefeel/parameter"
	"github.com/lixenwraith/gamefeel/replay"
)

const script = `
name: walk-pause-look
dt: 100ms
frames:
  - held: [KeyW]
    repeat: 10
  - keys: [{key: KeyP}]
  - held: [KeyW]
    motion: [[500, 0]]
    repeat: 5
  - keys: [{key: KeyP}]
  - motion: [[0, -200]]
  - keys: [{key: Space}]
    mouse: [{button: Left}]
`

func runScript(t *testing.T, opts headless.Options) (*game.Game, error) {
	t.Helper()
	s, err := replay.Decode(strings.NewReader(script))
	require.NoError(t, err)
	frames, err := s.Expand()
	require.NoError(t, err)

	g, err := game.New(game.Options{Config: config.Default()})
	require.NoError(t, err)

	_, err = headless.Run(context.Background(), g, frames, opts)
	return g, err
}

func TestScriptedRun(t *testing.T) {
	g, err := runScript(t, headless.Options{})
	require.NoError(t, err)

	snap := g.Snapshot()
	// 10 frames * 0.1s * 5 u/s forward; paused frames add nothing
	assert.InDelta(t, 0, snap.Position[0], 1e-9)
	assert.InDelta(t, -5, snap.Position[2], 1e-9)
	assert.InDelta(t, 0, snap.Yaw, 1e-9)
	assert.InDelta(t, 0.2, snap.Pitch, 1e-9)
	assert.False(t, snap.Paused)
	assert.Equal(t, []string{"Pause(false)", "Sprint(false)", "Sprint(false)", "Jump", "Fire"}, snap.RecentGame)
	assert.Equal(t, int64(19), snap.Frame)
}

func TestCancelledRun(t *testing.T) {
	g, err := game.New(game.Options{Config: config.Default()})
	require.NoError(t, err)
	s, err := replay.Decode(strings.NewReader(script))
	require.NoError(t, err)
	frames, err := s.Expand()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = headless.Run(ctx, g, frames, headless.Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(0), g.Snapshot().Frame)
}

func TestSnapshotPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.png")
	_, err := runScript(t, headless.Options{SnapshotPath: path, Width: 320, Height: 200})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestDrawDefaultsSize(t *testing.T) {
	g, err := game.New(game.Options{Config: config.Default()})
	require.NoError(t, err)
	dc := headless.Draw(g.Snapshot(), 0, 0)
	assert.Equal(t, parameter.WindowWidth, dc.Width())
	assert.Equal(t, parameter.WindowHeight, dc.Height())
}
