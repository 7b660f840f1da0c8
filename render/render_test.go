package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gamefeel/engine"
)

func TestProjectCentersPlayer(t *testing.T) {
	snap := engine.Snapshot{Position: mgl64.Vec3{3, 1, -2}, Facing: [2]float64{0, -1}}
	c := NewRenderContext(snap, 200, 100, 10, 1)

	x, y := c.PlayerScreen()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)

	// Facing -Z points up the screen
	fx, fy := c.FacingScreen()
	assert.Equal(t, 100.0, fx)
	assert.Less(t, fy, y)
}

func TestProjectAspect(t *testing.T) {
	c := NewRenderContext(engine.Snapshot{}, 40, 20, 2, 0.5)
	_, y := c.Project(0, 4)
	assert.Equal(t, 14.0, y)
}

func TestGridLinesIncludeAxes(t *testing.T) {
	c := NewRenderContext(engine.Snapshot{}, 100, 100, 10, 1)
	lines := c.GridLines()
	require.NotEmpty(t, lines)

	axes := 0
	for _, l := range lines {
		if l.Axis {
			axes++
			assert.True(t, l.X0 == 50 || l.Y0 == 50)
		}
	}
	assert.Equal(t, 2, axes)
}

func TestPanelsAndTruncate(t *testing.T) {
	snap := engine.Snapshot{
		RecentInput: []string{"Keyboard: KeyW Pressed"},
		RecentGame:  []string{"Move(0.00, 1.00)", "Sprint(false)"},
	}
	panels := Panels(snap)
	require.Len(t, panels, 2)
	assert.Equal(t, "Input Events", panels[0].Title)
	assert.Equal(t, "Game Events", panels[1].Title)

	rows := panels[1].Text(10)
	assert.Equal(t, []string{"Game Even~", "Recent Ga~", "  Move(0.~", "  Sprint(~"}, rows)
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "abc", Truncate("abc", 3))
}

func TestStatusLine(t *testing.T) {
	c := NewRenderContext(engine.Snapshot{Position: mgl64.Vec3{0, 1, 0}, Paused: true}, 10, 10, 1, 1)
	assert.Equal(t, "pos (0.00, 1.00, 0.00)  yaw 0.00  pitch 0.00  [PAUSED]", c.StatusLine())
}
