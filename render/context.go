package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/parameter"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snapshot engine.Snapshot

	// Viewport dimensions in host units (pixels or cells)
	Width  int
	Height int

	// Scale is host units per world unit along X
	// Aspect multiplies Y scale; terminal cells are roughly twice as tall as wide
	Scale  float64
	Aspect float64
}

// NewRenderContext creates a context centered on the player
func NewRenderContext(snap engine.Snapshot, width, height int, scale, aspect float64) RenderContext {
	if aspect == 0 {
		aspect = 1
	}
	return RenderContext{
		Snapshot: snap,
		Width:    width,
		Height:   height,
		Scale:    scale,
		Aspect:   aspect,
	}
}

// Project maps a ground-plane world point (x, z) to screen coordinates
// Top-down with -Z up, the view follows the player
func (c RenderContext) Project(x, z float64) (sx, sy float64) {
	p := c.Snapshot.Position
	sx = float64(c.Width)/2 + (x-p[0])*c.Scale
	sy = float64(c.Height)/2 + (z-p[2])*c.Scale*c.Aspect
	return sx, sy
}

// PlayerScreen returns the player's screen position
func (c RenderContext) PlayerScreen() (sx, sy float64) {
	p := c.Snapshot.Position
	return c.Project(p[0], p[2])
}

// FacingScreen returns the end of the facing indicator
func (c RenderContext) FacingScreen() (sx, sy float64) {
	p := c.Snapshot.Position
	f := c.Snapshot.Facing
	return c.Project(p[0]+f[0]*parameter.ViewFacingLength, p[2]+f[1]*parameter.ViewFacingLength)
}

// GridLine is a segment in screen coordinates
type GridLine struct {
	X0, Y0, X1, Y1 float64
	Axis           bool // World X or Z axis
}

// GridLines returns the visible floor grid
func (c RenderContext) GridLines() []GridLine {
	if c.Scale <= 0 {
		return nil
	}
	p := c.Snapshot.Position
	step := parameter.ViewGridSpacing

	halfW := float64(c.Width) / 2 / c.Scale
	halfH := float64(c.Height) / 2 / (c.Scale * c.Aspect)

	var lines []GridLine
	for x := math.Floor((p[0]-halfW)/step) * step; x <= p[0]+halfW; x += step {
		sx, _ := c.Project(x, 0)
		lines = append(lines, GridLine{X0: sx, Y0: 0, X1: sx, Y1: float64(c.Height), Axis: x == 0})
	}
	for z := math.Floor((p[2]-halfH)/step) * step; z <= p[2]+halfH; z += step {
		_, sy := c.Project(0, z)
		lines = append(lines, GridLine{X0: 0, Y0: sy, X1: float64(c.Width), Y1: sy, Axis: z == 0})
	}
	return lines
}

// StatusLine describes the player pose
func (c RenderContext) StatusLine() string {
	s := c.Snapshot
	line := fmt.Sprintf("pos (%.2f, %.2f, %.2f)  yaw %.2f  pitch %.2f",
		s.Position[0], s.Position[1], s.Position[2], s.Yaw, s.Pitch)
	if s.Paused {
		line += "  [PAUSED]"
	}
	return line
}
