package headless

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/gamefeel/engine"
	"github.com/lixenwraith/gamefeel/parameter"
	"github.com/lixenwraith/gamefeel/render"
)

const (
	lineHeight = 16.0
	panelPad   = 10.0
	playerSize = 8.0
)

// Draw renders the top-down view and overlay panels into a new context
func Draw(snap engine.Snapshot, width, height int) *gg.Context {
	if width <= 0 {
		width = parameter.WindowWidth
	}
	if height <= 0 {
		height = parameter.WindowHeight
	}

	dc := gg.NewContext(width, height)
	rc := render.NewRenderContext(snap, width, height, parameter.ViewPixelsPerUnit, 1)

	dc.SetColor(render.RGBBackground.RGBA())
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	drawGrid(dc, rc)
	drawPlayer(dc, rc)
	drawOverlay(dc, rc)
	return dc
}

// WritePNG draws the snapshot and saves it to path
func WritePNG(path string, snap engine.Snapshot, width, height int) error {
	if err := Draw(snap, width, height).SavePNG(path); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

func drawGrid(dc *gg.Context, rc render.RenderContext) {
	dc.SetLineWidth(1)
	for _, l := range rc.GridLines() {
		if l.Axis {
			dc.SetColor(render.RGBAxis.RGBA())
		} else {
			dc.SetColor(render.RGBGrid.RGBA())
		}
		dc.DrawLine(l.X0, l.Y0, l.X1, l.Y1)
		dc.Stroke()
	}
}

func drawPlayer(dc *gg.Context, rc render.RenderContext) {
	px, py := rc.PlayerScreen()
	fx, fy := rc.FacingScreen()

	dc.SetColor(render.RGBFacing.RGBA())
	dc.SetLineWidth(2)
	dc.DrawLine(px, py, fx, fy)
	dc.Stroke()

	dc.SetColor(render.RGBPlayer.RGBA())
	dc.DrawCircle(px, py, playerSize)
	dc.Fill()
}

func drawOverlay(dc *gg.Context, rc render.RenderContext) {
	y := panelPad + lineHeight
	dc.SetColor(render.RGBText.RGBA())
	for _, p := range render.Panels(rc.Snapshot) {
		for _, row := range p.Text(parameter.PanelWidth) {
			dc.DrawString(row, panelPad, y)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	bottom := float64(rc.Height) - panelPad
	if rc.Snapshot.Paused {
		dc.SetColor(render.RGBPaused.RGBA())
	}
	dc.DrawString(rc.StatusLine(), panelPad, bottom-lineHeight)
	dc.SetColor(render.RGBText.RGBA())
	dc.DrawString(rc.Snapshot.Summary, panelPad, bottom)
}
