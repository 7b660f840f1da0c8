package render

import "image/color"

// RGB is a host-independent 24-bit color
type RGB struct {
	R, G, B uint8
}

// Palette shared by all hosts
var (
	RGBBackground = RGB{18, 20, 26}
	RGBGrid       = RGB{44, 48, 60}
	RGBAxis       = RGB{80, 86, 104}
	RGBPlayer     = RGB{96, 200, 255}
	RGBFacing     = RGB{255, 210, 90}
	RGBText       = RGB{220, 220, 220}
	RGBPanel      = RGB{10, 10, 14}
	RGBPaused     = RGB{255, 110, 110}
)

// RGBA converts to the standard library color for image backends
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Floats returns channels in [0, 1] for vector backends
func (c RGB) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}
