package parameter

// Window Host
const (
	WindowWidth  = 960
	WindowHeight = 640
	WindowTitle  = "gamefeel sandbox"
)

// Top-Down Debug View
const (
	// ViewPixelsPerUnit is the window/snapshot scale of one world unit
	ViewPixelsPerUnit = 24.0

	// ViewCellsPerUnit is the terminal scale; cells are ~1:2 so X is doubled at draw time
	ViewCellsPerUnit = 2.0

	// ViewGridSpacing is the world-unit spacing of floor grid lines
	ViewGridSpacing = 2.0

	// ViewFacingLength is the length of the facing indicator in world units
	ViewFacingLength = 1.5
)

// Overlay Panels
const (
	PanelInputTitle = "Input Events"
	PanelGameTitle  = "Game Events"
	PanelInputLabel = "Recent Input Events:"
	PanelGameLabel  = "Recent Game Events:"
	PanelWidth      = 44
)
