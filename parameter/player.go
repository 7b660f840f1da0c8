package parameter

import "math"

// Player Tuning Defaults
const (
	PlayerWalkSpeed        = 5.0
	PlayerRunSpeed         = 10.0
	PlayerJumpForce        = 5.0 // Declared for tuning, no jump physics consume it
	PlayerMouseSensitivity = 0.1

	// PlayerSpawnX/Y/Z is the player's initial world position
	PlayerSpawnX = 0.0
	PlayerSpawnY = 1.0
	PlayerSpawnZ = 0.0
)

// Look
const (
	// LookScale converts mouse delta * sensitivity into radians
	LookScale = 0.01

	// PitchMargin keeps the camera pitch away from ±90° to avoid gimbal flip
	PitchMargin = 0.1

	// PitchLimit is the largest absolute camera pitch in radians
	PitchLimit = math.Pi/2 - PitchMargin
)
