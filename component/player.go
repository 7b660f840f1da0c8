package component

import (
	"github.com/yohamta/donburi"

	"github.com/lixenwraith/gamefeel/parameter"
)

// PlayerComponent holds movement tuning for the controllable player
type PlayerComponent struct {
	WalkSpeed        float64 `yaml:"walk_speed" env:"WALK_SPEED"`
	RunSpeed         float64 `yaml:"run_speed" env:"RUN_SPEED"`
	JumpForce        float64 `yaml:"jump_force" env:"JUMP_FORCE"` // Inert: no jump physics reads it
	MouseSensitivity float64 `yaml:"mouse_sensitivity" env:"MOUSE_SENSITIVITY"`
}

// DefaultPlayer returns the stock tuning
func DefaultPlayer() PlayerComponent {
	return PlayerComponent{
		WalkSpeed:        parameter.PlayerWalkSpeed,
		RunSpeed:         parameter.PlayerRunSpeed,
		JumpForce:        parameter.PlayerJumpForce,
		MouseSensitivity: parameter.PlayerMouseSensitivity,
	}
}

// Speed returns run or walk speed
func (p *PlayerComponent) Speed(sprinting bool) float64 {
	if sprinting {
		return p.RunSpeed
	}
	return p.WalkSpeed
}

var Player = donburi.NewComponentType[PlayerComponent]()
