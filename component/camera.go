package component

import "github.com/yohamta/donburi"

// PlayerCameraComponent marks the first-person camera
// Its TransformComponent carries pitch only; yaw and position come from Parent
type PlayerCameraComponent struct {
	Parent donburi.Entity
}

var PlayerCamera = donburi.NewComponentType[PlayerCameraComponent]()
