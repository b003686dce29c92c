package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the follow camera attached to an actor. Forward and Right
// are the basis the input resolver projects onto; a zero basis means the
// world axes are used.
type CameraData struct {
	Forward mgl64.Vec3
	Right   mgl64.Vec3
	Yaw     float64
	FOV     float64

	Position mgl64.Vec3 // Smoothed focus point used by the renderer
}

var Camera = donburi.NewComponentType[CameraData]()
