package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// NetInterpData stores interpolation state for smooth rendering of remote
// networked entities between server snapshots.
type NetInterpData struct {
	Prev, Target       mgl64.Vec3
	PrevYaw, TargetYaw float64
	T                  float64
	Initialized        bool

	Position mgl64.Vec3 // Interpolated, read by the renderer
	Yaw      float64
}

var NetInterp = donburi.NewComponentType[NetInterpData]()

// Retarget starts a new leg from the currently shown pose.
func (n *NetInterpData) Retarget(pos mgl64.Vec3, yaw float64) {
	if !n.Initialized {
		n.Prev, n.Target, n.Position = pos, pos, pos
		n.PrevYaw, n.TargetYaw, n.Yaw = yaw, yaw, yaw
		n.T = 1
		n.Initialized = true
		return
	}
	n.Prev, n.PrevYaw = n.Position, n.Yaw
	n.Target, n.TargetYaw = pos, yaw
	n.T = 0
}
