package components

import (
	cfg "github.com/automoto/celestial-crucible/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ActorData identifies a simulated character.
type ActorData struct {
	ID   int
	Name string
}

var Actor = donburi.NewComponentType[ActorData]()

// KinematicData is the per-actor motion state. Position is the actor's feet.
// Velocity is horizontal only; the vertical axis lives in VerticalSpeed.
type KinematicData struct {
	Position      mgl64.Vec3
	Velocity      mgl64.Vec3
	VerticalSpeed float64
	Facing        mgl64.Quat

	Grounded    bool
	CoyoteTimer float64
	JumpBuffer  float64

	Intent    mgl64.Vec3 // Resolved move direction for this tick, |Intent| <= 1
	Sprinting bool
	Jumped    bool // A jump executed this tick
}

var Kinematic = donburi.NewComponentType[KinematicData]()

// Locomotion holds the tunables an actor was spawned with. It is copied from
// the config globals at spawn and not touched afterwards.
var Locomotion = donburi.NewComponentType[cfg.LocomotionConfig]()
