package components

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ModeID is the locomotion mode an actor is in. Exactly one is active.
type ModeID int

const (
	ModeGrounded ModeID = iota
	ModeSwimming
)

func (m ModeID) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeSwimming:
		return "swimming"
	}
	return fmt.Sprintf("ModeID(%d)", int(m))
}

type ModeData struct {
	Active       ModeID
	Surface      float64    // Water surface height captured on entry
	SwimVelocity mgl64.Vec3 // Swim-mode velocity, including the vertical axis
}

var Mode = donburi.NewComponentType[ModeData]()

// VolumeEventKind tells whether a trigger volume was entered or left.
type VolumeEventKind int

const (
	VolumeEnter VolumeEventKind = iota
	VolumeExit
)

// VolumeEvent is raised by the collision collaborator for Water volumes.
type VolumeEvent struct {
	Kind    VolumeEventKind
	Volume  int // Index into the level's water volumes
	Surface float64
}
