package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupCrucible
)

// PickupData is a collectible resting in the level.
type PickupData struct {
	Kind     PickupKind
	Value    int
	Position mgl64.Vec3 // Center of the pickup
	Object   *resolv.Object
}

var Pickup = donburi.NewComponentType[PickupData]()

// FloatingData spins a pickup and bobs it around its start height.
type FloatingData struct {
	BaseY float64
	Yaw   float64 // Degrees
	Bob   *gween.Sequence
}

var Floating = donburi.NewComponentType[FloatingData]()
