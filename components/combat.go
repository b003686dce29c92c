package components

import "github.com/yohamta/donburi"

// AttackType is the discriminator sent to the animator as "AttackType".
type AttackType int

const (
	AttackPunch AttackType = iota
	AttackKick
)

func (a AttackType) String() string {
	if a == AttackKick {
		return "kick"
	}
	return "punch"
}

// AttackGateData is the melee lock. It is locked by a started attack and
// reopened only by an AttackWindowEvent from the animation side.
type AttackGateData struct {
	Locked bool
	Type   AttackType
	Cycle  int // Incremented on every lock
}

var AttackGate = donburi.NewComponentType[AttackGateData]()

// RangedAttackData tracks the fireball cooldown and a scheduled spawn.
type RangedAttackData struct {
	Cooldown float64

	Pending      bool
	PendingTimer float64 // Seconds until the pending projectile spawns
}

var RangedAttack = donburi.NewComponentType[RangedAttackData]()
