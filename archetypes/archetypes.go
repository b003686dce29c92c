package archetypes

import (
	"github.com/automoto/celestial-crucible/components"
	"github.com/automoto/celestial-crucible/tags"
	"github.com/yohamta/donburi"
)

var (
	// Actor is any character driven by the movement pipeline.
	Actor = newArchetype(
		components.Actor,
		components.Kinematic,
		components.Locomotion,
		components.Stamina,
		components.Mode,
		components.AttackGate,
		components.RangedAttack,
		components.Input,
		components.Body,
		components.Animator,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Pickup,
	)
	Crucible = newArchetype(
		tags.Crucible,
		components.Pickup,
	)
	Fireball = newArchetype(
		tags.Fireball,
		components.Projectile,
	)
	Level = newArchetype(
		components.Level,
	)
	Physics = newArchetype(
		components.Physics,
	)
	Progress = newArchetype(
		components.Progress,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return world.Entry(world.Create(all...))
}
