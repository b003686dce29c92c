package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// Collision types in the projectile space.
const (
	CollisionSolid cp.CollisionType = iota + 1
	CollisionFireball
)

// PhysicsData is the singleton rigid-body space that projectiles live in.
// cp's X axis is world X and cp's Y axis is world Z.
type PhysicsData struct {
	Space *cp.Space
}

var Physics = donburi.NewComponentType[PhysicsData]()
