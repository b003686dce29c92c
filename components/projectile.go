package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Height float64 // World Y, constant over the flight
	Age    float64
	Owner  donburi.Entity
	Hit    bool // Touched a solid during the last step
}

var Projectile = donburi.NewComponentType[ProjectileData]()
