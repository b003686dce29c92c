package components

import (
	"github.com/automoto/celestial-crucible/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton holding the loaded level and its collision space.
type LevelData struct {
	Data  *leveldata.LevelData
	Space *resolv.Space
}

var Level = donburi.NewComponentType[LevelData]()

// SpaceUnits is the number of collision space units per meter. resolv
// insets an object's far edge by one unit when it maps bounds to cells, so
// the space works in centimeters.
const SpaceUnits = 100.0

// ToSpace converts meters to collision space units.
func ToSpace(m float64) float64 { return m * SpaceUnits }

// FromSpace converts collision space units to meters.
func FromSpace(u float64) float64 { return u / SpaceUnits }

// NewFootprint returns a resolv rectangle covering the XZ footprint at
// (x, z) with size w x d, all in meters.
func NewFootprint(x, z, w, d float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(ToSpace(x), ToSpace(z), ToSpace(w), ToSpace(d), tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, ToSpace(w), ToSpace(d)))
	return obj
}
