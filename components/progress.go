package components

import (
	"github.com/automoto/celestial-crucible/progress"
	"github.com/yohamta/donburi"
)

// ProgressData is the singleton through which pickups report into the
// tracker owned by the simulation.
type ProgressData struct {
	Tracker *progress.Tracker
}

var Progress = donburi.NewComponentType[ProgressData]()

// Collector marks actors that can pick up coins and crucibles.
type CollectorData struct{}

var Collector = donburi.NewComponentType[CollectorData]()
