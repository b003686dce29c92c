package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is an actor's collision footprint in the level's resolv space.
// The resolv object spans the XZ footprint; height is tracked by the
// kinematic position.
type BodyData struct {
	*resolv.Object
	Radius float64
	Height float64

	Grounded bool
	Water    int // Index of the water volume the body is in, -1 when dry
	Events   []VolumeEvent
}

var Body = donburi.NewComponentType[BodyData]()

// DrainEvents returns the queued volume events and clears the queue.
func (b *BodyData) DrainEvents() []VolumeEvent {
	events := b.Events
	b.Events = nil
	return events
}
