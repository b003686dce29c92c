package components

import (
	cfg "github.com/automoto/celestial-crucible/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's pressed state for all
// actions of one actor. JustPressed is computed on demand by comparing ticks.
// Input sources (keyboard, touch, scripts, network) write into it before the
// tick; the pipeline rolls it over at the end of the tick.
type InputData struct {
	MoveX    float64 // Strafe axis in [-1, 1]
	MoveZ    float64 // Forward axis in [-1, 1]
	Vertical float64 // Ascend/descend axis used while swimming

	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Pulses are one-tick presses from buttons that have no held state
	// (touch buttons, scripted taps, network edges).
	Pulses [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a] || in.Pulses[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return (in.Current[a] && !in.Previous[a]) || in.Pulses[a]
}

// Press queues a one-tick press.
func (in *InputData) Press(a cfg.ActionID) {
	in.Pulses[a] = true
}

// Hold sets the held state of an action.
func (in *InputData) Hold(a cfg.ActionID, held bool) {
	in.Current[a] = held
}

// Rollover ends the tick: held state becomes the previous state and pulses
// are consumed.
func (in *InputData) Rollover() {
	in.Previous = in.Current
	in.Pulses = [cfg.ActionCount]bool{}
}

// JoystickData is the virtual joystick reading of a touch client.
type JoystickData struct {
	X, Z float64
}

// Active reports whether the stick is deflected at all.
func (j JoystickData) Active() bool {
	return j.X != 0 || j.Z != 0
}

var Joystick = donburi.NewComponentType[JoystickData]()
