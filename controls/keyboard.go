// Package controls turns ebiten keyboard, gamepad and touch state into the
// simulation's per-actor input buffer.
package controls

import (
	"github.com/automoto/celestial-crucible/components"
	cfg "github.com/automoto/celestial-crucible/config"
	"github.com/automoto/celestial-crucible/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists the keys and standard gamepad buttons that hold an action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its physical inputs.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionSprint: {
		Keys:                   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftStick, ebiten.StandardGamepadButtonFrontBottomLeft},
	},
	cfg.ActionPunch: {
		Keys:                   []ebiten.Key{ebiten.KeyJ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionKick: {
		Keys:                   []ebiten.Key{ebiten.KeyK},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionFireball: {
		Keys:                   []ebiten.Key{ebiten.KeyL},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionAscend: {
		Keys:                   []ebiten.Key{ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionDescend: {
		Keys:                   []ebiten.Key{ebiten.KeyC, ebiten.KeyControlLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
	},
	cfg.ActionCameraLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyQ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
	},
	cfg.ActionCameraRight: {
		Keys:                   []ebiten.Key{ebiten.KeyE},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	cfg.ActionToggleDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
}

// Keyboard polls the keyboard and every standard-layout gamepad.
type Keyboard struct {
	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll writes this frame's held actions and move axes into in. It must run
// before the simulation tick; the tick rolls the buffer over.
func (k *Keyboard) Poll(in *components.InputData) {
	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])

	for id := cfg.ActionID(1); id < cfg.ActionCount; id++ {
		in.Hold(id, k.held(Bindings[id]))
	}

	x, z := keyAxes()
	if x == 0 && z == 0 {
		x, z = k.stickAxes()
	}
	in.MoveX, in.MoveZ = x, z

	in.Vertical = 0
	if in.Current[cfg.ActionAscend] {
		in.Vertical++
	}
	if in.Current[cfg.ActionDescend] {
		in.Vertical--
	}
}

func (k *Keyboard) held(b Binding) bool {
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range k.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// keyAxes reads WASD and the arrow keys.
func keyAxes() (x, z float64) {
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		z++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		z--
	}
	return x, z
}

// stickAxes reads the left stick of the first gamepad outside the deadzone.
// Stick up is forward.
func (k *Keyboard) stickAxes() (float64, float64) {
	for _, gpID := range k.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if x, z := gamemath.ApplyDeadzone(h, -v, cfg.Input.AnalogDeadzone); x != 0 || z != 0 {
			return x, z
		}
	}
	return 0, 0
}
