package controls

import (
	"github.com/automoto/celestial-crucible/components"
	cfg "github.com/automoto/celestial-crucible/config"
	"github.com/automoto/celestial-crucible/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchJoystick is a floating on-screen stick. A touch that starts in the
// left half of the screen becomes the stick center; dragging away from it
// deflects the stick. With emulate set the left mouse button acts as a touch.
type TouchJoystick struct {
	Radius  float64
	emulate bool

	active   bool
	touchID  ebiten.TouchID
	mouse    bool
	cx, cy   float64
	px, py   float64
	touchIDs []ebiten.TouchID
}

func NewTouchJoystick(radius float64, emulateMouse bool) *TouchJoystick {
	return &TouchJoystick{Radius: radius, emulate: emulateMouse}
}

// Active reports whether a finger currently holds the stick.
func (j *TouchJoystick) Active() bool { return j.active }

// Center returns the stick center and the current finger position.
func (j *TouchJoystick) Center() (cx, cy, px, py float64) {
	return j.cx, j.cy, j.px, j.py
}

// Poll updates the stick and writes its deflection into joy.
func (j *TouchJoystick) Poll(joy *components.JoystickData) {
	screenW := float64(cfg.C.Width)

	if !j.active {
		j.touchIDs = inpututil.AppendJustPressedTouchIDs(j.touchIDs[:0])
		for _, id := range j.touchIDs {
			x, y := ebiten.TouchPosition(id)
			if float64(x) < screenW/2 {
				j.begin(float64(x), float64(y))
				j.touchID = id
				break
			}
		}
		if !j.active && j.emulate && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if float64(x) < screenW/2 {
				j.begin(float64(x), float64(y))
				j.mouse = true
			}
		}
	}

	if j.active {
		if j.released() {
			j.active = false
			j.mouse = false
		} else {
			var x, y int
			if j.mouse {
				x, y = ebiten.CursorPosition()
			} else {
				x, y = ebiten.TouchPosition(j.touchID)
			}
			j.px, j.py = float64(x), float64(y)
		}
	}

	if !j.active {
		joy.X, joy.Z = 0, 0
		return
	}
	joy.X, joy.Z = gamemath.StickDeflection(j.px-j.cx, j.py-j.cy, j.Radius, cfg.Input.TouchDeadzone)
}

func (j *TouchJoystick) begin(x, y float64) {
	j.active = true
	j.cx, j.cy = x, y
	j.px, j.py = x, y
}

func (j *TouchJoystick) released() bool {
	if j.mouse {
		return !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
	return inpututil.IsTouchJustReleased(j.touchID)
}
