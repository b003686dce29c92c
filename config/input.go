package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionSprint
	ActionPunch
	ActionKick
	ActionFireball
	ActionAscend
	ActionDescend
	ActionCameraLeft
	ActionCameraRight
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionJump:        "jump",
	ActionSprint:      "sprint",
	ActionPunch:       "punch",
	ActionKick:        "kick",
	ActionFireball:    "fireball",
	ActionAscend:      "ascend",
	ActionDescend:     "descend",
	ActionCameraLeft:  "camera_left",
	ActionCameraRight: "camera_right",
	ActionToggleDebug: "toggle_debug",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName resolves a script or wire name to an ActionID.
func ActionByName(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return ActionID(id), true
		}
	}
	return ActionNone, false
}

// InputConfig holds analog input tuning
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Deadzone of the on-screen joystick as a fraction of its radius
	TouchDeadzone float64
}

// Input is the global input configuration
var Input = InputConfig{
	AnalogDeadzone: 0.25,
	TouchDeadzone:  0.15,
}
