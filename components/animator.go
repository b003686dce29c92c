package components

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/yohamta/donburi"
)

// Animator parameter and trigger names.
const (
	ParamGrounded  = "isGrounded"
	ParamSpeed     = "Speed"
	ParamSprinting = "IsSprinting"
	ParamSwimming  = "IsSwimming"
	ParamSwimSpeed = "SwimSpeed"
	ParamAttacking = "IsAttacking"
	ParamAttack    = "AttackType"

	TriggerJump     = "Jump"
	TriggerAttack   = "AttackTrigger"
	TriggerFireball = "Fireball"
)

// AnimatorData collects the signals the simulation sends to animation. It is
// the only surface between the two; the client and tests read it back.
type AnimatorData struct {
	params   *orderedmap.OrderedMap[string, any]
	triggers *orderedmap.OrderedMap[string, int]
}

var Animator = donburi.NewComponentType[AnimatorData]()

func NewAnimator() AnimatorData {
	return AnimatorData{
		params:   orderedmap.NewOrderedMap[string, any](),
		triggers: orderedmap.NewOrderedMap[string, int](),
	}
}

func (a *AnimatorData) init() {
	if a.params == nil {
		a.params = orderedmap.NewOrderedMap[string, any]()
	}
	if a.triggers == nil {
		a.triggers = orderedmap.NewOrderedMap[string, int]()
	}
}

func (a *AnimatorData) SetBool(name string, v bool) {
	a.init()
	a.params.Set(name, v)
}

func (a *AnimatorData) SetFloat(name string, v float64) {
	a.init()
	a.params.Set(name, v)
}

func (a *AnimatorData) SetInt(name string, v int) {
	a.init()
	a.params.Set(name, v)
}

// Trigger fires a one-shot trigger.
func (a *AnimatorData) Trigger(name string) {
	a.init()
	a.triggers.Set(name, a.triggers.GetOrDefault(name, 0)+1)
}

func (a *AnimatorData) Bool(name string) bool {
	if a.params == nil {
		return false
	}
	v, _ := a.params.GetOrDefault(name, false).(bool)
	return v
}

func (a *AnimatorData) Float(name string) float64 {
	if a.params == nil {
		return 0
	}
	v, _ := a.params.GetOrDefault(name, 0.0).(float64)
	return v
}

func (a *AnimatorData) Int(name string) int {
	if a.params == nil {
		return 0
	}
	v, _ := a.params.GetOrDefault(name, 0).(int)
	return v
}

// Triggered returns how many times a trigger has fired.
func (a *AnimatorData) Triggered(name string) int {
	if a.triggers == nil {
		return 0
	}
	return a.triggers.GetOrDefault(name, 0)
}

// Lines formats every parameter and trigger in insertion order.
func (a *AnimatorData) Lines() []string {
	if a.params == nil {
		return nil
	}
	lines := make([]string, 0, a.params.Len()+a.triggers.Len())
	for el := a.params.Front(); el != nil; el = el.Next() {
		switch v := el.Value.(type) {
		case float64:
			lines = append(lines, fmt.Sprintf("%s: %.2f", el.Key, v))
		default:
			lines = append(lines, fmt.Sprintf("%s: %v", el.Key, v))
		}
	}
	for el := a.triggers.Front(); el != nil; el = el.Next() {
		lines = append(lines, fmt.Sprintf("%s x%d", el.Key, el.Value))
	}
	return lines
}
