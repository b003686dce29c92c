package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// tuning mirrors the global tunables for YAML overrides. Keys are the
// lowercased field names, e.g. `mobile: {walkspeed: 8}`.
type tuning struct {
	Locomotion   LocomotionConfig   `yaml:"locomotion"`
	Mobile       LocomotionConfig   `yaml:"mobile"`
	Stamina      StaminaConfig      `yaml:"stamina"`
	Swim         SwimConfig         `yaml:"swim"`
	Combat       CombatConfig       `yaml:"combat"`
	Fireball     FireballConfig     `yaml:"fireball"`
	Camera       CameraConfig       `yaml:"camera"`
	Collectibles CollectiblesConfig `yaml:"collectibles"`
	World        WorldConfig        `yaml:"world"`
	Sim          SimConfig          `yaml:"sim"`
	Net          NetConfig          `yaml:"net"`
	Debug        DebugConfig        `yaml:"debug"`
}

func snapshot() tuning {
	return tuning{
		Locomotion:   Locomotion,
		Mobile:       Mobile,
		Stamina:      Stamina,
		Swim:         Swim,
		Combat:       Combat,
		Fireball:     Fireball,
		Camera:       Camera,
		Collectibles: Collectibles,
		World:        World,
		Sim:          Sim,
		Net:          Net,
		Debug:        Debug,
	}
}

func (t tuning) commit() {
	Locomotion = t.Locomotion
	Mobile = t.Mobile
	Stamina = t.Stamina
	Swim = t.Swim
	Combat = t.Combat
	Fireball = t.Fireball
	Camera = t.Camera
	Collectibles = t.Collectibles
	World = t.World
	Sim = t.Sim
	Net = t.Net
	Debug = t.Debug
}

// LoadOverrides reads a YAML tuning file and applies it over the current values.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overrides %s: %w", path, err)
	}
	if err := ApplyOverrides(data); err != nil {
		return fmt.Errorf("apply overrides %s: %w", path, err)
	}
	return nil
}

// ApplyOverrides decodes YAML on top of the current tunables. Keys that are
// absent keep their value. If the result fails Validate, nothing changes.
func ApplyOverrides(data []byte) error {
	prev := snapshot()
	next := prev
	if err := yaml.Unmarshal(data, &next); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	next.commit()
	if err := Validate(); err != nil {
		prev.commit()
		return err
	}
	return nil
}

// UnmarshalYAML accepts "clamp", "pinned" or the numeric value.
func (p *GroundSnapPolicy) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(strings.TrimSpace(value.Value)) {
	case "clamp", "0":
		*p = SnapClamp
	case "pinned", "pin", "1":
		*p = SnapPinned
	default:
		return fmt.Errorf("%w: unknown ground snap policy %q", ErrInvalid, value.Value)
	}
	return nil
}

// MarshalYAML writes the policy name.
func (p GroundSnapPolicy) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// DumpOverrides renders the current tunables as YAML, suitable as a starting
// point for an overrides file.
func DumpOverrides() ([]byte, error) {
	return yaml.Marshal(snapshot())
}
