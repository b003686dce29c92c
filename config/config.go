package config

import (
	"errors"
	"fmt"
	"image/color"
)

// GroundSnapPolicy selects how vertical speed is forced while grounded.
type GroundSnapPolicy int

const (
	// SnapClamp clamps a negative vertical speed to -GroundClampSpeed when the
	// sensor reports ground, then lets gravity integrate normally.
	SnapClamp GroundSnapPolicy = iota
	// SnapPinned pins vertical speed to -GroundSnapForce on every grounded tick
	// that has no jump.
	SnapPinned
)

func (p GroundSnapPolicy) String() string {
	switch p {
	case SnapClamp:
		return "clamp"
	case SnapPinned:
		return "pinned"
	}
	return fmt.Sprintf("GroundSnapPolicy(%d)", int(p))
}

// LocomotionConfig contains the terrestrial movement tunables
type LocomotionConfig struct {
	// Movement
	WalkSpeed    float64
	SprintSpeed  float64
	Acceleration float64
	Deceleration float64
	AirControl   float64 // Displacement multiplier while airborne

	// Jumping
	JumpHeight     float64
	Gravity        float64 // Negative, m/s^2
	CoyoteTime     float64
	JumpBufferTime float64

	// Ground snap
	SnapPolicy       GroundSnapPolicy
	GroundClampSpeed float64 // Used by SnapClamp
	GroundSnapForce  float64 // Used by SnapPinned

	// Rotation
	RotateSpeed     float64
	FacingEpsilonSq float64 // Squared flat speed below which facing is left alone

	// Stamina gating
	StaminaGated   bool // Sprint and jump consume stamina
	SprintDeadzone float64
}

// StaminaConfig contains the stamina ledger tunables
type StaminaConfig struct {
	Max         float64
	SprintDrain float64 // per second
	JumpCost    float64
	Regen       float64 // per second
	RegenDelay  float64 // seconds
}

// SwimConfig contains the swim-mode tunables
type SwimConfig struct {
	Speed            float64
	Acceleration     float64
	RotateSpeed      float64
	FacingEpsilonSq  float64
	TreadOffset      float64 // Depth below the surface while idle
	SwimOffset       float64 // Depth below the surface while moving
	SurfaceSnapSpeed float64
	BandBelow        float64
	BandAbove        float64
	MovingThreshold  float64
}

// CombatConfig contains attack gate tunables
type CombatConfig struct {
	// Seconds the client-side animation collaborator waits before it reopens
	// the attack window. The core itself never unlocks on a timer.
	PunchAnimationLength float64
	KickAnimationLength  float64
}

// FireballConfig contains the ranged attack tunables
type FireballConfig struct {
	Cooldown   float64
	SpawnDelay float64
	Speed      float64
	Radius     float64
	Mass       float64
	Lifetime   float64
	HandHeight float64 // Spawn height above the caster's feet
	HandReach  float64 // Spawn distance in front of the caster
}

// CameraConfig contains follow camera and FOV tunables
type CameraConfig struct {
	NormalFOV    float64
	SprintFOV    float64
	FOVLerpSpeed float64
	YawSpeed     float64 // radians per second for the orbit keys
	Smoothing    float64
}

// CollectiblesConfig contains coin and crucible tunables
type CollectiblesConfig struct {
	CoinValue     int
	MaxCrucibles  int
	PickupSize    float64
	PickupReach   float64 // Vertical distance within which a pickup is collected
	RotationSpeed float64 // degrees per second
	FloatSpeed    float64 // radians per second
	FloatHeight   float64
}

// WorldConfig contains level geometry tunables
type WorldConfig struct {
	PixelsPerMeter float64
	CellSize       int // resolv space cell size in meters
	ActorRadius    float64
	ActorHeight    float64
	GroundEpsilon  float64
	StepHeight     float64 // Tallest ledge an actor walks onto without jumping
}

// SimConfig contains the tick loop tunables
type SimConfig struct {
	TickRate int     // Fixed ticks per second for headless runs
	MaxDelta float64 // Largest dt accepted in one tick
}

// NetConfig contains server defaults
type NetConfig struct {
	Port     uint
	TickRate int
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Locomotion LocomotionConfig
var Mobile LocomotionConfig
var Stamina StaminaConfig
var Swim SwimConfig
var Combat CombatConfig
var Fireball FireballConfig
var Camera CameraConfig
var Collectibles CollectiblesConfig
var World WorldConfig
var Sim SimConfig
var Net NetConfig
var Debug DebugConfig
var UI UIConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool // Velocity, grounded state and animator parameters
	Touch       bool // Show the mobile controls overlay on desktop
}

// UIConfig contains HUD layout values
type UIConfig struct {
	StaminaBarWidth  float64
	StaminaBarHeight float64
	StaminaBarEase   float32 // seconds the bar takes to catch up
	HUDMargin        float64
	JoystickRadius   float64
	ButtonSize       int
}

// ErrInvalid is returned by Validate when a tunable breaks an invariant.
var ErrInvalid = errors.New("invalid config")

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Water        = color.RGBA{R: 40, G: 110, B: 200, A: 160}
	Sand         = color.RGBA{R: 214, G: 196, B: 140, A: 255}
	Stone        = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Celestial Crucible",
	}

	Reset()
}

// Reset restores every tunable to its built-in default.
func Reset() {
	// Keyboard controller
	Locomotion = LocomotionConfig{
		WalkSpeed:    6.0,
		SprintSpeed:  6.0,
		Acceleration: 12.0,
		Deceleration: 14.0,
		AirControl:   0.5,

		JumpHeight:     2.2,
		Gravity:        -35.0,
		CoyoteTime:     0.15,
		JumpBufferTime: 0.12,

		SnapPolicy:       SnapClamp,
		GroundClampSpeed: 2.0,
		GroundSnapForce:  5.0,

		RotateSpeed:     14.0,
		FacingEpsilonSq: 0.001,

		StaminaGated:   false,
		SprintDeadzone: 0.1,
	}

	// Touch controller: sprint, stamina and a pinned snap
	Mobile = LocomotionConfig{
		WalkSpeed:    7.0,
		SprintSpeed:  11.0,
		Acceleration: 14.0,
		Deceleration: 16.0,
		AirControl:   0.55,

		JumpHeight:     2.2,
		Gravity:        -35.0,
		CoyoteTime:     0.15,
		JumpBufferTime: 0.12,

		SnapPolicy:       SnapPinned,
		GroundClampSpeed: 2.0,
		GroundSnapForce:  6.0,

		RotateSpeed:     14.0,
		FacingEpsilonSq: 0.001,

		StaminaGated:   true,
		SprintDeadzone: 0.1,
	}

	Stamina = StaminaConfig{
		Max:         100.0,
		SprintDrain: 20.0,
		JumpCost:    15.0,
		Regen:       25.0,
		RegenDelay:  0.8,
	}

	Swim = SwimConfig{
		Speed:            4.0,
		Acceleration:     8.0,
		RotateSpeed:      10.0,
		FacingEpsilonSq:  0.01,
		TreadOffset:      2.3,
		SwimOffset:       1.9,
		SurfaceSnapSpeed: 6.0,
		BandBelow:        0.3,
		BandAbove:        0.2,
		MovingThreshold:  0.1,
	}

	Combat = CombatConfig{
		PunchAnimationLength: 0.45,
		KickAnimationLength:  0.6,
	}

	Fireball = FireballConfig{
		Cooldown:   1.0,
		SpawnDelay: 0.35,
		Speed:      15.0,
		Radius:     0.25,
		Mass:       1.0,
		Lifetime:   2.5,
		HandHeight: 1.2,
		HandReach:  0.6,
	}

	Camera = CameraConfig{
		NormalFOV:    60.0,
		SprintFOV:    70.0,
		FOVLerpSpeed: 8.0,
		YawSpeed:     2.0,
		Smoothing:    0.12,
	}

	Collectibles = CollectiblesConfig{
		CoinValue:     1,
		MaxCrucibles:  5,
		PickupSize:    0.6,
		PickupReach:   1.5,
		RotationSpeed: 90.0,
		FloatSpeed:    2.0,
		FloatHeight:   0.25,
	}

	World = WorldConfig{
		PixelsPerMeter: 16.0,
		CellSize:       1,
		ActorRadius:    0.4,
		ActorHeight:    1.8,
		GroundEpsilon:  0.01,
		StepHeight:     0.35,
	}

	Sim = SimConfig{
		TickRate: 60,
		MaxDelta: 0.1,
	}

	Net = NetConfig{
		Port:     7474,
		TickRate: 30,
	}

	Debug = DebugConfig{}

	UI = UIConfig{
		StaminaBarWidth:  160,
		StaminaBarHeight: 10,
		StaminaBarEase:   0.15,
		HUDMargin:        12,
		JoystickRadius:   60,
		ButtonSize:       56,
	}
}

// Validate checks the invariants the simulation relies on.
func Validate() error {
	for name, l := range map[string]LocomotionConfig{"locomotion": Locomotion, "mobile": Mobile} {
		if l.Gravity >= 0 {
			return fmt.Errorf("%w: %s.gravity must be negative, got %v", ErrInvalid, name, l.Gravity)
		}
		if l.JumpHeight < 0 || l.CoyoteTime < 0 || l.JumpBufferTime < 0 {
			return fmt.Errorf("%w: %s jump timings must be non-negative", ErrInvalid, name)
		}
		if l.AirControl < 0 || l.AirControl > 1 {
			return fmt.Errorf("%w: %s.airControl must be in [0,1], got %v", ErrInvalid, name, l.AirControl)
		}
		if l.SprintSpeed < l.WalkSpeed {
			return fmt.Errorf("%w: %s.sprintSpeed below walkSpeed", ErrInvalid, name)
		}
	}
	if Stamina.Max <= 0 {
		return fmt.Errorf("%w: stamina.max must be positive", ErrInvalid)
	}
	if Stamina.JumpCost > Stamina.Max {
		return fmt.Errorf("%w: stamina.jumpCost exceeds max", ErrInvalid)
	}
	if Fireball.Cooldown < Fireball.SpawnDelay {
		return fmt.Errorf("%w: fireball.cooldown (%v) must cover spawnDelay (%v)", ErrInvalid, Fireball.Cooldown, Fireball.SpawnDelay)
	}
	if Collectibles.MaxCrucibles <= 0 {
		return fmt.Errorf("%w: collectibles.maxCrucibles must be positive", ErrInvalid)
	}
	if World.PixelsPerMeter <= 0 {
		return fmt.Errorf("%w: world.pixelsPerMeter must be positive", ErrInvalid)
	}
	if Sim.TickRate <= 0 {
		return fmt.Errorf("%w: sim.tickRate must be positive", ErrInvalid)
	}
	return nil
}
