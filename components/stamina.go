package components

import (
	cfg "github.com/automoto/celestial-crucible/config"
	"github.com/yohamta/donburi"
)

type StaminaData struct {
	Value      float64
	RegenTimer float64
	Config     cfg.StaminaConfig
}

var Stamina = donburi.NewComponentType[StaminaData]()

func NewStamina(c cfg.StaminaConfig) StaminaData {
	return StaminaData{Value: c.Max, Config: c}
}

// Fraction returns Value/Max in [0, 1].
func (s *StaminaData) Fraction() float64 {
	if s.Config.Max <= 0 {
		return 0
	}
	f := s.Value / s.Config.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (s *StaminaData) CanAfford(cost float64) bool {
	return s.Value >= cost
}

// TryDebit spends cost if the ledger holds at least that much and restarts
// the regen delay.
func (s *StaminaData) TryDebit(cost float64) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.Value -= cost
	s.RegenTimer = s.Config.RegenDelay
	s.clamp()
	return true
}

func (s *StaminaData) clamp() {
	if s.Value < 0 {
		s.Value = 0
	}
	if s.Value > s.Config.Max {
		s.Value = s.Config.Max
	}
}

// Update advances the ledger by dt.
func (s *StaminaData) Update(dt float64, sprinting bool) {
	switch {
	case sprinting:
		s.Value -= s.Config.SprintDrain * dt
		s.RegenTimer = s.Config.RegenDelay
	case s.RegenTimer > 0:
		s.RegenTimer -= dt
		if s.RegenTimer < 0 {
			s.RegenTimer = 0
		}
	default:
		s.Value += s.Config.Regen * dt
	}
	s.clamp()
}
