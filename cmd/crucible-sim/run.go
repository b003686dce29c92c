package main

import (
	"fmt"

	"github.com/automoto/celestial-crucible/assets"
	"github.com/automoto/celestial-crucible/components"
	cfg "github.com/automoto/celestial-crucible/config"
	"github.com/automoto/celestial-crucible/scripting"
	"github.com/automoto/celestial-crucible/sim"
	"github.com/automoto/celestial-crucible/tags"
	"github.com/yohamta/donburi"
)

// runOptions selects what a run simulates.
type runOptions struct {
	Level   string
	Profile string // "desktop" or "mobile"
	Seconds float64
}

// summary is one line of per-second output.
type summary struct {
	Tick      uint64
	State     sim.ActorState
	Coins     int
	Crucibles int
}

// run is one scripted simulation. step advances it by one fixed tick.
type run struct {
	sim    *sim.Simulation
	actor  *donburi.Entry
	script *scripting.Runner
	clock  *sim.AttackClock
	ticks  uint64
}

func profileByName(name string) (cfg.LocomotionConfig, error) {
	switch name {
	case "", "mobile":
		return cfg.Mobile, nil
	case "desktop":
		return cfg.Locomotion, nil
	}
	return cfg.LocomotionConfig{}, fmt.Errorf("unknown profile %q", name)
}

func newRun(opts runOptions, script *scripting.Runner) (*run, error) {
	level, err := assets.LoadLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	profile, err := profileByName(opts.Profile)
	if err != nil {
		return nil, err
	}

	s := sim.New(level, nil)
	r := &run{
		sim:    s,
		script: script,
		clock:  s.AnimateAttacks(),
		ticks:  uint64(opts.Seconds * float64(cfg.Sim.TickRate)),
	}
	r.actor = s.SpawnActor(script.Name(), 0, profile,
		tags.Bot,
		components.Camera,
		components.Collector,
	)
	return r, nil
}

// step drives the actor and advances one tick.
func (r *run) step() error {
	dt := sim.FixedDelta()
	if _, err := r.script.Drive(r.sim, r.actor, dt); err != nil {
		return err
	}
	r.sim.Step()
	r.clock.Update(dt, r.sim.OpenAttackWindow)
	return nil
}

func (r *run) done() bool {
	return r.sim.Ticks() >= r.ticks
}

// secondElapsed reports whether the last tick completed a simulated second.
func (r *run) secondElapsed() bool {
	rate := uint64(max(cfg.Sim.TickRate, 1))
	return r.sim.Ticks()%rate == 0
}

func (r *run) summary() summary {
	return summary{
		Tick:      r.sim.Ticks(),
		State:     sim.StateOf(r.actor),
		Coins:     r.sim.Tracker.Coins(),
		Crucibles: r.sim.Tracker.Crucibles(),
	}
}

// runHeadless runs to completion and reports each second.
func runHeadless(r *run, report func(summary)) error {
	for !r.done() {
		if err := r.step(); err != nil {
			return err
		}
		if r.secondElapsed() {
			report(r.summary())
		}
	}
	return nil
}
