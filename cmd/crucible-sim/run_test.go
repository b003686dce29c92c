package main

import (
	"testing"

	cfg "github.com/automoto/celestial-crucible/config"
	"github.com/automoto/celestial-crucible/scripting"
)

func newTestRun(t *testing.T, scenario string, seconds float64) *run {
	t.Helper()
	script, err := scripting.Scenario(scenario)
	if err != nil {
		t.Fatalf("scenario %s: %v", scenario, err)
	}
	r, err := newRun(runOptions{Seconds: seconds}, script)
	if err != nil {
		t.Fatalf("newRun: %v", err)
	}
	return r
}

func TestHeadlessReportsEverySecond(t *testing.T) {
	r := newTestRun(t, "idle", 3)
	var reports []summary
	if err := runHeadless(r, func(s summary) { reports = append(reports, s) }); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("got %d reports, want 3", len(reports))
	}
	for i, s := range reports {
		if want := uint64((i + 1) * cfg.Sim.TickRate); s.Tick != want {
			t.Errorf("report %d at tick %d, want %d", i, s.Tick, want)
		}
	}
	if last := reports[2].State; !last.Grounded || last.Speed != 0 {
		t.Fatalf("idle actor moved: %+v", last)
	}
}

func TestCircuitIsDeterministic(t *testing.T) {
	digest := func() uint64 {
		r := newTestRun(t, "circuit", 4)
		if err := runHeadless(r, func(summary) {}); err != nil {
			t.Fatalf("runHeadless: %v", err)
		}
		return r.sim.Digest()
	}
	if a, b := digest(), digest(); a != b {
		t.Fatalf("digests differ: %016x vs %016x", a, b)
	}
}

func TestProfileByName(t *testing.T) {
	if _, err := profileByName("hover"); err == nil {
		t.Fatal("unknown profile accepted")
	}
	p, err := profileByName("desktop")
	if err != nil || p != cfg.Locomotion {
		t.Fatalf("desktop = %+v, %v", p, err)
	}
}

func TestFacingRune(t *testing.T) {
	tests := []struct {
		yaw  float64
		want rune
	}{
		{0, '↑'},
		{1.5708, '→'},
		{-1.5708, '←'},
		{3.1416, '↓'},
	}
	for _, tt := range tests {
		if got := facingRune(tt.yaw); got != tt.want {
			t.Errorf("facingRune(%v) = %c, want %c", tt.yaw, got, tt.want)
		}
	}
}
