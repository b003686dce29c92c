package main

import (
	"testing"
	"time"

	"github.com/automoto/celestial-crucible/components"
	"github.com/automoto/celestial-crucible/network"
	"github.com/automoto/celestial-crucible/shared/messages"
	"github.com/automoto/celestial-crucible/shared/netcomponents"
)

func TestStateFromReplicatedActor(t *testing.T) {
	b := newBot(nil, nil, nil)
	b.elapsed = 2.5
	b.own = netcomponents.NetActorData{
		X: 1, Y: 0.2, Z: 3,
		Speed:     4,
		Mode:      int(components.ModeSwimming),
		Stamina:   0.5,
		Attacking: true,
	}
	b.progress = messages.ProgressEvent{Coins: 7, Crucibles: 2, MaxCrucibles: 5}

	st := b.state(1.0 / 30)
	if st.T != 2.5 || st.X != 1 || st.Z != 3 || st.Speed != 4 {
		t.Fatalf("state = %+v", st)
	}
	if !st.Swimming || !st.Attacking || st.Grounded {
		t.Fatalf("flags = %+v", st)
	}
	if st.Coins != 7 || st.Crucibles != 2 {
		t.Fatalf("progress = %d/%d", st.Coins, st.Crucibles)
	}
}

func TestWaitJoinedTimesOut(t *testing.T) {
	if err := waitJoined(network.NewClient(), 50*time.Millisecond); err == nil {
		t.Fatal("expected a timeout")
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("CRUCIBLE_TEST_ADDR", "")
	if got := envOr("CRUCIBLE_TEST_ADDR", "fallback"); got != "fallback" {
		t.Fatalf("envOr = %q", got)
	}
	t.Setenv("CRUCIBLE_TEST_ADDR", "host:1")
	if got := envOr("CRUCIBLE_TEST_ADDR", "fallback"); got != "host:1" {
		t.Fatalf("envOr = %q", got)
	}
}
