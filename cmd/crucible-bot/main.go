// Command crucible-bot joins a server and plays from a tengo script, the
// same scripts crucible-sim runs locally.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/automoto/celestial-crucible/components"
	cfg "github.com/automoto/celestial-crucible/config"
	"github.com/automoto/celestial-crucible/logging"
	"github.com/automoto/celestial-crucible/network"
	"github.com/automoto/celestial-crucible/scripting"
	"github.com/automoto/celestial-crucible/shared/messages"
	"github.com/automoto/celestial-crucible/shared/netcomponents"
	"github.com/automoto/celestial-crucible/shared/protocol"
	"github.com/automoto/celestial-crucible/sim"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func main() {
	_ = godotenv.Load()

	addr := flag.String("server", envOr("CRUCIBLE_SERVER", fmt.Sprintf("localhost:%d", cfg.Net.Port)), "Server address (host:port)")
	name := flag.String("name", "bot", "Player name")
	version := flag.String("version", "", "Client version sent in the join request")
	scenario := flag.String("scenario", scripting.DefaultScenario, "Bundled scenario")
	scriptPath := flag.String("script", "", "Path to a tengo script (overrides -scenario)")
	seconds := flag.Float64("seconds", 0, "Seconds to play (0 = until interrupted)")
	logLevel := flag.String("log-level", os.Getenv("LOG_LEVEL"), "Log level (debug, info, warn, error)")
	flag.Parse()

	log := logging.For("bot")
	if err := logging.SetLevel(*logLevel); err != nil {
		log.WithError(err).Fatal("Bad log level")
	}
	if err := protocol.RegisterComponents(); err != nil {
		log.WithError(err).Fatal("Failed to register network components")
	}

	var script *scripting.Runner
	var err error
	if *scriptPath != "" {
		script, err = scripting.Load(os.DirFS(filepath.Dir(*scriptPath)), filepath.Base(*scriptPath))
	} else {
		script, err = scripting.Scenario(*scenario)
	}
	if err != nil {
		log.WithError(err).Fatal("Could not load script")
	}

	client := network.NewClient()
	client.Connect(*addr, *version, *name)
	defer client.Disconnect()

	if err := waitJoined(client, 10*time.Second); err != nil {
		log.WithError(err).Fatal("Could not join")
	}
	log.WithFields(logrus.Fields{
		"server": client.ServerName(),
		"level":  client.Level(),
		"script": script.Name(),
	}).Info("Playing")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	b := newBot(client, script, log)
	if err := b.play(*seconds, sigChan); err != nil {
		log.WithError(err).Fatal("Bot stopped")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func waitJoined(c *network.Client, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		switch c.State() {
		case network.StateJoinedGame:
			return nil
		case network.StateError:
			return c.LastError()
		}
		time.Sleep(20 * time.Millisecond)
	}
	return fmt.Errorf("no join reply after %s", timeout)
}

var remoteActors = donburi.NewQuery(filter.Contains(netcomponents.NetActor))

// bot turns script answers into wire input at the server's tick rate.
type bot struct {
	client *network.Client
	script *scripting.Runner
	log    *logrus.Entry

	world    donburi.World
	mirror   *network.Mirror
	own      netcomponents.NetActorData
	progress messages.ProgressEvent
	attacks  sim.AttackClock
	input    components.InputData
	seq      uint32
	elapsed  float64
}

func newBot(client *network.Client, script *scripting.Runner, log *logrus.Entry) *bot {
	return &bot{
		client: client,
		script: script,
		log:    log,
		world:  donburi.NewWorld(),
		mirror: network.NewMirror(),
	}
}

func (b *bot) play(seconds float64, stop <-chan os.Signal) error {
	rate := max(b.client.TickRate(), 1)
	dt := 1 / float64(rate)
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for seconds <= 0 || b.elapsed < seconds {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
		}
		if st := b.client.State(); st != network.StateJoinedGame {
			return fmt.Errorf("connection %s: %v", st, b.client.LastError())
		}
		if err := b.tick(dt); err != nil {
			return err
		}
		if b.seq%uint32(rate) == 0 {
			b.report()
		}
	}
	return nil
}

func (b *bot) tick(dt float64) error {
	b.receive()
	b.attacks.Update(dt, func(_ donburi.Entity, cycle int) {
		evt := messages.AnimationEvent{Kind: messages.AttackWindowOpen, Cycle: cycle}
		if err := b.client.SendMessage(evt); err != nil {
			b.log.WithError(err).Warn("Attack window not sent")
		}
	})

	out, err := b.script.Run(b.state(dt))
	if err != nil {
		return err
	}
	scripting.Apply(&b.input, out)

	b.seq++
	msg := network.EncodeInput(b.seq, &b.input, 0)
	if err := b.client.SendMessage(msg); err != nil {
		b.log.WithError(err).Debug("Input not sent")
	}
	b.input.Rollover()
	b.elapsed += dt
	return nil
}

func (b *bot) receive() {
	if snap := b.client.LatestSnapshot(); snap != nil {
		if own, ok := b.mirror.Apply(b.world, *snap, b.client.NetworkID()); ok {
			b.own = own
		}
	}
	if p, ok := b.client.LatestProgress(); ok {
		b.progress = p
	}
	for _, evt := range b.client.DrainAttackEvents() {
		b.attacks.Start(0, components.AttackType(evt.AttackType), evt.Cycle)
	}
}

// state is the script view built from the replicated actor.
func (b *bot) state(dt float64) scripting.State {
	return scripting.State{
		T:         b.elapsed,
		DT:        dt,
		X:         b.own.X,
		Y:         b.own.Y,
		Z:         b.own.Z,
		Speed:     b.own.Speed,
		Grounded:  b.own.Grounded,
		Swimming:  components.ModeID(b.own.Mode) == components.ModeSwimming,
		Attacking: b.own.Attacking,
		Stamina:   b.own.Stamina,
		Coins:     b.progress.Coins,
		Crucibles: b.progress.Crucibles,
	}
}

func (b *bot) report() {
	b.log.WithFields(logrus.Fields{
		"seq":       b.seq,
		"acked":     b.own.LastSequence,
		"pos":       fmt.Sprintf("(%.2f, %.2f, %.2f)", b.own.X, b.own.Y, b.own.Z),
		"mode":      components.ModeID(b.own.Mode),
		"coins":     b.progress.Coins,
		"crucibles": b.progress.Crucibles,
		"others":    remoteActors.Count(b.world),
	}).Info("Second elapsed")
}
