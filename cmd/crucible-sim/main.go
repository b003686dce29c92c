// Command crucible-sim runs the simulation without a window, driving one
// actor from a tengo script.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cfg "github.com/automoto/celestial-crucible/config"
	"github.com/automoto/celestial-crucible/logging"
	"github.com/automoto/celestial-crucible/scripting"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	scenario := flag.String("scenario", scripting.DefaultScenario,
		"Bundled scenario ("+strings.Join(scripting.Scenarios(), ", ")+")")
	scriptPath := flag.String("script", "", "Path to a tengo script (overrides -scenario)")
	level := flag.String("level", "", "Level to load (empty = default)")
	profile := flag.String("profile", "mobile", "Locomotion profile (mobile, desktop)")
	seconds := flag.Float64("seconds", 30, "Simulated seconds to run")
	overrides := flag.String("config", os.Getenv("CRUCIBLE_CONFIG"), "YAML tuning overrides")
	tui := flag.Bool("tui", false, "Watch the run in the terminal")
	logLevel := flag.String("log-level", os.Getenv("LOG_LEVEL"), "Log level (debug, info, warn, error)")
	flag.Parse()

	log := logging.For("sim")
	if err := logging.SetLevel(*logLevel); err != nil {
		log.WithError(err).Fatal("Bad log level")
	}
	if *overrides != "" {
		if err := cfg.LoadOverrides(*overrides); err != nil {
			log.WithError(err).Fatal("Could not load tuning overrides")
		}
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

	r, err := newRun(runOptions{Level: *level, Profile: *profile, Seconds: *seconds}, script)
	if err != nil {
		log.WithError(err).Fatal("Could not start simulation")
	}

	if *tui {
		err = runTUI(r)
	} else {
		err = runHeadless(r, func(s summary) {
			log.WithFields(logrus.Fields{
				"tick":      s.Tick,
				"pos":       formatPos(s.State),
				"speed":     round2(s.State.Speed),
				"mode":      s.State.Mode,
				"stamina":   round2(s.State.Stamina),
				"coins":     s.Coins,
				"crucibles": s.Crucibles,
			}).Info("Second elapsed")
		})
	}
	if err != nil {
		log.WithError(err).Fatal("Simulation failed")
	}

	log.WithFields(logrus.Fields{
		"ticks":  r.sim.Ticks(),
		"digest": fmt.Sprintf("%016x", r.sim.Digest()),
	}).Info("Run complete")
}
