package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/dash"
)

var (
	flagSimDifficulty string
	flagSimTicks      int
	flagSimTimeout    time.Duration
	flagSimAutopilot  bool
	flagSimRealtime   bool
	flagSimSave       bool
	flagSimSpectate   string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless with an autopilot",
	Long: `Simulate a run without a terminal UI.

The autopilot jumps when an obstacle in the player's rows is close. Runs
are unpaced unless --realtime or --spectate is given. By default the
simulated run works on a copy of the profile and nothing is saved.

Examples:
  dash sim --seed 42
  dash sim --difficulty hard --ticks 2000
  dash sim --autopilot=false
  dash sim --spectate :8080 --timeout 1m`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", string(config.TierEasy), "Difficulty tier: easy, medium, hard")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 0, "Stop after this many ticks (0 = until the run ends)")
	simCmd.Flags().DurationVar(&flagSimTimeout, "timeout", 0, "Stop after this wall-clock duration (0 = none)")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", true, "Let the autopilot jump")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace the run at --fps")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the run to the profile")
	simCmd.Flags().StringVar(&flagSimSpectate, "spectate", "", "Serve the run to spectators on this address")
}

// tickLimit cancels the run once the given tick has been published.
type tickLimit struct {
	limit  int
	cancel context.CancelFunc
}

func (t tickLimit) Frame(s dash.Snapshot) {
	if s.Tick >= t.limit {
		t.cancel()
	}
}

func runSim(_ *cobra.Command, _ []string) error {
	tier, err := config.ParseTier(flagSimDifficulty)
	if err != nil {
		return err
	}

	e, err := openEnv(false)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if flagSimTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagSimTimeout)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rc := dash.RunContext{
		Logger: e.logger.With("profile", e.profile.Name(), "mode", "sim"),
	}
	if flagSeed != 0 {
		rc.Rand = rand.New(rand.NewSource(flagSeed))
	}

	rec := e.record
	if flagSimSave {
		rc.Persister = e.profile
	} else {
		rec = rec.Clone()
	}

	var frames dash.Frames
	var intents chan core.Action
	if flagSimAutopilot {
		pilot := dash.NewAutopilot()
		intents = pilot.Intents
		frames = append(frames, pilot)
	}
	if flagSimTicks > 0 {
		frames = append(frames, tickLimit{limit: flagSimTicks, cancel: cancel})
	}
	if flagSimSpectate != "" {
		hub, srv, err := startSpectator(flagSimSpectate, e.store, e.logger)
		if err != nil {
			return err
		}
		defer stopSpectator(srv)
		frames = append(frames, hub)
		flagSimRealtime = true
	}
	if flagSimRealtime {
		rc.TickRate = flagFPS
	}
	rc.Frames = frames

	skin, err := pickSkin(e, "")
	if err != nil {
		return err
	}

	loop, err := dash.New(e.cfg, dash.RunConfig{Tier: tier, Skin: skin}, rec, rc)
	if err != nil {
		return err
	}

	started := time.Now()
	res := loop.Run(ctx, intents)
	e.logger.Info("simulation finished",
		"outcome", res.Outcome,
		"score", res.Score,
		"elapsed", time.Since(started).Round(time.Millisecond),
	)

	printResult(res)
	if !flagSimSave {
		fmt.Println("(simulation only, progress not saved)")
	}
	return nil
}
