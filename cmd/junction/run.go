package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/core"
	"github.com/vovakirdan/tui-junction/internal/junction"
	"github.com/vovakirdan/tui-junction/internal/platform/tui"
	"github.com/vovakirdan/tui-junction/internal/registry"
)

var (
	flagDensity  string
	flagAddr     string
	flagHeadless bool
	flagTicks    int
	flagLogFile  string
)

var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Run a traffic scenario",
	Long: `Run the intersection with the given scenario (default: local).

Controls:
  P/Space    - Pause
  N          - Single step while paused
  Ctrl+S     - Save a text screenshot to ~/.junction/screenshots
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Density presets:
  light   - Sparse arrivals
  normal  - Config values unchanged
  heavy   - Frequent arrivals
  burst   - Platoons of several vehicles at once

Headless mode runs without a terminal UI and logs to stderr. With --ticks
the signal runs on a fixed-step clock, so the same --seed always produces
the same result; without it the run lasts until interrupted.

Examples:
  junction run
  junction run straight --density heavy
  junction run network --addr localhost:8080
  junction run rush --headless --ticks 5000 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagDensity, "density", "", "Density preset: light, normal, heavy, burst")
	runCmd.Flags().StringVar(&flagAddr, "addr", "", "Producer host:port for the network scenario (default: from config)")
	runCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without the terminal UI")
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Headless: stop after N ticks (0 = run until interrupted)")
	runCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (default: from config; headless logs to stderr)")
}

func runRun(cmd *cobra.Command, args []string) error {
	scenario := "local"
	if len(args) > 0 {
		scenario = args[0]
	}
	if !registry.Exists(scenario) {
		return fmt.Errorf("unknown scenario %q; run 'junction list' to see available scenarios", scenario)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	preset, ok := config.ParseDensity(flagDensity)
	if !ok {
		return fmt.Errorf("unknown density %q", flagDensity)
	}
	config.ApplyDensityPreset(&cfg, preset)
	if flagAddr != "" {
		cfg.Producer.Addr = flagAddr
	}

	logPath := cfg.Log.File
	if flagLogFile != "" {
		logPath = flagLogFile
	}
	if flagHeadless && flagLogFile == "" {
		logPath = ""
	}
	logger, closer, err := newLogger(cfg.Log, logPath, "junction")
	if err != nil {
		return err
	}
	defer closer.Close()

	runID := uuid.NewString()
	logger = logger.With("run", runID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var clock junction.Clock = junction.SystemClock{}
	var manual *junction.ManualClock
	if flagHeadless && flagTicks > 0 {
		manual = junction.NewManualClock(time.Unix(0, 0))
		clock = manual
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Clock = clock

	src, err := registry.Create(scenario, registry.Env{
		Ctx:    ctx,
		Config: cfg,
		Seed:   flagSeed,
		Clock:  clock,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	sim := junction.New(opts, src, logger)
	logger.Info("simulation started",
		"scenario", scenario,
		"density", preset,
		"tick_rate", cfg.Simulation.TickRate,
		"dwell", opts.Dwell,
		"seed", flagSeed,
	)

	var final junction.Snapshot
	if flagHeadless {
		final = runHeadless(ctx, sim, cfg, manual, logger)
	} else {
		final, err = runTUI(sim, scenario, runID, cfg)
	}

	if closeErr := sim.Close(); closeErr != nil {
		logger.Warn("closing spawn source", "error", closeErr)
	}
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	printSummary(scenario, runID, final)
	return nil
}

// runTUI runs the Bubble Tea front end until the user quits.
func runTUI(sim *junction.Simulation, scenario, runID string, cfg config.JunctionConfig) (junction.Snapshot, error) {
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if cfg.Simulation.TickRate > 0 {
		rc.TickRate = cfg.Simulation.TickRate
	}
	return tui.Run(sim, scenario, runID, rc, nil)
}

// runHeadless steps the simulation without a UI. With a manual clock it runs
// flagTicks fixed steps as fast as possible; otherwise it ticks in real time
// until ctx is cancelled.
func runHeadless(ctx context.Context, sim *junction.Simulation, cfg config.JunctionConfig, manual *junction.ManualClock, logger *log.Logger) junction.Snapshot {
	interval := cfg.TickInterval()
	every := uint64(cfg.Simulation.TickRate) * 10
	if every == 0 {
		every = 300
	}

	var snap junction.Snapshot
	report := func() {
		logger.Info("progress",
			"tick", snap.Tick,
			"active", snap.Active,
			"queued", snap.Queued,
			"departed", snap.Stats.Departed,
			"dropped", snap.Stats.Dropped,
			"phase", sim.Signal().Phase(),
		)
	}

	if manual != nil {
		for i := 0; i < flagTicks; i++ {
			if ctx.Err() != nil {
				break
			}
			manual.Advance(interval)
			snap = sim.Step()
			if snap.Tick%every == 0 {
				report()
			}
		}
		return snap
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return snap
		case <-ticker.C:
			snap = sim.Step()
			if snap.Tick%every == 0 {
				report()
			}
		}
	}
}

// printSummary writes the final counters to stdout.
func printSummary(scenario, runID string, snap junction.Snapshot) {
	st := snap.Stats
	fmt.Printf("Scenario %s (run %s) stopped after %d ticks\n", scenario, runID, snap.Tick)
	fmt.Printf("  spawned   %6d   admitted  %6d   departed %6d\n", st.Spawned, st.Admitted, st.Departed)
	fmt.Printf("  dropped   %6d   rejected  %6d   switches %6d\n", st.Dropped, st.Rejected, st.Switches)
	fmt.Printf("  held red  %6d   held illegal %3d\n", st.HeldRed, st.HeldIllegal)
	fmt.Printf("  active at exit %d, queued at exit %d\n", snap.Active, snap.Queued)
}
