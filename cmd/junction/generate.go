package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-junction/internal/config"
	"github.com/vovakirdan/tui-junction/internal/spawn"
)

var (
	flagListen  string
	flagPattern string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Serve generated vehicles over TCP",
	Long: `Start a producer that sends spawn records to one client at a time.

Each record is a fixed 32-byte little-endian struct. Lane-2 vehicles are
sent straight across; lane-3 vehicles turn into the left-hand road's lane 1.

Examples:
  junction generate                       # Listen on :8080
  junction generate --listen :9000
  junction generate --pattern random      # Include illegal routes
  junction generate --density burst`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagListen, "listen", "", "Listen address (default: from config, :8080)")
	generateCmd.Flags().StringVar(&flagPattern, "pattern", "", "Route pattern: mixed, straight, random")
	generateCmd.Flags().StringVar(&flagDensity, "density", "", "Density preset: light, normal, heavy, burst")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	preset, ok := config.ParseDensity(flagDensity)
	if !ok {
		return fmt.Errorf("unknown density %q", flagDensity)
	}
	config.ApplyDensityPreset(&cfg, preset)
	if flagPattern != "" {
		cfg.Generator.Pattern = flagPattern
	}
	addr := cfg.Producer.Listen
	if flagListen != "" {
		addr = flagListen
	}

	logger, closer, err := newLogger(cfg.Log, "", "junction-gen")
	if err != nil {
		return err
	}
	defer closer.Close()

	gen, err := spawn.NewGenerator(cfg.GeneratorSettings(flagSeed))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving vehicles on %s\n", addr)
	fmt.Println("Connect with: junction run network --addr <host:port>")
	fmt.Println("Press Ctrl+C to stop")

	return spawn.NewProducer(addr, gen, logger).ListenAndServe(ctx)
}
