// junction is a four-way signalized intersection simulator for the terminal.
//
// Usage:
//
//	junction list                 - List available traffic scenarios
//	junction run [scenario]       - Run a scenario in the terminal (default: local)
//	junction generate             - Serve generated vehicles over TCP
//	junction serve                - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 30)
//	--seed <value>       - Set RNG seed for reproducible traffic
//	--config <path>      - Use a specific junction.yaml
//	--log-level <level>  - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-junction/internal/config"

	// Import scenarios to register them
	_ "github.com/vovakirdan/tui-junction/internal/scenarios"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "junction",
	Short: "Junction - a signalized intersection in your terminal",
	Long: `Junction simulates a four-way signalized intersection: vehicles arrive
on four roads, obey lane rules and a cycling traffic light, and leave on
their target road.

Available commands:
  list      - Show all traffic scenarios
  run       - Run a scenario in the terminal or headless
  generate  - Serve generated vehicles to network scenarios
  serve     - Start SSH server for remote viewing

Examples:
  junction list
  junction run
  junction run rush --density heavy
  junction generate --listen :8080
  junction run network --addr localhost:8080
  junction run local --headless --ticks 3000 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom junction.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default: from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (config.JunctionConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Simulation.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}
