// dodger is a falling-block dodging game for the terminal.
//
// Usage:
//
//	dodger play [variant]    - Play in the terminal (default variant: dodger)
//	dodger list              - List available variants
//	dodger sim               - Run a headless, deterministic simulation
//	dodger config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom config YAML
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/block-dodger/internal/games/dodger"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Block Dodger - dodge falling shapes in your terminal",
	Long: `Block Dodger drops boxes, spheres, and tori toward a player that
slides left and right along the floor. Touching one ends the run; score
grows with the time you survive.

Available commands:
  play     - Play a variant
  list     - Show all available variants
  sim      - Headless deterministic run
  config   - Print the effective configuration

Examples:
  dodger play
  dodger play dodger-smooth --fps 30
  dodger sim --seed 42 --ticks 2000 --input sweep
  dodger config --config ./my-dodger.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
