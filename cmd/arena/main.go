// arena is a rock-paper-scissors particle simulation.
//
// Usage:
//
//	arena run                - Run the simulation in the terminal
//	arena run -f window      - Run it in a desktop window
//	arena census --ticks N   - Run headless and print the final census
//	arena list               - List available frontends
//	arena config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Arena configuration YAML
//	--theme <path>      - Theme YAML (sprites and colours)
//	--seed <value>      - RNG seed for reproducible runs
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/rps-arena/internal/platform/headless"
	_ "github.com/vovakirdan/rps-arena/internal/platform/tui"
	_ "github.com/vovakirdan/rps-arena/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagTheme    string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Rock-paper-scissors particle simulation",
	Long: `Arena fills a rectangle with rocks, papers and scissors that bounce
around at a fixed tick rate. Whenever two entities come close, the winner
converts the loser to its own kind.

Available commands:
  run      - Run the simulation
  census   - Run headless and print the final census
  list     - Show all available frontends
  config   - Print the effective configuration

Examples:
  arena run
  arena run --frontend window
  arena run --seed 42 --config ./configs/arena.yaml
  arena census --ticks 3600 --unpaced`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Path to theme YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, or random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(censusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
