package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rps-arena/internal/engine"
	"github.com/vovakirdan/rps-arena/internal/platform/headless"
	"github.com/vovakirdan/rps-arena/internal/registry"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

var (
	flagCensusTicks uint64
	flagUnpaced     bool
)

var censusCmd = &cobra.Command{
	Use:   "census",
	Short: "Run headless and print the final census",
	Long: `Run the simulation without drawing anything and print how many
entities of each kind are left when it stops.

The run stops after --ticks ticks or on Ctrl+C. With --unpaced the loop
does not sleep between ticks, which is useful for long experiments.

Examples:
  arena census
  arena census --ticks 36000 --unpaced --seed 42`,
	Args: cobra.NoArgs,
	RunE: runCensus,
}

func init() {
	censusCmd.Flags().Uint64Var(&flagCensusTicks, "ticks", 600, "Number of ticks to simulate (0 = until Ctrl+C)")
	censusCmd.Flags().BoolVar(&flagUnpaced, "unpaced", false, "Do not sleep between ticks")
}

func runCensus(cmd *cobra.Command, args []string) error {
	s, err := startup(false)
	if err != nil {
		return err
	}
	defer s.close()

	display := headless.Open(registry.Options{
		Config: s.cfg,
		Theme:  s.theme,
		Logger: s.logger,
	})
	//nolint:errcheck // Best-effort cleanup
	defer display.Close()

	opts := []engine.Option{engine.WithLogger(s.logger)}
	if flagUnpaced {
		opts = append(opts, engine.WithoutPacing())
	}

	arena := s.populate()
	initial := arena.Census()
	loop := engine.New(s.cfg, arena, display,
		engine.AnyQuit(display, engine.TickLimit(flagCensusTicks)),
		opts...,
	)

	if err := display.Drive(loop); err != nil {
		s.logger.Error("simulation failed", "err", err)
		return err
	}

	stats := loop.Stats()
	final := loop.Census()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:        %d\n", s.cfg.Seed)
	fmt.Fprintf(out, "ticks:       %d\n", stats.Ticks)
	fmt.Fprintf(out, "conversions: %d\n", stats.Conversions)
	fmt.Fprintf(out, "overruns:    %d\n", stats.Overruns)
	fmt.Fprintf(out, "initial:     %s\n", initial)
	fmt.Fprintf(out, "final:       %s\n", final)
	if k, ok := winner(final); ok {
		fmt.Fprintf(out, "winner:      %s\n", k)
	}
	return nil
}

// winner reports the kind that converted everyone else, if any.
func winner(c sim.Census) (sim.Kind, bool) {
	for _, k := range sim.Kinds {
		if c.Total() > 0 && c.Count(k) == c.Total() {
			return k, true
		}
	}
	return 0, false
}
