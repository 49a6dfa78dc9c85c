package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rps-arena/internal/engine"
	"github.com/vovakirdan/rps-arena/internal/registry"
)

var (
	flagFrontend string
	flagTicks    uint64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation",
	Long: `Run the simulation until you quit.

Controls:
  Q/Esc      - Quit
  Ctrl+C     - Quit (terminal)
  Close box  - Quit (window)

Examples:
  arena run
  arena run --frontend window
  arena run --frontend headless --ticks 600
  arena run --seed 7 --theme ./configs/theme.yaml`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "terminal", "Frontend to use (see 'arena list')")
	runCmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = run until quit)")
}

func runRun(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'arena list' to see available frontends", flagFrontend)
	}

	s, err := startup(flagFrontend == "terminal")
	if err != nil {
		return err
	}
	defer s.close()

	display, err := registry.Open(flagFrontend, registry.Options{
		Config: s.cfg,
		Theme:  s.theme,
		Logger: s.logger,
	})
	if err != nil {
		s.logger.Error("cannot open frontend", "frontend", flagFrontend, "err", err)
		return err
	}
	//nolint:errcheck // Best-effort cleanup
	defer display.Close()

	loop := engine.New(s.cfg, s.populate(), display,
		engine.AnyQuit(display, engine.TickLimit(flagTicks)),
		engine.WithLogger(s.logger),
		engine.WithBackground(s.theme.Background),
	)

	if err := display.Drive(loop); err != nil {
		s.logger.Error("frontend failed", "frontend", flagFrontend, "err", err)
		return err
	}

	s.logger.Debug("final census", "census", loop.Census(), "ticks", loop.Stats().Ticks)
	return nil
}
