package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rps-arena/internal/assets"
	"github.com/vovakirdan/rps-arena/internal/config"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

// session holds everything loaded at startup.
type session struct {
	cfg    config.Config
	theme  *assets.Theme
	logger *log.Logger
	logOut io.Closer
}

// newLogger builds the process logger. quiet raises the level to errors
// when logs would share the terminal with a full-screen frontend.
func newLogger(quiet bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	} else if quiet && level < log.ErrorLevel {
		level = log.ErrorLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "arena",
		Level:           level,
	})
	return logger, closer, nil
}

// startup loads the configuration and theme. Any failure is reported on the
// logger and returned; callers exit with status 1.
func startup(quietLogs bool) (*session, error) {
	logger, closer, err := newLogger(quietLogs)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger, logOut: closer}

	s.cfg, err = config.Load(flagConfig)
	if err != nil {
		logger.Error("cannot load configuration", "err", err)
		s.close()
		return nil, err
	}
	if flagSeed != 0 {
		s.cfg.Seed = flagSeed
	}
	if s.cfg.Seed == 0 {
		s.cfg.Seed = time.Now().UnixNano()
	}

	s.theme, err = assets.Load(flagTheme)
	if err != nil {
		logger.Error("cannot load theme", "err", err)
		s.close()
		return nil, err
	}

	logger.Debug("configuration loaded",
		"arena", fmt.Sprintf("%dx%d", s.cfg.Arena.Width, s.cfg.Arena.Height),
		"population", s.cfg.Population.Total(),
		"resolution", s.cfg.Interaction.Resolution,
		"tick_rate", s.cfg.Timing.TickRate,
		"seed", s.cfg.Seed,
	)
	return s, nil
}

// populate builds the initial arena from the session seed.
func (s *session) populate() *sim.Arena {
	return sim.Populate(s.cfg, rand.New(rand.NewSource(s.cfg.Seed)))
}

func (s *session) close() {
	if s.logOut != nil {
		//nolint:errcheck // Best-effort close on exit
		s.logOut.Close()
	}
}
