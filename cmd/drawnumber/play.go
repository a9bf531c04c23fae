package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/drawnumber/cmd/drawnumber/shared"
	"github.com/lox/drawnumber/internal/controller"
	"github.com/lox/drawnumber/internal/display"
	"github.com/lox/drawnumber/internal/game"
	"github.com/lox/drawnumber/internal/randutil"
	"github.com/lox/drawnumber/internal/settings"
	"github.com/lox/drawnumber/internal/tui"
)

type PlayCmd struct {
	Settings  string `kong:"default='drawnumber.hcl',help='HCL settings file (missing file uses defaults)'"`
	Config    string `kong:"help='Game configuration file, overrides the settings file'"`
	Seed      int64  `kong:"help='Random seed, 0 derives one from the clock'"`
	TUI       bool   `kong:"name='tui',help='Use the full-screen terminal UI instead of the console'"`
	Stdout    bool   `kong:"help='Also echo every result to stdout'"`
	LogFile   string `kong:"name='log-file',help='Also record every result to this file'"`
	AutoReset bool   `kong:"name='auto-reset',help='Draw a new number after a win or a loss'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
	NoColor   bool   `kong:"name='no-color',help='Disable colored output'"`
}

func (c *PlayCmd) Run() error {
	s, err := settings.Load(c.Settings)
	if err != nil {
		return err
	}
	c.apply(s)
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	logOut, closeLog, err := shared.OpenLogOutput(s.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := shared.SetupLogger(logOut, s.Log.Level, c.Debug)
	if err != nil {
		return err
	}

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	clock := quartz.NewReal()
	seed := randutil.ResolveSeed(s.Game.Seed, clock.Now())
	logger.Debug("Starting game", "seed", seed, "config", s.Game.ConfigFile)

	views, err := buildViews(s, logger, clock, c.NoColor)
	if err != nil {
		return err
	}

	ctrl, err := controller.New(controller.Options{
		ConfigPath: s.Game.ConfigFile,
		Defaults:   s.DefaultConfiguration(),
		Rand:       randutil.New(seed),
		AutoReset:  s.Game.AutoReset,
		Logger:     logger,
	}, views...)
	if err != nil {
		return errors.Join(err, closeViews(views))
	}

	ctx, stop := shared.SetupSignalHandler(context.Background(), logger)
	defer stop()

	return ctrl.Run(ctx)
}

// apply lets command line flags override the settings file
func (c *PlayCmd) apply(s *settings.Settings) {
	if c.Config != "" {
		s.Game.ConfigFile = c.Config
	}
	if c.Seed != 0 {
		s.Game.Seed = c.Seed
	}
	if c.AutoReset {
		s.Game.AutoReset = true
	}
	if c.TUI {
		s.Views.TUI = true
		s.Views.Console = false
	}
	if c.Stdout {
		s.Views.Stdout = true
	}
	if c.LogFile != "" {
		s.Views.LogFile = c.LogFile
	}
}

// buildViews creates the views selected in s. The interactive view comes
// first so it receives broadcasts before the passive ones.
func buildViews(s *settings.Settings, logger *log.Logger, clock quartz.Clock, noColor bool) ([]game.View, error) {
	var views []game.View

	switch {
	case s.Views.TUI:
		views = append(views, tui.NewView(logger))
	case s.Views.Console:
		var opts []display.ConsoleOption
		if noColor {
			opts = append(opts, display.WithColorProfile(termenv.Ascii))
		}
		views = append(views, display.NewConsoleView(os.Stdin, os.Stdout, logger, opts...))
	}

	if s.Views.Stdout {
		views = append(views, display.NewStreamView(os.Stdout, clock))
	}
	if s.Views.LogFile != "" {
		v, err := display.OpenStreamView(s.Views.LogFile, clock)
		if err != nil {
			return nil, errors.Join(err, closeViews(views))
		}
		views = append(views, v)
	}

	return views, nil
}

func closeViews(views []game.View) error {
	var errs []error
	for _, v := range views {
		if closer, ok := v.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}
