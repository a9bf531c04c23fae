package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/drawnumber/internal/controller"
	"github.com/lox/drawnumber/internal/fileutil"
	"github.com/lox/drawnumber/internal/game"
)

// ConfigCmd groups the configuration file utilities.
type ConfigCmd struct {
	Init  ConfigInitCmd  `cmd:"" help:"Write a game configuration file"`
	Check ConfigCheckCmd `cmd:"" help:"Parse a game configuration file and report the result"`
}

// ConfigInitCmd writes a key/value configuration file.
type ConfigInitCmd struct {
	Path     string `arg:"" optional:"" default:"config.yml" help:"Destination file"`
	Minimum  int    `default:"1" help:"Lowest number that can be drawn"`
	Maximum  int    `default:"100" help:"Highest number that can be drawn"`
	Attempts int    `default:"10" help:"Attempts per game"`
	Force    bool   `help:"Overwrite an existing file"`
}

func (cmd *ConfigInitCmd) Run(k *kong.Context) error {
	return cmd.write(k.Stdout)
}

func (cmd *ConfigInitCmd) write(out io.Writer) error {
	cfg := game.NewConfiguration(cmd.Minimum, cmd.Maximum, cmd.Attempts)
	if !cfg.IsConsistent() {
		return fmt.Errorf("%w: %s", game.ErrInvalidConfiguration, cfg)
	}

	if !cmd.Force {
		if _, err := os.Stat(cmd.Path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", cmd.Path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	err := fileutil.WriteAtomic(cmd.Path, 0o644, func(w io.Writer) error {
		return controller.WriteConfiguration(w, cfg)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s: %s\n", cmd.Path, cfg)
	return nil
}

// ConfigCheckCmd parses a configuration file the way the game does.
type ConfigCheckCmd struct {
	Path string `arg:"" optional:"" default:"config.yml" help:"Configuration file to check"`
}

func (cmd *ConfigCheckCmd) Run(k *kong.Context) error {
	return cmd.check(k.Stdout)
}

func (cmd *ConfigCheckCmd) check(out io.Writer) error {
	cfg, warnings, err := controller.ParseConfigurationFile(cmd.Path)
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if err != nil {
		return err
	}
	if !cfg.IsConsistent() {
		return fmt.Errorf("%s: %w: %s", cmd.Path, game.ErrInvalidConfiguration, cfg)
	}

	fmt.Fprintf(out, "%s: %s\n", cmd.Path, cfg)
	return nil
}
