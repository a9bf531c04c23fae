// Package settings loads the HCL application settings: which views to attach,
// where the game configuration lives and the fallback bounds.
package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/drawnumber/internal/game"
)

// DefaultFile is the settings file looked up when none is given.
const DefaultFile = "drawnumber.hcl"

// Settings represents the complete application settings
type Settings struct {
	Game     GameSettings     `hcl:"game,block"`
	Defaults DefaultsSettings `hcl:"defaults,block"`
	Views    ViewSettings     `hcl:"views,block"`
	Log      LogSettings      `hcl:"log,block"`
}

// GameSettings controls where the configuration comes from and how games run
type GameSettings struct {
	ConfigFile string `hcl:"config_file,optional"`
	Seed       int64  `hcl:"seed,optional"`
	AutoReset  bool   `hcl:"auto_reset,optional"`
}

// DefaultsSettings are the bounds used when the configuration file is
// missing or inconsistent.
type DefaultsSettings struct {
	Minimum  int `hcl:"minimum,optional"`
	Maximum  int `hcl:"maximum,optional"`
	Attempts int `hcl:"attempts,optional"`
}

// ViewSettings selects the attached views
type ViewSettings struct {
	Console bool   `hcl:"console,optional"`
	TUI     bool   `hcl:"tui,optional"`
	Stdout  bool   `hcl:"stdout,optional"`
	LogFile string `hcl:"log_file,optional"`
}

// LogSettings contains diagnostic logging settings
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// file mirrors Settings with optional blocks for decoding.
type file struct {
	Game     *GameSettings  `hcl:"game,block"`
	Defaults *defaultsBlock `hcl:"defaults,block"`
	Views    *ViewSettings  `hcl:"views,block"`
	Log      *LogSettings   `hcl:"log,block"`
}

// defaultsBlock keeps unset bounds apart from an explicit zero.
type defaultsBlock struct {
	Minimum  *int `hcl:"minimum,optional"`
	Maximum  *int `hcl:"maximum,optional"`
	Attempts *int `hcl:"attempts,optional"`
}

// Default returns the default settings
func Default() *Settings {
	return &Settings{
		Game: GameSettings{
			ConfigFile: "config.yml",
		},
		Defaults: DefaultsSettings{
			Minimum:  1,
			Maximum:  100,
			Attempts: 10,
		},
		Views: ViewSettings{
			Console: true,
		},
		Log: LogSettings{
			Level: "error",
		},
	}
}

// Load reads settings from an HCL file. A missing file yields Default().
func Load(filename string) (*Settings, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes settings from HCL source and fills unset values from Default().
func Parse(src []byte, filename string) (*Settings, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	s := Default()
	if raw.Game != nil {
		if raw.Game.ConfigFile != "" {
			s.Game.ConfigFile = raw.Game.ConfigFile
		}
		s.Game.Seed = raw.Game.Seed
		s.Game.AutoReset = raw.Game.AutoReset
	}
	if d := raw.Defaults; d != nil {
		if d.Minimum != nil {
			s.Defaults.Minimum = *d.Minimum
		}
		if d.Maximum != nil {
			s.Defaults.Maximum = *d.Maximum
		}
		if d.Attempts != nil {
			s.Defaults.Attempts = *d.Attempts
		}
	}
	if raw.Views != nil {
		// A views block replaces the default selection entirely.
		s.Views = *raw.Views
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			s.Log.Level = raw.Log.Level
		}
		s.Log.File = raw.Log.File
	}

	return s, nil
}

// Validate validates the settings
func (s *Settings) Validate() error {
	if !s.DefaultConfiguration().IsConsistent() {
		return fmt.Errorf("default bounds are inconsistent: %s", s.DefaultConfiguration())
	}

	if !s.Views.Console && !s.Views.TUI && !s.Views.Stdout && s.Views.LogFile == "" {
		return errors.New("no views enabled, enable console, tui, stdout or log_file")
	}

	if s.Views.Console && s.Views.TUI {
		return fmt.Errorf("console and tui views both read the terminal, enable only one")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[s.Log.Level] {
		return fmt.Errorf("invalid log level: %s", s.Log.Level)
	}

	return nil
}

// DefaultConfiguration returns the fallback game configuration
func (s *Settings) DefaultConfiguration() game.Configuration {
	return game.NewConfiguration(s.Defaults.Minimum, s.Defaults.Maximum, s.Defaults.Attempts)
}
