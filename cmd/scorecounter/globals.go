package main

import (
	"fmt"

	"github.com/lox/scorecounter/internal/config"
)

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" help:"HCL configuration file" default:"scorecounter.hcl" type:"path"`
	EnvFile string `help:"Environment file loaded before SCORECOUNTER_* variables" default:".env" type:"path"`
	Debug   bool   `help:"Enable debug logging"`
	LogFile string `help:"Log file for the interactive game (overrides config)"`
	NoColor bool   `help:"Disable colours"`
}

// loadConfig builds the layered configuration. override runs after the file
// and environment layers and before defaults are filled in.
func (g *Globals) loadConfig(override func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.LoadDotEnv(g.EnvFile); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if g.Debug {
		cfg.Game.LogLevel = "debug"
	}
	if g.LogFile != "" {
		cfg.Game.LogFile = g.LogFile
	}
	if override != nil {
		override(cfg)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
