// Package config loads game settings from an HCL file, an optional .env
// file and SCORECOUNTER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/lox/scorecounter/internal/bowling"
)

// EnvPrefix is prepended to every environment variable the config reads
const EnvPrefix = "SCORECOUNTER_"

const (
	defaultLogLevel = "info"
	defaultLogFile  = "scorecounter.log"
)

// Palette is the colour assigned to players without an explicit colour, in
// seat order.
var Palette = []string{"cyan", "yellow", "red", "green", "white"}

// colors maps colour names to ANSI colour codes understood by lipgloss
var colors = map[string]string{
	"black":   "0",
	"red":     "9",
	"green":   "10",
	"yellow":  "11",
	"blue":    "12",
	"magenta": "13",
	"cyan":    "14",
	"white":   "15",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Config is the complete game configuration
type Config struct {
	Game    GameSettings
	Players []PlayerConfig
}

// GameSettings contains process-level settings
type GameSettings struct {
	Seed     int64  `hcl:"seed,optional" env:"SEED"`
	LogLevel string `hcl:"log_level,optional" env:"LOG_LEVEL"`
	LogFile  string `hcl:"log_file,optional" env:"LOG_FILE"`
}

// PlayerConfig defines one bowler
type PlayerConfig struct {
	Name  string `hcl:"name,label"`
	Color string `hcl:"color,optional"`
}

// fileConfig mirrors Config with an optional game block
type fileConfig struct {
	Game    *GameSettings  `hcl:"game,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

type envPlayers struct {
	Names []string `env:"PLAYERS" envSeparator:","`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Game: GameSettings{
			LogLevel: defaultLogLevel,
			LogFile:  defaultLogFile,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if fc.Game != nil {
		cfg.Game.Seed = fc.Game.Seed
		if fc.Game.LogLevel != "" {
			cfg.Game.LogLevel = fc.Game.LogLevel
		}
		if fc.Game.LogFile != "" {
			cfg.Game.LogFile = fc.Game.LogFile
		}
	}
	cfg.Players = fc.Players
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings with SCORECOUNTER_* environment variables.
// SCORECOUNTER_PLAYERS replaces the player list with comma separated names.
func (c *Config) ApplyEnv() error {
	opts := env.Options{Prefix: EnvPrefix}
	if err := env.ParseWithOptions(&c.Game, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	var ep envPlayers
	if err := env.ParseWithOptions(&ep, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if len(ep.Names) > 0 {
		c.SetPlayerNames(ep.Names)
	}
	return nil
}

// SetPlayerNames replaces the players, keeping the colour of any seat that
// already had one.
func (c *Config) SetPlayerNames(names []string) {
	players := make([]PlayerConfig, 0, len(names))
	for i, name := range names {
		p := PlayerConfig{Name: strings.TrimSpace(name)}
		if i < len(c.Players) {
			p.Color = c.Players[i].Color
		}
		players = append(players, p)
	}
	c.Players = players
}

// SetPlayerCount makes sure there are exactly n players, naming new seats
// "Player N".
func (c *Config) SetPlayerCount(n int) {
	if n < len(c.Players) {
		c.Players = c.Players[:n]
		return
	}
	for i := len(c.Players); i < n; i++ {
		c.Players = append(c.Players, PlayerConfig{})
	}
}

// Normalize fills in default player names and colours. With no players
// configured a single default player is added.
func (c *Config) Normalize() {
	if len(c.Players) == 0 {
		c.Players = []PlayerConfig{{}}
	}
	for i := range c.Players {
		if c.Players[i].Name == "" {
			c.Players[i].Name = fmt.Sprintf("Player %d", i+1)
		}
		if c.Players[i].Color == "" && i < len(Palette) {
			c.Players[i].Color = Palette[i]
		}
	}
	if c.Game.LogLevel == "" {
		c.Game.LogLevel = defaultLogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player must be configured")
	}
	if len(c.Players) > bowling.MaxPlayers {
		return fmt.Errorf("at most %d players allowed, got %d", bowling.MaxPlayers, len(c.Players))
	}

	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player names must not be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player %q", p.Name)
		}
		seen[p.Name] = true

		if _, err := ColorCode(p.Color); err != nil {
			return fmt.Errorf("player %s: %w", p.Name, err)
		}
	}

	if _, err := log.ParseLevel(c.Game.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.Game.LogLevel)
	}
	return nil
}

// BowlingPlayers converts the configured players for the engine
func (c *Config) BowlingPlayers() []bowling.Player {
	players := make([]bowling.Player, 0, len(c.Players))
	for _, p := range c.Players {
		code, _ := ColorCode(p.Color)
		players = append(players, bowling.Player{Name: p.Name, Color: code})
	}
	return players
}

// Level returns the parsed log level, falling back to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Game.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ColorCode resolves a colour name or #RRGGBB value to a lipgloss colour
// string. The empty colour resolves to the terminal default.
func ColorCode(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	if hexColor.MatchString(name) {
		return name, nil
	}
	if code, ok := colors[strings.ToLower(name)]; ok {
		return code, nil
	}
	return "", fmt.Errorf("unknown colour %q", name)
}
