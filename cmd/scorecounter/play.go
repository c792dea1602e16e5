package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/scorecounter/internal/bowling"
	"github.com/lox/scorecounter/internal/config"
	"github.com/lox/scorecounter/internal/randutil"
	"github.com/lox/scorecounter/internal/scoreboard"
	"github.com/lox/scorecounter/internal/tui"
)

type PlayCmd struct {
	Players []string `short:"p" sep:"," help:"Player names in turn order"`
	Count   int      `short:"n" help:"Number of players when names are not given"`
	Seed    int64    `help:"Seed for random rolls (0 for config or time based)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig(c.apply)
	if err != nil {
		return err
	}

	logFile, err := openLogFile(cfg.Game.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()
	logger := newLogger(logFile, cfg.Level())

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = randutil.TimeSeed()
	}
	logger.Info("Starting game", "players", len(cfg.Players), "seed", seed)

	engine, err := bowling.NewEngine(cfg.BowlingPlayers(), bowling.WithLogger(logger))
	if err != nil {
		return err
	}

	model := tui.NewModel(engine, randutil.New(seed), logger)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if engine.IsOver() {
		fmt.Fprint(os.Stdout, scoreboard.Render(engine))
		fmt.Fprint(os.Stdout, scoreboard.Standings(engine))
	}
	return nil
}

func (c *PlayCmd) apply(cfg *config.Config) {
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	switch {
	case len(c.Players) > 0:
		cfg.SetPlayerNames(c.Players)
	case c.Count > 0:
		cfg.SetPlayerCount(c.Count)
	}
}
