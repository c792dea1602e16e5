package main

import (
	"fmt"
	"os"

	"github.com/lox/scorecounter/internal/randutil"
	"github.com/lox/scorecounter/internal/simulator"
)

type SimulateCmd struct {
	Games   int     `short:"g" default:"1000" help:"Number of games to simulate"`
	Players int     `short:"n" default:"1" help:"Players per game"`
	Workers int     `short:"w" help:"Parallel workers (0 = GOMAXPROCS)"`
	Bowler  string  `default:"uniform" enum:"uniform,skilled,perfect" help:"Bowler strategy (uniform|skilled|perfect)"`
	Skill   float64 `default:"0.3" help:"Strike probability of the skilled bowler"`
	Seed    int64   `help:"Base seed (0 for config or time based)"`

	WriteStats string `help:"Write a JSON summary to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig(nil)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg.Level())

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = randutil.TimeSeed()
	}

	sim, err := simulator.New(simulator.Config{
		Games:   c.Games,
		Players: c.Players,
		Seed:    seed,
		Workers: c.Workers,
		Bowler:  c.Bowler,
		Skill:   c.Skill,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	result, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Seed: %d\n", seed)
	simulator.PrintSummary(os.Stdout, result)

	if c.WriteStats != "" {
		if err := simulator.WriteStats(c.WriteStats, result); err != nil {
			return err
		}
		logger.Info("Wrote stats", "path", c.WriteStats)
	}
	return nil
}
