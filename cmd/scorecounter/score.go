package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/scorecounter/internal/bowling"
	"github.com/lox/scorecounter/internal/config"
	"github.com/lox/scorecounter/internal/scoreboard"
)

type ScoreCmd struct {
	Name  string `help:"Player name (defaults to the first configured player)"`
	Rolls []int  `arg:"" help:"Pins knocked down by each shot, in order"`
}

func (c *ScoreCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig(c.apply)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg.Level())
	return c.score(os.Stdout, cfg.BowlingPlayers()[0], logger)
}

func (c *ScoreCmd) apply(cfg *config.Config) {
	if c.Name != "" {
		cfg.SetPlayerNames([]string{c.Name})
	} else {
		cfg.SetPlayerCount(1)
	}
}

// score plays the rolls for a single player and writes the score sheet. An
// unfinished game is printed as far as it got.
func (c *ScoreCmd) score(w io.Writer, player bowling.Player, logger *log.Logger) error {
	engine, err := bowling.NewEngine([]bowling.Player{player}, bowling.WithLogger(logger))
	if err != nil {
		return err
	}

	for i, pins := range c.Rolls {
		if _, err := engine.SubmitTurn(pins); err != nil {
			return fmt.Errorf("roll %d (%d pins): %w", i+1, pins, err)
		}
	}

	fmt.Fprint(w, scoreboard.Render(engine))
	session, _ := engine.Session(player.Name)
	if engine.IsOver() {
		fmt.Fprintf(w, "Final score: %d\n", session.Total())
	} else {
		fmt.Fprintf(w, "Score after frame %d: %d\n", session.ScoredFrames(), session.Total())
	}
	return nil
}
