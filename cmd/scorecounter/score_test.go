package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/scorecounter/internal/bowling"
	"github.com/lox/scorecounter/internal/config"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestScoreCmd(t *testing.T) {
	t.Parallel()

	logger := log.New(io.Discard)
	alice := bowling.Player{Name: "Alice"}

	t.Run("perfect game", func(t *testing.T) {
		cmd := &ScoreCmd{Rolls: []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10}}

		var out bytes.Buffer
		require.NoError(t, cmd.score(&out, alice, logger))

		assert.Contains(t, out.String(), "Bowling ScoreCounter")
		assert.Contains(t, out.String(), "300")
		assert.Contains(t, out.String(), "Final score: 300\n")
	})

	t.Run("unfinished game", func(t *testing.T) {
		cmd := &ScoreCmd{Rolls: []int{3, 7, 4, 2, 10}}

		var out bytes.Buffer
		require.NoError(t, cmd.score(&out, alice, logger))

		// the strike in frame 3 counts without its bonus for now
		assert.Contains(t, out.String(), "Score after frame 3: 30\n")
	})

	t.Run("invalid roll", func(t *testing.T) {
		cmd := &ScoreCmd{Rolls: []int{6, 5}}

		err := cmd.score(io.Discard, alice, logger)
		require.ErrorIs(t, err, bowling.ErrInvalidPinCount)
		assert.Contains(t, err.Error(), "roll 2 (5 pins)")
	})

	t.Run("rolls after game over", func(t *testing.T) {
		rolls := make([]int, 21)
		cmd := &ScoreCmd{Rolls: rolls}

		err := cmd.score(io.Discard, alice, logger)
		require.ErrorIs(t, err, bowling.ErrGameOver)
		assert.Contains(t, err.Error(), "roll 21")
	})
}

func TestGlobalsLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scorecounter.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
game {
  seed      = 7
  log_level = "warn"
}

player "Alice" { color = "green" }
player "Bob" {}
`), 0o644))

	t.Run("file and flags", func(t *testing.T) {
		g := &Globals{Config: path, EnvFile: filepath.Join(dir, "missing.env"), Debug: true, LogFile: "game.log"}
		cfg, err := g.loadConfig(nil)
		require.NoError(t, err)

		assert.Equal(t, int64(7), cfg.Game.Seed)
		assert.Equal(t, "debug", cfg.Game.LogLevel)
		assert.Equal(t, "game.log", cfg.Game.LogFile)
		require.Len(t, cfg.Players, 2)
		assert.Equal(t, "green", cfg.Players[0].Color)
		assert.Equal(t, "yellow", cfg.Players[1].Color)
	})

	t.Run("env file and override", func(t *testing.T) {
		envFile := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("SCORECOUNTER_SEED=99\n"), 0o644))
		t.Cleanup(func() { os.Unsetenv("SCORECOUNTER_SEED") })

		g := &Globals{Config: path, EnvFile: envFile}
		cmd := &PlayCmd{Players: []string{"Carol", "Dave", "Eve"}}
		cfg, err := g.loadConfig(cmd.apply)
		require.NoError(t, err)

		assert.Equal(t, int64(99), cfg.Game.Seed)
		require.Len(t, cfg.Players, 3)
		assert.Equal(t, "Carol", cfg.Players[0].Name)
		assert.Equal(t, "green", cfg.Players[0].Color)
		assert.Equal(t, "red", cfg.Players[2].Color)
	})

	t.Run("invalid override", func(t *testing.T) {
		g := &Globals{Config: path, EnvFile: filepath.Join(dir, "missing.env")}
		cmd := &PlayCmd{Count: 6}
		_, err := g.loadConfig(cmd.apply)
		assert.Error(t, err)
	})

	t.Run("score defaults to one player", func(t *testing.T) {
		g := &Globals{Config: filepath.Join(dir, "missing.hcl"), EnvFile: filepath.Join(dir, "missing.env")}
		cmd := &ScoreCmd{}
		cfg, err := g.loadConfig(cmd.apply)
		require.NoError(t, err)

		require.Len(t, cfg.Players, 1)
		assert.Equal(t, "Player 1", cfg.Players[0].Name)
		assert.Equal(t, config.Palette[0], cfg.Players[0].Color)
	})
}
