package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/scorecounter/internal/bowling"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Game.LogLevel)
	assert.Equal(t, "scorecounter.log", cfg.Game.LogFile)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "game.hcl", `
game {
  seed      = 42
  log_level = "debug"
}

player "Alice" {
  color = "green"
}

player "Bob" {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Game.LogLevel)
	assert.Equal(t, "scorecounter.log", cfg.Game.LogFile, "unset values keep defaults")
	require.Len(t, cfg.Players, 2)
	assert.Equal(t, PlayerConfig{Name: "Alice", Color: "green"}, cfg.Players[0])
	assert.Equal(t, PlayerConfig{Name: "Bob"}, cfg.Players[1])

	cfg.Normalize()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "yellow", cfg.Players[1].Color, "palette fills by seat")
	assert.Equal(t, log.DebugLevel, cfg.Level())

	assert.Equal(t, []bowling.Player{
		{Name: "Alice", Color: "10"},
		{Name: "Bob", Color: "11"},
	}, cfg.BowlingPlayers())
}

func TestLoadWithoutGameBlock(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeFile(t, "game.hcl", `player "Solo" {}`))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Game.LogLevel)
	require.Len(t, cfg.Players, 1)
}

func TestLoadInvalidHCL(t *testing.T) {
	t.Parallel()

	_, err := Load(writeFile(t, "bad.hcl", `game {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse HCL")

	_, err = Load(writeFile(t, "unknown.hcl", `lanes = 4`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode HCL")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SCORECOUNTER_SEED", "7")
	t.Setenv("SCORECOUNTER_LOG_LEVEL", "warn")
	t.Setenv("SCORECOUNTER_PLAYERS", "Ann, Ben")

	cfg := Default()
	cfg.Game.LogFile = "custom.log"
	cfg.Players = []PlayerConfig{{Name: "Old", Color: "red"}}

	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.Equal(t, "warn", cfg.Game.LogLevel)
	assert.Equal(t, "custom.log", cfg.Game.LogFile, "unset variables leave values alone")
	assert.Equal(t, []PlayerConfig{{Name: "Ann", Color: "red"}, {Name: "Ben"}}, cfg.Players)
}

func TestApplyEnvInvalidSeed(t *testing.T) {
	t.Setenv("SCORECOUNTER_SEED", "lots")

	err := Default().ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, ".env", "SCORECOUNTER_LOG_FILE=from-dotenv.log\n")
	t.Setenv("SCORECOUNTER_LOG_FILE", "")
	require.NoError(t, os.Unsetenv("SCORECOUNTER_LOG_FILE"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-dotenv.log", os.Getenv("SCORECOUNTER_LOG_FILE"))

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestSetPlayerCount(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Players = []PlayerConfig{{Name: "Alice"}}
	cfg.SetPlayerCount(3)
	cfg.Normalize()

	require.Len(t, cfg.Players, 3)
	assert.Equal(t, "Alice", cfg.Players[0].Name)
	assert.Equal(t, "Player 2", cfg.Players[1].Name)
	assert.Equal(t, "Player 3", cfg.Players[2].Name)
	assert.Equal(t, "red", cfg.Players[2].Color)

	cfg.SetPlayerCount(1)
	assert.Len(t, cfg.Players, 1)
}

func TestNormalizeAddsDefaultPlayer(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Normalize()
	assert.Equal(t, []PlayerConfig{{Name: "Player 1", Color: "cyan"}}, cfg.Players)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		players []PlayerConfig
		level   string
		wantErr string
	}{
		{"valid", []PlayerConfig{{Name: "A", Color: "#FF00aa"}}, "info", ""},
		{"no players", nil, "info", "at least one player"},
		{"too many", []PlayerConfig{{Name: "1"}, {Name: "2"}, {Name: "3"}, {Name: "4"}, {Name: "5"}, {Name: "6"}}, "info", "at most 5"},
		{"duplicate", []PlayerConfig{{Name: "A"}, {Name: "A"}}, "info", "duplicate"},
		{"empty name", []PlayerConfig{{Name: ""}}, "info", "must not be empty"},
		{"bad colour", []PlayerConfig{{Name: "A", Color: "plaid"}}, "info", "unknown colour"},
		{"bad level", []PlayerConfig{{Name: "A"}}, "loud", "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Game: GameSettings{LogLevel: tt.level}, Players: tt.players}
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
