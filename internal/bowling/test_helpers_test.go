package bowling

import (
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"
)

type testEngineOption func(*testEngineBuilder)

type testEngineBuilder struct {
	players []Player
	clock   quartz.Clock
}

func withPlayers(names ...string) testEngineOption {
	return func(b *testEngineBuilder) {
		b.players = b.players[:0]
		for _, name := range names {
			b.players = append(b.players, Player{Name: name})
		}
	}
}

func withClock(clock quartz.Clock) testEngineOption {
	return func(b *testEngineBuilder) { b.clock = clock }
}

// newTestEngine creates a single-player engine unless told otherwise
func newTestEngine(t *testing.T, opts ...testEngineOption) *Engine {
	t.Helper()
	b := &testEngineBuilder{players: []Player{{Name: "Alice"}}}
	for _, opt := range opts {
		opt(b)
	}

	var engineOpts []Option
	if b.clock != nil {
		engineOpts = append(engineOpts, WithClock(b.clock))
	}
	e, err := NewEngine(b.players, engineOpts...)
	require.NoError(t, err)
	return e
}

// roll submits every pin count and returns the outcomes
func roll(t *testing.T, e *Engine, pins ...int) []TurnOutcome {
	t.Helper()
	outcomes := make([]TurnOutcome, 0, len(pins))
	for _, p := range pins {
		outcome, err := e.SubmitTurn(p)
		require.NoError(t, err, "submitting %d in frame %d", p, e.CurrentFrame())
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func rollMany(t *testing.T, e *Engine, pins, times int) []TurnOutcome {
	t.Helper()
	shots := make([]int, times)
	for i := range shots {
		shots[i] = pins
	}
	return roll(t, e, shots...)
}

func session(t *testing.T, e *Engine, name string) *Session {
	t.Helper()
	s, ok := e.Session(name)
	require.True(t, ok, "no session for %s", name)
	return s
}
