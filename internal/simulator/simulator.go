package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/scorecounter/internal/bowling"
	"github.com/lox/scorecounter/internal/randutil"
	"github.com/lox/scorecounter/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Players int
	Seed    int64
	Workers int // defaults to GOMAXPROCS
	Bowler  string
	Skill   float64 // strike probability of the skilled bowler
	Logger  *log.Logger
	Clock   quartz.Clock
}

// Result is the outcome of a simulation run
type Result struct {
	Stats   *statistics.Statistics
	Bowler  string
	Players int
	Elapsed time.Duration
}

// Simulator plays independent bowling games in parallel
type Simulator struct {
	config Config
	bowler Bowler
	logger *log.Logger
}

// New creates a simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", config.Games)
	}
	if config.Players < 1 || config.Players > bowling.MaxPlayers {
		return nil, fmt.Errorf("players must be between 1 and %d, got %d", bowling.MaxPlayers, config.Players)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	config.Workers = min(config.Workers, config.Games)
	if config.Bowler == "" {
		config.Bowler = UniformBowler
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}

	bowler, err := NewBowler(config.Bowler, config.Skill)
	if err != nil {
		return nil, err
	}

	return &Simulator{
		config: config,
		bowler: bowler,
		logger: config.Logger.WithPrefix("simulator"),
	}, nil
}

// Run plays every game and returns the aggregated per-player results. Game
// i is seeded with Seed+i, so results do not depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	start := s.config.Clock.Now()
	s.logger.Info("Starting simulation",
		"games", s.config.Games,
		"players", s.config.Players,
		"bowler", s.config.Bowler,
		"workers", s.config.Workers)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, s.config.Workers)

	for w := 0; w < s.config.Workers; w++ {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			for game := w; game < s.config.Games; game += s.config.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := s.playGame(game, stats); err != nil {
					return err
				}
			}

			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.config.Clock.Since(start)
	s.logger.Info("Simulation finished", "games", s.config.Games, "mean", total.Mean(), "elapsed", elapsed)

	return &Result{
		Stats:   total,
		Bowler:  s.config.Bowler,
		Players: s.config.Players,
		Elapsed: elapsed,
	}, nil
}

// playGame plays one complete game and adds every player's line to stats
func (s *Simulator) playGame(game int, stats *statistics.Statistics) error {
	seed := s.config.Seed + int64(game)
	rng := randutil.New(seed)

	players := make([]bowling.Player, s.config.Players)
	for i := range players {
		players[i] = bowling.Player{Name: fmt.Sprintf("Bowler %d", i+1)}
	}

	engine, err := bowling.NewEngine(players,
		bowling.WithLogger(s.config.Logger),
		bowling.WithClock(s.config.Clock))
	if err != nil {
		return err
	}

	for !engine.IsOver() {
		pins := s.bowler.Roll(rng, engine.RemainingPins())
		if _, err := engine.SubmitTurn(pins); err != nil {
			return fmt.Errorf("game %d (seed %d): %w", game, seed, err)
		}
	}

	for i, session := range engine.Sessions() {
		stats.Add(statistics.FromSession(session, i+1, seed))
	}
	s.logger.Debug("Game finished", "game", game, "seed", seed, "winner", engine.Winner().Player.Name)
	return nil
}
