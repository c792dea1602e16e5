package bowling

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Engine is the turn state machine of a bowling game
type Engine struct {
	players  []Player // turn order at game start
	active   []Player // players that have not finished frame 10
	sessions map[string]*Session

	current int // index into active
	frame   int // 1-based, shared by all players
	step    int // 0-based shot index within the frame
	over    bool

	history []Roll
	logger  *log.Logger
	clock   quartz.Clock
}

// NewEngine creates an engine for the given players in turn order. Every
// player starts with ten pending frames and a zero score.
func NewEngine(players []Player, opts ...Option) (*Engine, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: at least one player required", ErrInvalidPlayers)
	}
	if len(players) > MaxPlayers {
		return nil, fmt.Errorf("%w: at most %d players allowed, got %d", ErrInvalidPlayers, MaxPlayers, len(players))
	}

	sessions := make(map[string]*Session, len(players))
	for _, p := range players {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: player name must not be empty", ErrInvalidPlayers)
		}
		if _, dup := sessions[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate player %q", ErrInvalidPlayers, p.Name)
		}
		sessions[p.Name] = newSession(p)
	}

	e := &Engine{
		players:  slices.Clone(players),
		active:   slices.Clone(players),
		sessions: sessions,
		frame:    1,
		logger:   defaultLogger(),
		clock:    quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.logger.Debug("Game created", "players", len(players))
	return e, nil
}

// GetCurrentPlayer returns the player whose turn it is
func (e *Engine) GetCurrentPlayer() (Player, error) {
	if e.over {
		return Player{}, ErrGameOver
	}
	if e.current < 0 || e.current >= len(e.active) {
		return Player{}, fmt.Errorf("%w: no active player at index %d", ErrInvariantViolation, e.current)
	}
	return e.active[e.current], nil
}

// CurrentFrame returns the frame being played (1..10)
func (e *Engine) CurrentFrame() int {
	return e.frame
}

// CurrentShot returns the 0-based shot index within the current frame
func (e *Engine) CurrentShot() int {
	return e.step
}

// IsOver reports whether every player has finished frame 10
func (e *Engine) IsOver() bool {
	return e.over
}

// Players returns all players in their original turn order
func (e *Engine) Players() []Player {
	return slices.Clone(e.players)
}

// ActivePlayers returns the players still in the turn order
func (e *Engine) ActivePlayers() []Player {
	return slices.Clone(e.active)
}

// Session returns the session of the named player
func (e *Engine) Session(name string) (*Session, bool) {
	s, ok := e.sessions[name]
	return s, ok
}

// Sessions returns every session in the original turn order, including
// players that already finished.
func (e *Engine) Sessions() []*Session {
	out := make([]*Session, 0, len(e.players))
	for _, p := range e.players {
		out = append(out, e.sessions[p.Name])
	}
	return out
}

// RemainingPins returns the largest pin count the current player may submit.
// In frame 10 the rack is reset after a strike or a spare.
func (e *Engine) RemainingPins() int {
	if e.over {
		return 0
	}
	f := e.activeFrame()
	if e.frame < NumFrames {
		return MaxPins - f.PinsKnockedDown()
	}

	shots := f.shots
	switch len(shots) {
	case 0:
		return MaxPins
	case 1:
		if shots[0] == MaxPins {
			return MaxPins
		}
		return MaxPins - shots[0]
	case 2:
		if shots[0] == MaxPins {
			if shots[1] == MaxPins {
				return MaxPins
			}
			return MaxPins - shots[1]
		}
		if shots[0]+shots[1] == MaxPins {
			return MaxPins
		}
		return 0
	default:
		return 0
	}
}

// SubmitTurn applies a shot of pins to the active frame and returns how the
// shot was classified. An invalid submission returns ErrInvalidPinCount and
// changes nothing.
func (e *Engine) SubmitTurn(pins int) (TurnOutcome, error) {
	player, err := e.GetCurrentPlayer()
	if err != nil {
		return NoOutcome, err
	}
	if err := e.validate(pins); err != nil {
		e.logger.Debug("Rejected submission", "player", player.Name, "frame", e.frame, "pins", pins, "error", err)
		return NoOutcome, err
	}

	session := e.sessions[player.Name]
	prev := session.Frame(e.frame)
	outcome := e.classify(prev, pins)
	session.setFrame(e.frame, e.nextFrame(prev, outcome, pins))

	frame, step := e.frame, e.step
	recalculate(session)

	if e.frame < NumFrames {
		if outcome.EndsTurn() {
			e.advance()
		} else {
			e.step++
		}
	} else if outcome == PlayerFinished {
		e.logger.Info("Player finished", "player", player.Name, "score", session.Total())
		if e.finish() {
			outcome = GameOver
			e.logger.Info("Game over", "winner", e.Winner().Player.Name, "score", e.Winner().Score)
		}
	} else {
		e.step++
	}

	e.history = append(e.history, Roll{
		Player:  player,
		Frame:   frame,
		Shot:    step,
		Pins:    pins,
		Outcome: outcome,
		At:      e.clock.Now(),
	})

	e.logger.Debug("Shot submitted",
		"player", player.Name,
		"frame", frame,
		"shot", step,
		"pins", pins,
		"outcome", outcome,
		"total", session.Total())

	return outcome, nil
}

func (e *Engine) activeFrame() Frame {
	return e.sessions[e.active[e.current].Name].Frame(e.frame)
}

func (e *Engine) validate(pins int) error {
	if pins < 0 || pins > MaxPins {
		return invalidPins(pins, "must be between 0 and %d", MaxPins)
	}
	if remaining := e.RemainingPins(); pins > remaining {
		return invalidPins(pins, "only %d pins standing", remaining)
	}
	return nil
}

func (e *Engine) classify(f Frame, pins int) TurnOutcome {
	sum := f.PinsKnockedDown() + pins

	if e.frame < NumFrames {
		switch {
		case sum == MaxPins && e.step == 0:
			return Strike
		case sum == MaxPins:
			return Spare
		case e.step == 0:
			return AnotherShot
		default:
			return OpenFrame
		}
	}

	// Frame 10 always allows a second shot, and a third one after a strike
	// or spare.
	switch e.step {
	case 0:
		return AnotherShot
	case 1:
		if first, _ := f.Shot(0); first == MaxPins || sum == MaxPins {
			return AnotherShot
		}
		return PlayerFinished
	default:
		return PlayerFinished
	}
}

func (e *Engine) nextFrame(prev Frame, outcome TurnOutcome, pins int) Frame {
	switch {
	case e.frame == NumFrames:
		return NewLastFrame(prev.appendShot(pins)...)
	case outcome == Strike:
		return NewStrike()
	case outcome == Spare:
		first, _ := prev.Shot(0)
		return NewSpare(first, pins)
	default:
		return NewOpen(prev.appendShot(pins)...)
	}
}

// advance passes the turn within frames 1-9
func (e *Engine) advance() {
	if e.current == len(e.active)-1 {
		e.current = 0
		e.frame++
	} else {
		e.current++
	}
	e.step = 0
}

// finish removes the current player after frame 10 and reports whether
// nobody is left.
func (e *Engine) finish() bool {
	e.active = slices.Delete(e.active, e.current, e.current+1)
	if len(e.active) == 0 {
		e.over = true
		return true
	}
	if e.current >= len(e.active) {
		e.current = len(e.active) - 1
	}
	e.step = 0
	return false
}
