package bowling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPinCount is returned when a submission cannot be applied to the
	// active frame. The engine state is left unchanged.
	ErrInvalidPinCount = errors.New("invalid pin count")

	// ErrInvalidPlayers is returned by NewEngine for an unusable player list
	ErrInvalidPlayers = errors.New("invalid players")

	// ErrInvariantViolation marks misuse of the engine that a correct caller
	// never triggers.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrGameOver is returned by operations that need an active player after
	// the game has ended.
	ErrGameOver = fmt.Errorf("%w: game is over", ErrInvariantViolation)
)

func invalidPins(pins int, format string, args ...any) error {
	return fmt.Errorf("%w: %d: %s", ErrInvalidPinCount, pins, fmt.Sprintf(format, args...))
}
