package tui

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strconv"

	"github.com/lox/scorecounter/internal/bowling"
	"github.com/lox/scorecounter/internal/randutil"
)

var (
	// ErrNotANumber is returned for input that is not a pin count
	ErrNotANumber = errors.New("not a pin count")
	// ErrTooManyPins is returned for a pin count above the pins standing
	ErrTooManyPins = errors.New("too many pins")
)

// invalidInput returns the prompt message for a rejected input
func invalidInput(err error) string {
	if errors.Is(err, ErrTooManyPins) {
		return "Invalid input! That would be too many pins."
	}
	return "Invalid input! Please enter the number of pins knocked last turn."
}

// parsePins turns prompt input into a pin count. Blank input rolls a random
// count between 1 and the pins standing.
func parsePins(input string, remaining int, rng *rand.Rand) (int, error) {
	if input == "" {
		return randutil.Pins(rng, min(1, remaining), remaining), nil
	}
	pins, err := strconv.Atoi(input)
	if err != nil || pins < 0 {
		return 0, ErrNotANumber
	}
	if pins > remaining {
		return 0, ErrTooManyPins
	}
	return pins, nil
}

// announce returns the message shown after a shot. remaining is the number of
// pins standing after the shot.
func announce(outcome bowling.TurnOutcome, player bowling.Player, frame, pins, remaining int, winner bowling.Standing) string {
	switch outcome {
	case bowling.Strike:
		return "WOOHOO!!! Congratulations, you got a STRIKE!"
	case bowling.Spare:
		return "Way to go! That was a SPARE!"
	case bowling.AnotherShot:
		if frame == bowling.NumFrames {
			return "Nice try!"
		}
		if pins > 5 {
			return fmt.Sprintf("Nice! Only %d to go.", remaining)
		}
		return fmt.Sprintf("Ouch! Good luck with the %d remaining ones.", remaining)
	case bowling.OpenFrame:
		return "Frame is LEFT OPEN. Better luck next time!"
	case bowling.PlayerFinished:
		return fmt.Sprintf("%s is out!", player.Name)
	case bowling.GameOver:
		return fmt.Sprintf("GAME OVER!!! Player %s is the winner, with a score of %d!", winner.Player.Name, winner.Score)
	default:
		return ""
	}
}
