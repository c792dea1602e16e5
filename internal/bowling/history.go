package bowling

import (
	"slices"
	"time"
)

// Roll is one accepted submission
type Roll struct {
	Player  Player
	Frame   int // 1-based frame number
	Shot    int // 0-based shot index within the frame
	Pins    int
	Outcome TurnOutcome
	At      time.Time
}

// History returns every accepted submission in the order it was made
func (e *Engine) History() []Roll {
	return slices.Clone(e.history)
}

// RollsFor returns the accepted submissions of a single player
func (e *Engine) RollsFor(name string) []Roll {
	var rolls []Roll
	for _, r := range e.history {
		if r.Player.Name == name {
			rolls = append(rolls, r)
		}
	}
	return rolls
}
