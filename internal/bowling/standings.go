package bowling

import (
	"cmp"
	"slices"
)

// Standing is a player's position in the game
type Standing struct {
	Player Player
	Score  int
}

// Standings returns every player ordered by total score, highest first.
// Players with equal scores keep their turn order.
func (e *Engine) Standings() []Standing {
	standings := make([]Standing, 0, len(e.players))
	for _, p := range e.players {
		standings = append(standings, Standing{Player: p, Score: e.sessions[p.Name].Total()})
	}
	slices.SortStableFunc(standings, func(a, b Standing) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return standings
}

// Winner returns the leading player. Before the game is over this is the
// current leader.
func (e *Engine) Winner() Standing {
	return e.Standings()[0]
}
