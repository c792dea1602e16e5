package bowling

// TurnOutcome is the classification of a single submitted shot
type TurnOutcome int

const (
	// NoOutcome is returned alongside an error when nothing was applied
	NoOutcome TurnOutcome = iota
	// Strike knocked all ten pins down with the first shot of frames 1-9
	Strike
	// Spare cleared the rack with the second shot of frames 1-9
	Spare
	// AnotherShot means the same player throws again in the same frame
	AnotherShot
	// OpenFrame ended frames 1-9 with pins still standing
	OpenFrame
	// PlayerFinished means the player completed frame 10 and left the turn order
	PlayerFinished
	// GameOver means the last active player completed frame 10
	GameOver
)

// String returns the string representation of an outcome
func (o TurnOutcome) String() string {
	switch o {
	case Strike:
		return "strike"
	case Spare:
		return "spare"
	case AnotherShot:
		return "another-shot"
	case OpenFrame:
		return "open-frame"
	case PlayerFinished:
		return "player-finished"
	case GameOver:
		return "game-over"
	case NoOutcome:
		return "none"
	default:
		return "unknown"
	}
}

// EndsTurn reports whether the outcome passes the turn to someone else
func (o TurnOutcome) EndsTurn() bool {
	return o != AnotherShot
}
