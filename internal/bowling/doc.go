// Package bowling implements the core scoring logic for ten-pin bowling.
//
// The main type is Engine, which tracks whose turn it is, which frame and
// shot is active, classifies every submitted pin count into a TurnOutcome
// and keeps a cumulative score table per player.
//
// # Basic Usage
//
//	e, err := bowling.NewEngine([]bowling.Player{{Name: "Alice"}, {Name: "Bob"}})
//	if err != nil {
//	    return err
//	}
//	outcome, err := e.SubmitTurn(7)
//	if errors.Is(err, bowling.ErrInvalidPinCount) {
//	    // re-prompt, engine state is unchanged
//	}
//
// # Scoring
//
// Scores are recalculated for the submitting player after every shot. A
// strike or spare whose bonus shots have not been thrown yet is counted
// with the shots available so far, so totals shown mid-game can be lower
// than the final value.
//
// # Architecture
//
// Engine delegates to small value types:
//   - Frame: immutable shot history for one frame (Pending, Strike, Spare, Open, LastFrame)
//   - Session: the ten frames and cumulative scores of one player
//   - Roll: one accepted submission, recorded in the engine history
//
// The engine is synchronous and not safe for concurrent use. Run one engine
// per goroutine when simulating games in parallel.
package bowling
