package bowling

import "fmt"

// MaxPlayers is the largest number of players a game accepts
const MaxPlayers = 5

// Player identifies a bowler. Name is the identity and must be unique within
// a game. Color is an opaque display hint for adapters.
type Player struct {
	Name  string
	Color string
}

// String returns the player name
func (p Player) String() string {
	return p.Name
}

// Session holds the frames and cumulative scores of one player for the whole
// game. Frame numbers are 1-based.
type Session struct {
	player Player
	frames [NumFrames]Frame
	scores [NumFrames]int
	scored int
}

func newSession(p Player) *Session {
	s := &Session{player: p}
	for i := range s.frames {
		s.frames[i] = NewPending()
	}
	return s
}

// Player returns the owner of the session
func (s *Session) Player() Player {
	return s.player
}

// Frame returns frame n (1..10). It panics when n is out of range.
func (s *Session) Frame(n int) Frame {
	return s.frames[frameIndex(n)]
}

// Frames returns all ten frames in order
func (s *Session) Frames() []Frame {
	out := make([]Frame, NumFrames)
	copy(out, s.frames[:])
	return out
}

// CumulativeScore returns the running total through frame n (1..10)
func (s *Session) CumulativeScore(n int) int {
	return s.scores[frameIndex(n)]
}

// CumulativeScores returns the running totals for frames 1..10
func (s *Session) CumulativeScores() []int {
	out := make([]int, NumFrames)
	copy(out, s.scores[:])
	return out
}

// ScoredFrames returns how many leading frames the last recalculation covered
func (s *Session) ScoredFrames() int {
	return s.scored
}

// Total returns the running total through the last scored frame
func (s *Session) Total() int {
	if s.scored == 0 {
		return 0
	}
	return s.scores[s.scored-1]
}

func (s *Session) setFrame(n int, f Frame) {
	s.frames[frameIndex(n)] = f
}

func frameIndex(n int) int {
	if n < 1 || n > NumFrames {
		panic(fmt.Sprintf("frame %d out of range 1-%d", n, NumFrames))
	}
	return n - 1
}
