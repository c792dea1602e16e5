package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/scorecounter/internal/bowling"
)

// PerfectScore is the score of twelve strikes in a row
const PerfectScore = 300

// GameResult is the final line of one player in one simulated game
type GameResult struct {
	Score      int   // Final total
	Seed       int64 // RNG seed of the game (for replay)
	Seat       int   // Seat in the turn order (1-5)
	Strikes    int   // Frames opened with a strike
	Spares     int   // Frames completed with a spare
	OpenFrames int   // Frames left open
}

// FromSession counts the frame kinds of a finished session. Frame 10 counts
// as a strike or spare from its first two shots.
func FromSession(s *bowling.Session, seat int, seed int64) GameResult {
	r := GameResult{Score: s.Total(), Seed: seed, Seat: seat}
	for _, f := range s.Frames() {
		switch f.Kind() {
		case bowling.KindStrike:
			r.Strikes++
		case bowling.KindSpare:
			r.Spares++
		case bowling.KindOpen:
			r.OpenFrames++
		case bowling.KindLastFrame:
			first, _ := f.Shot(0)
			second, _ := f.Shot(1)
			switch {
			case first == bowling.MaxPins:
				r.Strikes++
			case first+second == bowling.MaxPins:
				r.Spares++
			default:
				r.OpenFrames++
			}
		}
	}
	return r
}

// SeatStats tracks results for one seat in the turn order
type SeatStats struct {
	Games    int
	SumScore float64
}

// Statistics accumulates simulated game results
type Statistics struct {
	Games    int
	SumScore float64
	SumSq    float64   // Sum of squares for variance calculation
	Values   []float64 // All scores for median/percentile calculation

	Strikes      int
	Spares       int
	OpenFrames   int
	PerfectGames int
	MaxScore     int
	MinScore     int

	SeatResults [bowling.MaxPlayers + 1]SeatStats // Index 0 unused
}

// Add incorporates a game result
func (s *Statistics) Add(result GameResult) {
	score := float64(result.Score)
	if s.Games == 0 || result.Score > s.MaxScore {
		s.MaxScore = result.Score
	}
	if s.Games == 0 || result.Score < s.MinScore {
		s.MinScore = result.Score
	}

	s.Games++
	s.SumScore += score
	s.SumSq += score * score
	s.Values = append(s.Values, score)

	s.Strikes += result.Strikes
	s.Spares += result.Spares
	s.OpenFrames += result.OpenFrames
	if result.Score == PerfectScore {
		s.PerfectGames++
	}

	if seat := result.Seat; seat >= 1 && seat <= bowling.MaxPlayers {
		s.SeatResults[seat].Games++
		s.SeatResults[seat].SumScore += score
	}
}

// Merge adds every result accumulated by other
func (s *Statistics) Merge(other *Statistics) {
	if other.Games == 0 {
		return
	}
	if s.Games == 0 || other.MaxScore > s.MaxScore {
		s.MaxScore = other.MaxScore
	}
	if s.Games == 0 || other.MinScore < s.MinScore {
		s.MinScore = other.MinScore
	}
	s.Games += other.Games
	s.SumScore += other.SumScore
	s.SumSq += other.SumSq
	s.Values = append(s.Values, other.Values...)
	s.Strikes += other.Strikes
	s.Spares += other.Spares
	s.OpenFrames += other.OpenFrames
	s.PerfectGames += other.PerfectGames
	for i := range s.SeatResults {
		s.SeatResults[i].Games += other.SeatResults[i].Games
		s.SeatResults[i].SumScore += other.SeatResults[i].SumScore
	}
}

// Mean returns the average score per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumScore / float64(s.Games)
}

// Variance returns the sample variance of the scores
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.Games)*mean*mean) / float64(s.Games-1)
	return math.Max(v, 0)
}

// StdDev returns the sample standard deviation of the scores
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median score
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the score at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatMean returns the average score of a seat (1-5)
func (s *Statistics) SeatMean(seat int) float64 {
	if seat < 1 || seat > bowling.MaxPlayers {
		return 0
	}
	ss := s.SeatResults[seat]
	if ss.Games == 0 {
		return 0
	}
	return ss.SumScore / float64(ss.Games)
}

// StrikeRate returns the share of frames opened with a strike
func (s *Statistics) StrikeRate() float64 {
	frames := s.Strikes + s.Spares + s.OpenFrames
	if frames == 0 {
		return 0
	}
	return float64(s.Strikes) / float64(frames)
}

// Validate checks that the accumulated counters agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	frames := s.Strikes + s.Spares + s.OpenFrames
	if want := s.Games * bowling.NumFrames; frames != want {
		return fmt.Errorf("frame total (%d) does not match %d games of %d frames",
			frames, s.Games, bowling.NumFrames)
	}

	if s.MinScore < 0 || s.MaxScore > PerfectScore || s.MinScore > s.MaxScore {
		return fmt.Errorf("score range [%d, %d] out of bounds", s.MinScore, s.MaxScore)
	}

	if s.PerfectGames > s.Games {
		return fmt.Errorf("perfect games (%d) exceeds total games (%d)", s.PerfectGames, s.Games)
	}

	totalSeatGames := 0
	for seat := 1; seat <= bowling.MaxPlayers; seat++ {
		totalSeatGames += s.SeatResults[seat].Games
	}
	if totalSeatGames != s.Games {
		return fmt.Errorf("seat games total (%d) does not match total games (%d)",
			totalSeatGames, s.Games)
	}

	return nil
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}
