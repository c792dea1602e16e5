package simulator

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/scorecounter/internal/randutil"
)

// Bowler decides how many of the standing pins a simulated shot knocks down
type Bowler interface {
	Roll(rng *rand.Rand, remaining int) int
}

// BowlerFunc adapts a function to the Bowler interface
type BowlerFunc func(rng *rand.Rand, remaining int) int

// Roll calls f
func (f BowlerFunc) Roll(rng *rand.Rand, remaining int) int {
	return f(rng, remaining)
}

// Bowler names accepted by NewBowler
const (
	UniformBowler = "uniform"
	SkilledBowler = "skilled"
	PerfectBowler = "perfect"
)

// Uniform knocks down a uniformly random number of the standing pins
func Uniform() Bowler {
	return BowlerFunc(func(rng *rand.Rand, remaining int) int {
		return randutil.Pins(rng, 0, remaining)
	})
}

// Skilled clears the rack with probability p and otherwise rolls like Uniform
func Skilled(p float64) Bowler {
	return BowlerFunc(func(rng *rand.Rand, remaining int) int {
		if rng.Float64() < p {
			return remaining
		}
		return randutil.Pins(rng, 0, remaining)
	})
}

// Perfect always clears the rack
func Perfect() Bowler {
	return BowlerFunc(func(_ *rand.Rand, remaining int) int {
		return remaining
	})
}

// NewBowler returns the named strategy. skill is only used by the skilled
// bowler and must be between 0 and 1.
func NewBowler(name string, skill float64) (Bowler, error) {
	switch name {
	case UniformBowler:
		return Uniform(), nil
	case SkilledBowler:
		if skill < 0 || skill > 1 {
			return nil, fmt.Errorf("skill must be between 0 and 1, got %v", skill)
		}
		return Skilled(skill), nil
	case PerfectBowler:
		return Perfect(), nil
	default:
		return nil, fmt.Errorf("unknown bowler type %q", name)
	}
}
