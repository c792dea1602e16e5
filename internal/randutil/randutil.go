// Package randutil provides seeded random sources for pin counts.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

// pcgIncrement selects the PCG stream so that seed 0 still produces a
// well-mixed sequence.
const pcgIncrement = 1442695040888963407

// New returns a generator whose sequence is fully determined by seed
func New(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s*6364136223846793005+pcgIncrement))
}

// TimeSeed returns a seed derived from the wall clock
func TimeSeed() int64 {
	return time.Now().UnixNano()
}

// Pins returns a pin count in [lo, hi]. When hi < lo it returns lo.
func Pins(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
