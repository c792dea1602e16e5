package bowling

// recalculate rewrites the cumulative scores of s from frame 1 up to the
// first pending frame. Slots after that frame keep their previous values.
func recalculate(s *Session) {
	running := 0
	scored := 0
	for n := 1; n <= NumFrames; n++ {
		f := s.Frame(n)
		if f.IsPending() {
			break
		}
		running += frameScore(s, n, f)
		s.scores[n-1] = running
		scored = n
	}
	s.scored = scored
}

func frameScore(s *Session, n int, f Frame) int {
	switch f.Kind() {
	case KindStrike:
		return MaxPins + bonusShots(s, n, 2)
	case KindSpare:
		return MaxPins + bonusShots(s, n, 1)
	default:
		// Open frames and frame 10 count the pins they hold
		return f.PinsKnockedDown()
	}
}

// bonusShots sums up to count shots thrown after frame n. Shots that have not
// been thrown yet count as zero until a later recalculation.
func bonusShots(s *Session, n, count int) int {
	total := 0
	for next := n + 1; next <= NumFrames && count > 0; next++ {
		f := s.Frame(next)
		if f.IsPending() {
			break
		}
		for _, pins := range f.shots {
			if count == 0 {
				break
			}
			total += pins
			count--
		}
	}
	return total
}
