package scoreboard

import (
	"strconv"

	"github.com/lox/scorecounter/internal/bowling"
)

const (
	strikeMark = "X"
	spareMark  = "/"
	gutterMark = "-"
)

// Marks returns the display symbol of every shot cell of frame n. Frames 1-9
// have two cells with a strike shown in the second one, frame 10 has three.
// Cells without a shot are empty strings.
func Marks(n int, f bowling.Frame) []string {
	if n == bowling.NumFrames {
		return lastFrameMarks(f)
	}

	marks := make([]string, 2)
	switch f.Kind() {
	case bowling.KindStrike:
		marks[1] = strikeMark
	case bowling.KindSpare:
		first, _ := f.Shot(0)
		marks[0] = pinMark(first)
		marks[1] = spareMark
	case bowling.KindOpen:
		for i := 0; i < f.ShotCount() && i < 2; i++ {
			pins, _ := f.Shot(i)
			marks[i] = pinMark(pins)
		}
	}
	return marks
}

func lastFrameMarks(f bowling.Frame) []string {
	marks := make([]string, 3)
	s0, ok := f.Shot(0)
	if !ok {
		return marks
	}
	if s0 == bowling.MaxPins {
		marks[0] = strikeMark
	} else {
		marks[0] = pinMark(s0)
	}

	s1, ok := f.Shot(1)
	if !ok {
		return marks
	}
	switch {
	case s0 != bowling.MaxPins && s0+s1 == bowling.MaxPins:
		marks[1] = spareMark
	case s1 == bowling.MaxPins:
		marks[1] = strikeMark
	default:
		marks[1] = pinMark(s1)
	}

	s2, ok := f.Shot(2)
	if !ok {
		return marks
	}
	// The third shot is thrown at a full rack unless the first was a strike
	// and the second left pins standing.
	freshRack := (s0 == bowling.MaxPins && s1 == bowling.MaxPins) || (s0 != bowling.MaxPins && s0+s1 == bowling.MaxPins)
	switch {
	case freshRack && s2 == bowling.MaxPins:
		marks[2] = strikeMark
	case !freshRack && s1+s2 == bowling.MaxPins:
		marks[2] = spareMark
	default:
		marks[2] = pinMark(s2)
	}
	return marks
}

func pinMark(pins int) string {
	if pins == 0 {
		return gutterMark
	}
	return strconv.Itoa(pins)
}
