package bowling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		frame Frame
		kind  FrameKind
		shots []int
		pins  int
	}{
		{"pending", NewPending(), KindPending, nil, 0},
		{"strike", NewStrike(), KindStrike, []int{10}, 10},
		{"spare", NewSpare(4, 6), KindSpare, []int{4, 6}, 10},
		{"open single shot", NewOpen(3), KindOpen, []int{3}, 3},
		{"open two shots", NewOpen(3, 5), KindOpen, []int{3, 5}, 8},
		{"last frame", NewLastFrame(10, 10, 10), KindLastFrame, []int{10, 10, 10}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.frame.Kind())
			assert.Equal(t, tt.shots, tt.frame.Shots())
			assert.Equal(t, len(tt.shots), tt.frame.ShotCount())
			assert.Equal(t, tt.pins, tt.frame.PinsKnockedDown())
			assert.Equal(t, tt.kind == KindPending, tt.frame.IsPending())
		})
	}
}

func TestFrameIsImmutable(t *testing.T) {
	t.Parallel()

	input := []int{2, 3}
	f := NewOpen(input...)
	input[0] = 9
	assert.Equal(t, 5, f.PinsKnockedDown(), "constructor must copy its input")

	shots := f.Shots()
	shots[1] = 7
	assert.Equal(t, []int{2, 3}, f.Shots(), "Shots must return a copy")

	strike := NewStrike()
	strike.Shots()[0] = 0
	assert.Equal(t, 10, NewStrike().PinsKnockedDown())

	extended := NewOpen(f.appendShot(4)...)
	assert.Equal(t, []int{2, 3}, f.Shots())
	assert.Equal(t, []int{2, 3, 4}, extended.Shots())
}

func TestFrameShot(t *testing.T) {
	t.Parallel()

	f := NewLastFrame(10, 3)
	pins, ok := f.Shot(0)
	assert.True(t, ok)
	assert.Equal(t, 10, pins)

	pins, ok = f.Shot(1)
	assert.True(t, ok)
	assert.Equal(t, 3, pins)

	_, ok = f.Shot(2)
	assert.False(t, ok)
	_, ok = f.Shot(-1)
	assert.False(t, ok)
}

func TestKindAndOutcomeStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "strike", KindStrike.String())
	assert.Equal(t, "last", KindLastFrame.String())
	assert.Equal(t, "unknown", FrameKind(42).String())

	assert.Equal(t, "spare", Spare.String())
	assert.Equal(t, "open-frame", OpenFrame.String())
	assert.Equal(t, "game-over", GameOver.String())
	assert.Equal(t, "unknown", TurnOutcome(42).String())

	assert.False(t, AnotherShot.EndsTurn())
	assert.True(t, Strike.EndsTurn())
	assert.True(t, PlayerFinished.EndsTurn())
}
