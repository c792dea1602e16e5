package bowling

// NumFrames is the number of frames in a game
const NumFrames = 10

// MaxPins is the number of pins in a full rack
const MaxPins = 10

// FrameKind identifies which of the frame variants a Frame holds
type FrameKind int

const (
	// KindPending is a frame nobody has thrown at yet
	KindPending FrameKind = iota
	// KindStrike is all ten pins on the first shot of frames 1-9
	KindStrike
	// KindSpare is all ten pins across two shots of frames 1-9
	KindSpare
	// KindOpen is a frame 1-9 with fewer than ten pins so far
	KindOpen
	// KindLastFrame is frame 10, holding up to three shots
	KindLastFrame
)

// String returns the string representation of a frame kind
func (k FrameKind) String() string {
	switch k {
	case KindPending:
		return "pending"
	case KindStrike:
		return "strike"
	case KindSpare:
		return "spare"
	case KindOpen:
		return "open"
	case KindLastFrame:
		return "last"
	default:
		return "unknown"
	}
}

// Frame is the shot history of a single frame. Frames are values: updating a
// frame means building a new one from the previous shots plus the new shot.
type Frame struct {
	kind  FrameKind
	shots []int
}

var strikeShots = []int{MaxPins}

// NewPending returns a frame with no shots
func NewPending() Frame {
	return Frame{kind: KindPending}
}

// NewStrike returns a strike. It reports a single implicit shot of 10.
func NewStrike() Frame {
	return Frame{kind: KindStrike, shots: strikeShots}
}

// NewSpare returns a spare made of the two given shots
func NewSpare(first, second int) Frame {
	return Frame{kind: KindSpare, shots: []int{first, second}}
}

// NewOpen returns an open frame holding the given shots
func NewOpen(shots ...int) Frame {
	return Frame{kind: KindOpen, shots: cloneShots(shots)}
}

// NewLastFrame returns a tenth frame holding the given shots
func NewLastFrame(shots ...int) Frame {
	return Frame{kind: KindLastFrame, shots: cloneShots(shots)}
}

// Kind returns the frame variant
func (f Frame) Kind() FrameKind {
	return f.kind
}

// IsPending reports whether no shot has been recorded in the frame
func (f Frame) IsPending() bool {
	return f.kind == KindPending
}

// Shots returns a copy of the shots recorded in the frame
func (f Frame) Shots() []int {
	return cloneShots(f.shots)
}

// ShotCount returns the number of shots recorded in the frame
func (f Frame) ShotCount() int {
	return len(f.shots)
}

// Shot returns the pins of the i-th shot (0-based) and whether it exists
func (f Frame) Shot(i int) (int, bool) {
	if i < 0 || i >= len(f.shots) {
		return 0, false
	}
	return f.shots[i], true
}

// PinsKnockedDown returns the sum of all shots in the frame
func (f Frame) PinsKnockedDown() int {
	total := 0
	for _, s := range f.shots {
		total += s
	}
	return total
}

// appendShot returns the shots of f followed by pins, leaving f untouched
func (f Frame) appendShot(pins int) []int {
	shots := make([]int, len(f.shots), len(f.shots)+1)
	copy(shots, f.shots)
	return append(shots, pins)
}

func cloneShots(shots []int) []int {
	if len(shots) == 0 {
		return nil
	}
	out := make([]int, len(shots))
	copy(out, shots)
	return out
}
