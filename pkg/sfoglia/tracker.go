package sfoglia

// Position tracking: pure arithmetic that turns raw scroll offsets into
// normalized progress values and resting-point classifications. Nothing
// in this file carries state or produces side effects.

// epsilon absorbs host-side float arithmetic when comparing progress
// against the 0 and 1 boundaries.
const epsilon = 1e-9

// Progress converts a raw offset within the three-pane virtual strip into
// normalized progress. The strip places Previous at 0, Current at extent
// and Next at 2*extent, so resting on Current yields 0, fully reaching
// Next yields 1 and fully reaching Previous yields -1. Values beyond
// the unit range occur transiently during overscroll and bounce.
func Progress(offset, extent float64) float64 {
	if extent == 0 {
		return 0
	}
	return (offset - extent) / extent
}

// Motion is the continuous classification of a progress value.
type Motion int

const (
	MotionResting Motion = iota
	MotionTowardNext
	MotionTowardPrevious
)

// String returns a string representation of the motion class.
func (m Motion) String() string {
	switch m {
	case MotionTowardNext:
		return "toward-next"
	case MotionTowardPrevious:
		return "toward-previous"
	default:
		return "resting"
	}
}

// Classify maps a progress value onto its motion class. Progress within
// epsilon of zero counts as resting.
func Classify(progress float64) Motion {
	switch {
	case progress > epsilon:
		return MotionTowardNext
	case progress < -epsilon:
		return MotionTowardPrevious
	default:
		return MotionResting
	}
}

// SettleTarget names the slot a settled position rests on.
type SettleTarget int

const (
	SettleCurrent SettleTarget = iota
	SettleNext
	SettlePrevious
)

// String returns a string representation of the settle target.
func (t SettleTarget) String() string {
	switch t {
	case SettleNext:
		return "next"
	case SettlePrevious:
		return "previous"
	default:
		return "current"
	}
}

// Settled reports whether the given progress value has reached a resting
// point: Next at progress >= 1 when the Next slot is occupied, Previous
// at progress <= -1 when the Previous slot is occupied, and Current at
// exactly 0. The second return is false while the position is in between
// boundaries or the boundary slot is empty.
func Settled(progress float64, hasPrevious, hasNext bool) (SettleTarget, bool) {
	switch {
	case progress >= 1-epsilon && hasNext:
		return SettleNext, true
	case progress <= -(1-epsilon) && hasPrevious:
		return SettlePrevious, true
	case Classify(progress) == MotionResting:
		return SettleCurrent, true
	}
	return SettleCurrent, false
}
