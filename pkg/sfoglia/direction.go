package sfoglia

// Direction identifies which neighbor slot a transition engages.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBack
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBack:
		return "back"
	default:
		return ""
	}
}

// target returns the slot a transition in this direction heads to.
func (d Direction) target() Slot {
	if d == DirectionBack {
		return SlotPrevious
	}
	return SlotNext
}
