package sfoglia

// Slot identifies one of the pager's three content positions.
type Slot int

const (
	SlotPrevious Slot = iota
	SlotCurrent
	SlotNext
)

// String returns a string representation of the slot.
func (s Slot) String() string {
	switch s {
	case SlotPrevious:
		return "previous"
	case SlotNext:
		return "next"
	default:
		return "current"
	}
}

// slotEntry is a possibly-absent content handle resident in a slot.
type slotEntry[T comparable] struct {
	id T
	ok bool
}

// window owns the three content handles of the sliding pane strip. A
// handle lives in at most one slot; commits transfer ownership between
// slots instead of copying, and replaced handles are simply dropped.
type window[T comparable] struct {
	previous slotEntry[T]
	current  slotEntry[T]
	next     slotEntry[T]
}

func (w *window[T]) entry(s Slot) slotEntry[T] {
	switch s {
	case SlotPrevious:
		return w.previous
	case SlotNext:
		return w.next
	default:
		return w.current
	}
}

func (w *window[T]) get(s Slot) (T, bool) {
	e := w.entry(s)
	return e.id, e.ok
}

func (w *window[T]) occupied(s Slot) bool {
	return w.entry(s).ok
}

// set places a handle in a slot, releasing whatever was resident there.
func (w *window[T]) set(s Slot, id T) {
	e := slotEntry[T]{id: id, ok: true}
	switch s {
	case SlotPrevious:
		w.previous = e
	case SlotNext:
		w.next = e
	default:
		w.current = e
	}
}

// clear empties a slot, releasing any resident handle.
func (w *window[T]) clear(s Slot) {
	switch s {
	case SlotPrevious:
		w.previous = slotEntry[T]{}
	case SlotNext:
		w.next = slotEntry[T]{}
	default:
		w.current = slotEntry[T]{}
	}
}

// commitForward shifts ownership after settling on Next: the Previous
// handle is released, Current moves into Previous, Next moves into
// Current and the Next slot is left empty for the data source to refill.
func (w *window[T]) commitForward() {
	w.previous = w.current
	w.current = w.next
	w.next = slotEntry[T]{}
}

// commitBack is the mirror image of commitForward.
func (w *window[T]) commitBack() {
	w.next = w.current
	w.current = w.previous
	w.previous = slotEntry[T]{}
}
