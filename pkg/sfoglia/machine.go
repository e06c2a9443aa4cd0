package sfoglia

import "math"

// The transition state machine is a pure function over (state, sample)
// pairs. Each step returns the successor state plus the ordered lifecycle
// events the caller must dispatch. Keeping slot mutation and delegate
// dispatch out of the step makes interruptible, reversing gestures
// directly testable: a reversal is one step that closes an engagement and
// opens the opposite one in a single event list.

type phase int

const (
	phaseIdle phase = iota
	phaseScrolling
)

// machineState carries the transition state between position samples.
// from and to pin the engagement's handles at the moment it opened, so a
// mid-flight slot change cannot corrupt the callback pairing.
type machineState[T comparable] struct {
	phase phase
	dir   Direction
	from  T
	to    T
}

// sample is one position observation together with the slot occupancy at
// that instant. Occupancy rides along so the step stays pure.
type sample[T comparable] struct {
	progress float64
	previous slotEntry[T]
	current  slotEntry[T]
	next     slotEntry[T]
}

type eventKind int

const (
	eventWillStart eventKind = iota
	eventIsScrolling
	eventDidFinish
)

// event is one ordered lifecycle notification produced by step. A
// didFinish with successful=true instructs the caller to commit slot
// ownership in the event's direction; the step itself never moves
// content.
type event[T comparable] struct {
	kind       eventKind
	dir        Direction
	from       T
	to         T
	progress   float64
	successful bool
}

// step advances the state machine by one position sample. The returned
// events are in dispatch order. Invariants: at most one willStart and
// exactly one didFinish per engagement, a reversal emits the failed
// didFinish before the opposite willStart, and a sample at exactly zero
// is inert from Idle but commits a collapse while scrolling.
func step[T comparable](st machineState[T], s sample[T]) (machineState[T], []event[T]) {
	var events []event[T]

	for {
		switch st.phase {
		case phaseIdle:
			motion := Classify(s.progress)
			if motion == MotionResting || !s.current.ok {
				return st, events
			}

			dir := DirectionForward
			dest := s.next
			if motion == MotionTowardPrevious {
				dir = DirectionBack
				dest = s.previous
			}
			if !dest.ok {
				// Rubber-banding against a missing neighbor: no
				// engagement opens and there is nothing to settle.
				return st, events
			}

			st = machineState[T]{phase: phaseScrolling, dir: dir, from: s.current.id, to: dest.id}
			events = append(events, event[T]{kind: eventWillStart, dir: dir, from: st.from, to: st.to})
			// Re-read the same sample in the new phase; a first sample at
			// or beyond the boundary commits immediately.
			continue

		case phaseScrolling:
			motion := Classify(s.progress)

			if (st.dir == DirectionForward && motion == MotionTowardPrevious) ||
				(st.dir == DirectionBack && motion == MotionTowardNext) {
				// Reversal: close the abandoned engagement with a
				// synthetic failed didFinish, then re-read from Idle.
				events = append(events, event[T]{kind: eventDidFinish, dir: st.dir, from: st.from, to: st.to})
				st = machineState[T]{}
				continue
			}

			target, settled := Settled(s.progress, s.previous.ok, s.next.ok)
			if !settled {
				if math.Abs(s.progress) >= 1-epsilon {
					// The engaged neighbor vanished mid-flight; there is
					// nothing left to land on.
					events = append(events, event[T]{kind: eventDidFinish, dir: st.dir, from: st.from, to: st.to})
					return machineState[T]{}, events
				}
				events = append(events, event[T]{kind: eventIsScrolling, dir: st.dir, from: st.from, to: st.to, progress: s.progress})
				return st, events
			}

			successful := (target == SettleNext && st.dir == DirectionForward) ||
				(target == SettlePrevious && st.dir == DirectionBack)
			events = append(events, event[T]{kind: eventDidFinish, dir: st.dir, from: st.from, to: st.to, successful: successful})
			return machineState[T]{}, events
		}
	}
}
