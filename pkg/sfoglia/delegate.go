package sfoglia

// DataSource supplies neighbor content for the pager's sliding window.
// Returning ok=false marks a collection boundary; that is a legitimate
// steady state, not an error, and transitions toward the empty side
// become no-ops.
type DataSource[T comparable] interface {
	// Before returns the handle immediately preceding current.
	Before(current T) (T, bool)
	// After returns the handle immediately following current.
	After(current T) (T, bool)
}

// DataSourceFuncs adapts a pair of functions to the DataSource
// interface. Either function may be nil, in which case that side always
// reports a boundary.
type DataSourceFuncs[T comparable] struct {
	BeforeFunc func(current T) (T, bool)
	AfterFunc  func(current T) (T, bool)
}

func (f DataSourceFuncs[T]) Before(current T) (T, bool) {
	if f.BeforeFunc == nil {
		var zero T
		return zero, false
	}
	return f.BeforeFunc(current)
}

func (f DataSourceFuncs[T]) After(current T) (T, bool) {
	if f.AfterFunc == nil {
		var zero T
		return zero, false
	}
	return f.AfterFunc(current)
}

// Delegate receives ordered lifecycle notifications for every
// engagement. For a given engagement the pager emits WillStartScrolling
// once, then zero or more IsScrolling samples, then exactly one
// DidFinishScrolling, even when the gesture reverses mid-flight.
//
// All callbacks run synchronously inside the position sample that caused
// them; implementations must not feed positions back into the pager from
// inside a callback.
type Delegate[T comparable] interface {
	// WillStartScrolling fires when an engagement from the current handle
	// toward a neighbor opens.
	WillStartScrolling(from, to T)

	// IsScrolling fires for each in-between position sample. progress is
	// positive toward Next and negative toward Previous and may exceed
	// the unit range during overscroll.
	IsScrolling(from, to T, progress float64)

	// DidFinishScrolling fires exactly once per engagement. successful is
	// false when the transition collapsed back to its origin, was
	// abandoned by a reversal, or lost its destination mid-flight.
	DidFinishScrolling(from, to T, successful bool)
}

// BaseDelegate is a Delegate whose callbacks all do nothing. Embed it to
// override only the notifications you care about.
type BaseDelegate[T comparable] struct{}

func (BaseDelegate[T]) WillStartScrolling(from, to T) {}

func (BaseDelegate[T]) IsScrolling(from, to T, progress float64) {}

func (BaseDelegate[T]) DidFinishScrolling(from, to T, successful bool) {}
