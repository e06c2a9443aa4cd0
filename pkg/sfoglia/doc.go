// Package sfoglia provides a three-slot paging controller: a Previous,
// Current and Next content slot, a position tracker that normalizes raw
// scroll offsets into progress values, and a transition state machine
// that turns continuous, interruptible drag gestures into discrete page
// changes with exactly-once lifecycle callbacks.
//
// The package renders nothing. Content handles are opaque comparable
// values; the host owns panes, gestures and animation and talks to the
// pager through three narrow contracts: a DataSource that supplies
// neighbors, a Delegate that receives lifecycle notifications, and an
// optional ScrollSurface the pager writes target offsets to.
//
// # Basic Usage
//
//	// Handles can be any comparable type: IDs, indexes, language tags.
//	source := sfoglia.DataSourceFuncs[string]{
//	    BeforeFunc: func(cur string) (string, bool) { ... },
//	    AfterFunc:  func(cur string) (string, bool) { ... },
//	}
//
//	pager := sfoglia.New[string](source, delegate)
//
//	// The first Select populates the Current slot and pulls both
//	// neighbors from the data source.
//	pager.Select("page-3", sfoglia.DirectionForward, false, nil)
//
//	// Directed paging. The completion fires once the transition settles.
//	pager.ScrollForward(true, func(successful bool) { ... })
//
// # Gesture Feedback
//
// A host with a real scroll region implements ScrollSurface and feeds
// every position change back in:
//
//	pager.AttachSurface(surface)
//	// in the host's scroll handler:
//	pager.ReportOffset(offset)
//
// Progress is (offset - extent) / extent: 0 resting on Current, 1 fully
// on Next, -1 fully on Previous. The pager classifies each sample,
// opens and closes engagements, and emits the Delegate sequence
// WillStartScrolling, IsScrolling (zero or more), DidFinishScrolling,
// exactly once per engagement even when the gesture reverses mid-flight
// or bounces past a boundary with no neighbor.
//
// # Lifecycle Guarantees
//
// A transition that returns to its origin finishes with
// successful=false; that is a normal outcome, not an error. A directed
// scroll toward an empty slot is a silent no-op. The core never blocks,
// starts no goroutines and keeps no timers; animated scrolling is the
// host's animation feeding a rapid run of samples through ReportOffset.
package sfoglia
