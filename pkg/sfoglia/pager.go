package sfoglia

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/calzoneworks/sfoglia/pkg/sfoglia/internal"
)

// ScrollSurface is the host-side scroll region a pager drives. The
// surface owns the physical strip of three panes; the pager only writes
// target offsets and listens to the samples the host feeds back through
// ReportOffset.
type ScrollSurface interface {
	// Extent returns the size of one pane along the scroll axis.
	Extent() float64

	// SetOffset moves the strip to offset, measured from the start of the
	// three-pane strip. An animated move is expected to feed a run of
	// intermediate offsets back through ReportOffset, always ending with
	// a terminal one; a direct move feeds exactly one.
	SetOffset(offset float64, animated bool)
}

// Pager owns the three content slots and runs the transition state
// machine between them. It is single-threaded: all mutation happens
// synchronously inside Select, ScrollForward, ScrollBack and
// ReportOffset/ReportProgress, and those must not be re-entered from
// delegate callbacks.
type Pager[T comparable] struct {
	source   DataSource[T]
	delegate Delegate[T]
	surface  ScrollSurface

	slots window[T]
	state machineState[T]

	// refreshBoth marks that Select staged a neighbor by hand, so both
	// neighbors go back to data-source truth on the next settle, whether
	// the transition lands or collapses.
	refreshBoth bool

	// adjusting suppresses position feedback generated by the pager's own
	// recentering writes, so a programmatic offset reset is not misread
	// as user motion.
	adjusting atomic.Bool

	// onSettled holds the completion callback of the directed call in
	// flight, if any. Invoked once, on the next didFinish.
	onSettled func(successful bool)

	log *slog.Logger
}

// New creates a Pager. Both collaborators are optional: a nil delegate
// receives no notifications, and with a nil source the pager never
// refills neighbor slots, so all content must arrive through Select and
// gesture paging stops at whatever Select staged.
func New[T comparable](source DataSource[T], delegate Delegate[T]) *Pager[T] {
	p := &Pager[T]{
		source:   source,
		delegate: delegate,
		log:      internal.GetLogger(),
	}
	if delegate == nil {
		p.delegate = BaseDelegate[T]{}
	}
	return p
}

// AttachSurface connects the host scroll region. Without a surface the
// pager is headless: directed scrolls settle synchronously with their
// terminal sample and nothing animates.
func (p *Pager[T]) AttachSurface(s ScrollSurface) {
	p.surface = s
}

// Current returns the handle resident in the Current slot. ok is false
// only before the first Select.
func (p *Pager[T]) Current() (T, bool) {
	return p.slots.get(SlotCurrent)
}

// Peek returns the handle resident in the given slot, if any.
func (p *Pager[T]) Peek(s Slot) (T, bool) {
	return p.slots.get(s)
}

// InTransition reports whether an engagement is currently open.
func (p *Pager[T]) InTransition() bool {
	return p.state.phase == phaseScrolling
}

// Select stages handle as the Forward or Back neighbor and scrolls to
// it. Once the ensuing transition settles, both remaining neighbors are
// refreshed from the data source. The very first Select populates the
// Current slot directly, pulls both neighbors and completes immediately.
// Any in-flight transition is cancelled first.
func (p *Pager[T]) Select(handle T, dir Direction, animated bool, onComplete func(successful bool)) {
	if !p.slots.occupied(SlotCurrent) {
		p.slots.set(SlotCurrent, handle)
		p.refreshNeighbors(true, true)
		p.log.Debug("initial selection", "handle", handle)
		if onComplete != nil {
			onComplete(true)
		}
		return
	}

	p.cancelInFlight()
	p.slots.set(dir.target(), handle)
	p.refreshBoth = true
	p.scroll(dir, animated, onComplete)
}

// ScrollForward moves to the Next slot, cancelling any in-flight
// transition first. With no Next resident the call is a no-op and
// onComplete is never invoked. onComplete receives false only when the
// destination disappeared mid-flight or the scroll was cancelled by a
// later directed call.
func (p *Pager[T]) ScrollForward(animated bool, onComplete func(successful bool)) {
	if !p.slots.occupied(SlotNext) {
		return
	}
	p.cancelInFlight()
	p.scroll(DirectionForward, animated, onComplete)
}

// ScrollBack moves to the Previous slot. Symmetric to ScrollForward.
func (p *Pager[T]) ScrollBack(animated bool, onComplete func(successful bool)) {
	if !p.slots.occupied(SlotPrevious) {
		return
	}
	p.cancelInFlight()
	p.scroll(DirectionBack, animated, onComplete)
}

// ReportOffset feeds one raw position sample from the host scroll
// region, measured from the start of the three-pane strip. Requires an
// attached surface to know the pane extent.
func (p *Pager[T]) ReportOffset(offset float64) {
	if p.surface == nil {
		return
	}
	p.ReportProgress(Progress(offset, p.surface.Extent()))
}

// ReportProgress feeds one normalized progress sample. Samples written
// by the pager's own recentering are suppressed here.
func (p *Pager[T]) ReportProgress(progress float64) {
	if p.adjusting.Load() {
		return
	}
	p.reportProgress(progress)
}

func (p *Pager[T]) reportProgress(progress float64) {
	s := sample[T]{
		progress: progress,
		previous: p.slots.entry(SlotPrevious),
		current:  p.slots.entry(SlotCurrent),
		next:     p.slots.entry(SlotNext),
	}

	st, events := step(p.state, s)
	p.state = st
	for _, ev := range events {
		p.dispatch(ev)
	}
}

func (p *Pager[T]) dispatch(ev event[T]) {
	switch ev.kind {
	case eventWillStart:
		p.log.Debug("engagement opened",
			"direction", ev.dir.String(), "from", ev.from, "to", ev.to)
		p.delegate.WillStartScrolling(ev.from, ev.to)
	case eventIsScrolling:
		p.delegate.IsScrolling(ev.from, ev.to, ev.progress)
	case eventDidFinish:
		p.settle(ev)
	}
}

// settle applies a didFinish event: commit slot ownership on success,
// refresh whichever neighbors the settle exposed, recenter the surface
// and notify delegate and pending completion.
func (p *Pager[T]) settle(ev event[T]) {
	if ev.successful {
		if ev.dir == DirectionForward {
			p.slots.commitForward()
		} else {
			p.slots.commitBack()
		}
	}

	var refreshPrev, refreshNext bool
	if ev.successful {
		// The side that just became Current needs its far neighbor.
		refreshPrev = ev.dir == DirectionBack
		refreshNext = ev.dir == DirectionForward
	}
	if p.refreshBoth {
		refreshPrev, refreshNext = true, true
		p.refreshBoth = false
	}
	p.refreshNeighbors(refreshPrev, refreshNext)

	if ev.successful {
		p.recenter()
	}

	p.log.Debug("engagement settled",
		"direction", ev.dir.String(), "from", ev.from, "to", ev.to,
		"successful", ev.successful)
	p.delegate.DidFinishScrolling(ev.from, ev.to, ev.successful)

	if done := p.onSettled; done != nil {
		p.onSettled = nil
		done(ev.successful)
	}
}

// refreshNeighbors re-queries the data source for the requested sides.
// With no data source attached the slots are left untouched.
func (p *Pager[T]) refreshNeighbors(prev, next bool) {
	if p.source == nil || !p.slots.occupied(SlotCurrent) {
		return
	}
	current, _ := p.slots.get(SlotCurrent)

	if prev {
		if id, ok := p.source.Before(current); ok {
			p.slots.set(SlotPrevious, id)
		} else {
			p.slots.clear(SlotPrevious)
		}
	}
	if next {
		if id, ok := p.source.After(current); ok {
			p.slots.set(SlotNext, id)
		} else {
			p.slots.clear(SlotNext)
		}
	}
}

// scroll drives the position toward the target slot's resting point.
func (p *Pager[T]) scroll(dir Direction, animated bool, onComplete func(successful bool)) {
	p.onSettled = onComplete

	if p.surface != nil {
		extent := p.surface.Extent()
		offset := 2 * extent
		if dir == DirectionBack {
			offset = 0
		}
		p.surface.SetOffset(offset, animated)
		return
	}

	// Headless: deliver the terminal sample directly.
	if dir == DirectionBack {
		p.reportProgress(-1)
	} else {
		p.reportProgress(1)
	}
}

// cancelInFlight closes any open engagement through the collapse path,
// so the next directed operation starts from Idle with slots untouched.
func (p *Pager[T]) cancelInFlight() {
	if p.state.phase != phaseScrolling {
		return
	}
	p.log.Debug("cancelling in-flight engagement", "direction", p.state.dir.String())
	p.reportProgress(0)
	p.recenter()
}

// recenter snaps the surface back onto the Current pane without the
// write echoing back in as user motion.
func (p *Pager[T]) recenter() {
	if p.surface == nil {
		return
	}
	p.adjusting.Store(true)
	p.surface.SetOffset(p.surface.Extent(), false)
	p.adjusting.Store(false)
}
