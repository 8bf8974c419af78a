package gestures

import "github.com/woodjobber/over-scroll-views-plus/pkg/geometry"

// ProxyTable decorates an inner recognizer-factory table with observation
// hooks and an acceptance predicate. It replaces subclass overrides of a
// recognizer setter: the wrapper holds a reference to the inner table plus
// the proxy predicates, and composition keeps the ownership obvious.
//
// Recognizers created through the proxy forward every pointer event to the
// inner recognizer. The Accept predicate is consulted per event delivery;
// while it returns false the inner recognizer is starved of events, which
// is how a coordinator stops a child scrollable from competing for a drag
// it has ceded upward.
type ProxyTable struct {
	// Inner is the wrapped factory table.
	Inner FactoryTable
	// Accept gates event delivery per axis. Nil accepts everything.
	Accept func(axis geometry.Axis) bool
	// OnPointerMove observes raw move events before forwarding.
	OnPointerMove func(event PointerEvent)
	// OnDragUpdate observes recognized drag updates before the inner
	// callback runs.
	OnDragUpdate func(details DragUpdateDetails)
}

// Factory returns the proxied factory for the given axis, or nil if the
// inner table has none.
func (p *ProxyTable) Factory(axis geometry.Axis) RecognizerFactory {
	inner, ok := p.Inner[axis]
	if !ok || inner == nil {
		return nil
	}
	return func(callbacks DragCallbacks) DragRecognizer {
		wrapped := callbacks
		innerUpdate := callbacks.OnUpdate
		wrapped.OnUpdate = func(details DragUpdateDetails) {
			if p.OnDragUpdate != nil {
				p.OnDragUpdate(details)
			}
			if innerUpdate != nil {
				innerUpdate(details)
			}
		}
		return &proxyRecognizer{
			table: p,
			axis:  axis,
			inner: inner(wrapped),
		}
	}
}

// Table returns a FactoryTable with every inner axis proxied, suitable for
// handing back to the host scrollable in place of the original table.
func (p *ProxyTable) Table() FactoryTable {
	out := make(FactoryTable, len(p.Inner))
	for axis := range p.Inner {
		if factory := p.Factory(axis); factory != nil {
			out[axis] = factory
		}
	}
	return out
}

type proxyRecognizer struct {
	table *ProxyTable
	axis  geometry.Axis
	inner DragRecognizer
}

func (r *proxyRecognizer) accepts() bool {
	return r.table.Accept == nil || r.table.Accept(r.axis)
}

func (r *proxyRecognizer) AddPointer(event PointerEvent) {
	if !r.accepts() {
		return
	}
	r.inner.AddPointer(event)
}

func (r *proxyRecognizer) HandleEvent(event PointerEvent) {
	if !r.accepts() {
		return
	}
	if event.Phase == PointerPhaseMove && r.table.OnPointerMove != nil {
		r.table.OnPointerMove(event)
	}
	r.inner.HandleEvent(event)
}

func (r *proxyRecognizer) Dispose() {
	r.inner.Dispose()
}
