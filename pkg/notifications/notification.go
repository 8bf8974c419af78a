// Package notifications implements a typed-event bubbling bus for nested
// scrollable regions. A notification is dispatched at a tree position and
// propagates upward through ancestor listeners until one consumes it or it
// reaches the root, where unconsumed notifications are silently dropped.
package notifications

import (
	"github.com/woodjobber/over-scroll-views-plus/pkg/gestures"
	"github.com/woodjobber/over-scroll-views-plus/pkg/scroll"
)

// Notification is a bubbling event carrying a scroll metrics snapshot and
// a depth counter incremented once per scrollable boundary crossed during
// propagation.
type Notification interface {
	// Metrics returns the originating scrollable's metrics snapshot.
	Metrics() scroll.Metrics
	// Depth returns the number of scrollable boundaries the notification
	// has crossed so far; zero means the listener's own scrollable fired it.
	Depth() int

	bumpDepth()
}

// base carries the fields shared by every notification kind.
type base struct {
	metrics scroll.Metrics
	depth   int
}

func (b *base) Metrics() scroll.Metrics { return b.metrics }
func (b *base) Depth() int              { return b.depth }
func (b *base) bumpDepth()              { b.depth++ }

// ScrollStart announces that a scrollable has started moving.
type ScrollStart struct {
	base
	// Details describes the initiating drag, nil for programmatic scrolls.
	Details *gestures.DragStartDetails
}

// NewScrollStart creates a ScrollStart notification.
func NewScrollStart(metrics scroll.Metrics, details *gestures.DragStartDetails) *ScrollStart {
	return &ScrollStart{base: base{metrics: metrics}, Details: details}
}

// ScrollUpdate announces an in-range offset change.
type ScrollUpdate struct {
	base
	// Details describes the driving drag update, nil for programmatic scrolls.
	Details *gestures.DragUpdateDetails
}

// NewScrollUpdate creates a ScrollUpdate notification.
func NewScrollUpdate(metrics scroll.Metrics, details *gestures.DragUpdateDetails) *ScrollUpdate {
	return &ScrollUpdate{base: base{metrics: metrics}, Details: details}
}

// Overscroll announces a drag continuing past a scrollable's extent.
type Overscroll struct {
	base
	// Overscroll is the delta the position refused to apply.
	Overscroll float64
	// Velocity is the current scroll velocity, if known.
	Velocity float64
	// Details describes the driving drag update, nil when the overscroll
	// came from a ballistic simulation.
	Details *gestures.DragUpdateDetails
}

// NewOverscroll creates an Overscroll notification.
func NewOverscroll(metrics scroll.Metrics, overscroll float64, details *gestures.DragUpdateDetails) *Overscroll {
	return &Overscroll{base: base{metrics: metrics}, Overscroll: overscroll, Details: details}
}

// ScrollEnd announces that a scrollable has stopped moving.
type ScrollEnd struct {
	base
	// Details carries the residual drag-end details, nil when the gesture
	// ended without velocity.
	Details *gestures.DragEndDetails
}

// NewScrollEnd creates a ScrollEnd notification.
func NewScrollEnd(metrics scroll.Metrics, details *gestures.DragEndDetails) *ScrollEnd {
	return &ScrollEnd{base: base{metrics: metrics}, Details: details}
}

// ScopeQuery asks whether an ancestor scrollable of a particular kind
// exists. The first ancestor whose tag matches ExpectedOwner invokes
// OnMatch synchronously and consumes the query; at most one ancestor ever
// answers. A query that reaches the root unanswered is not an error.
type ScopeQuery struct {
	base
	// ExpectedOwner identifies which ancestor kind should answer.
	ExpectedOwner any
	// OnMatch runs on the querier's behalf inside the matching ancestor's
	// listener. It captures the querier's own mutable state by reference.
	OnMatch func()
}

// NewScopeQuery creates a ScopeQuery notification.
func NewScopeQuery(expectedOwner any, onMatch func()) *ScopeQuery {
	return &ScopeQuery{ExpectedOwner: expectedOwner, OnMatch: onMatch}
}
