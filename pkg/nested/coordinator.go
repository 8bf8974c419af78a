// Package nested coordinates drag ownership between scrollable regions of
// unknown depth and unknown relationship. Each scrollable wraps itself in
// a Coordinator; coordinators discover matching ancestors over the
// notification bus, hand an in-flight drag upward when the inner
// scrollable pins against its extent, and reconstruct the gesture on the
// ancestor side as a fresh synthetic drag.
package nested

import (
	"github.com/woodjobber/over-scroll-views-plus/pkg/geometry"
	"github.com/woodjobber/over-scroll-views-plus/pkg/gestures"
	"github.com/woodjobber/over-scroll-views-plus/pkg/notifications"
	"github.com/woodjobber/over-scroll-views-plus/pkg/scroll"
)

// QueryAncestor dispatches a scope query from origin upward. The nearest
// ancestor whose tag equals expectedOwner runs onMatch synchronously
// during the bubble and consumes the query. Finding no match is not an
// error; onMatch simply never runs and the querier proceeds as if it were
// the topmost scrollable.
func QueryAncestor(origin *notifications.Node, expectedOwner any, onMatch func()) {
	notifications.Dispatch(notifications.NewScopeQuery(expectedOwner, onMatch), origin)
}

// Coordinator is the per-scrollable drag ownership state machine.
//
// As a descendant it decides, per bubbled event, whether to swallow the
// event locally or cede it upward; as an ancestor it answers scope
// queries from descendants and reconstructs ceded drags on its own
// position through an exclusively owned synthetic drag session.
type Coordinator struct {
	tag      any
	node     *notifications.Node
	position *scroll.Position

	// queried and hasAncestor cache ancestor discovery so the relationship
	// is resolved once per coordinator, not re-queried every event.
	queried     bool
	hasAncestor bool

	// atBoundary is set once this coordinator has ceded further overscroll
	// upward. There is no separate ceded flag: suppressing local handling
	// while atBoundary is sufficient, and input routing is untouched, so
	// the ancestor's own recognizer naturally receives subsequent input.
	atBoundary bool

	// ignoreOverscrollFromChild is set once this coordinator, acting as an
	// ancestor, has itself pinned against an extent and ceded upward; child
	// overscroll then bubbles past it to the next matching ancestor.
	ignoreOverscrollFromChild bool

	// drag is exclusively owned; no other component holds a reference.
	drag *scroll.DragSession

	disposed bool
}

// NewCoordinator creates a coordinator for a scrollable. The node it
// registers under parent is a scroll boundary: notifications bubbling past
// it gain depth. Tag identifies the kind of ancestor this scrollable can
// cede to, and the kind of descendant query it answers.
func NewCoordinator(parent *notifications.Node, position *scroll.Position, tag any) *Coordinator {
	c := &Coordinator{
		tag:      tag,
		position: position,
	}
	c.node = notifications.NewNode(parent)
	c.node.MarkScrollBoundary()
	c.node.SetListener(c.handleNotification)
	return c
}

// Node returns the coordinator's tree position. Descendant scrollables
// register under it; the scrollable's own position events originate below it.
func (c *Coordinator) Node() *notifications.Node {
	return c.node
}

// AtBoundary reports whether this coordinator has ceded further overscroll
// to an ancestor.
func (c *Coordinator) AtBoundary() bool {
	return c.atBoundary
}

// IgnoringChildOverscroll reports whether child overscroll currently
// bubbles past this coordinator.
func (c *Coordinator) IgnoringChildOverscroll() bool {
	return c.ignoreOverscrollFromChild
}

// HasActiveDrag reports whether a synthetic drag is currently owned.
func (c *Coordinator) HasActiveDrag() bool {
	return c.drag != nil
}

// HasAncestor reports the cached result of ancestor discovery.
func (c *Coordinator) HasAncestor() bool {
	return c.hasAncestor
}

// InvalidateAncestor drops the cached discovery result, forcing a fresh
// query on the next depth-0 event. Hosts call this after re-parenting.
func (c *Coordinator) InvalidateAncestor() {
	c.queried = false
	c.hasAncestor = false
}

// WrapRecognizers decorates the scrollable's recognizer factory table so
// the inner recognizers are starved of events while this coordinator is
// ignoring child overscroll. The host hands the proxied table to its
// gesture layer in place of the original.
func (c *Coordinator) WrapRecognizers(inner gestures.FactoryTable) *gestures.ProxyTable {
	return &gestures.ProxyTable{
		Inner: inner,
		Accept: func(geometry.Axis) bool {
			return !c.ignoreOverscrollFromChild
		},
	}
}

// Dispose tears the coordinator down. An active drag is released without
// re-invoking end or cancel semantics, so teardown never recurses into
// further notification dispatch.
func (c *Coordinator) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.drag != nil {
		c.drag.Dispose()
		c.drag = nil
	}
	c.node.SetListener(nil)
}

// handleNotification is the coordinator's bus listener. Negotiation and
// ownership failures are absorbed into state, never surfaced as errors;
// only scope-query callbacks may panic, and only on a caller's
// mis-assigned tags.
func (c *Coordinator) handleNotification(n notifications.Notification) bool {
	if c.disposed {
		return false
	}
	switch n := n.(type) {
	case *notifications.ScopeQuery:
		if n.ExpectedOwner != c.tag {
			return false
		}
		if n.OnMatch != nil {
			n.OnMatch()
		}
		return true
	case *notifications.ScrollStart:
		if n.Depth() == 0 {
			c.discoverAncestor()
		}
		return false
	case *notifications.ScrollUpdate:
		if n.Depth() == 0 {
			c.discoverAncestor()
		}
		return false
	case *notifications.Overscroll:
		if n.Depth() == 0 {
			return c.handleOwnOverscroll()
		}
		return c.handleChildOverscroll(n)
	case *notifications.ScrollEnd:
		c.reset(n)
		// Never consumed: every coordinator along the chain resets.
		return false
	default:
		return false
	}
}

// discoverAncestor resolves whether a matching ancestor exists, once.
func (c *Coordinator) discoverAncestor() {
	if c.queried {
		return
	}
	c.queried = true
	QueryAncestor(c.node.Parent(), c.tag, func() {
		c.hasAncestor = true
	})
}

// handleOwnOverscroll processes an overscroll fired by this coordinator's
// own scrollable: its drag ran past the local extent.
func (c *Coordinator) handleOwnOverscroll() bool {
	c.discoverAncestor()
	if !c.hasAncestor {
		// Topmost of its kind; swallow, nothing to hand off.
		return true
	}
	if !c.atBoundary {
		// Cede upward. The flag flips only if an ancestor actually
		// answers; the callback mutates this coordinator's own state.
		QueryAncestor(c.node.Parent(), c.tag, func() {
			c.atBoundary = true
		})
	}
	// Ceded overscroll bubbles so the ancestor can own the remainder.
	return !c.atBoundary
}

// handleChildOverscroll processes overscroll bubbling up from a descendant
// scrollable that has ceded to this coordinator.
func (c *Coordinator) handleChildOverscroll(n *notifications.Overscroll) bool {
	if c.ignoreOverscrollFromChild {
		return false
	}
	if c.drag == nil {
		// A fresh synthetic start. The bubbled payload's start details
		// belong to the child's reference frame and are never reused.
		c.drag = c.position.Drag(gestures.DragStartDetails{}, func() {
			c.drag = nil
		})
	}
	if n.Details != nil {
		c.drag.Update(*n.Details)
	}
	c.maybeCedeUpward()
	return true
}

// maybeCedeUpward hands ownership to the next matching ancestor once this
// coordinator's own position has pinned against an extent.
func (c *Coordinator) maybeCedeUpward() {
	m := c.position.Metrics()
	if !m.AtEdge() || m.Pixels == 0 {
		return
	}
	if c.atBoundary {
		return
	}
	c.discoverAncestor()
	if !c.hasAncestor {
		return
	}
	QueryAncestor(c.node.Parent(), c.tag, func() {
		c.atBoundary = true
	})
	if c.atBoundary {
		c.ignoreOverscrollFromChild = true
	}
}

// reset processes a ScrollEnd: release the synthetic drag exactly once and
// clear the per-gesture flags. Residual drag-end details preserve velocity
// for a fling; without them the drag cancels with no velocity.
func (c *Coordinator) reset(n *notifications.ScrollEnd) {
	if c.drag != nil {
		drag := c.drag
		if n.Details != nil {
			drag.End(*n.Details)
		} else {
			drag.Cancel()
		}
		// The session's release callback has already cleared c.drag.
		c.drag = nil
	}
	c.atBoundary = false
	c.ignoreOverscrollFromChild = false
}
