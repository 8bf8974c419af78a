package nested

import (
	"testing"

	"github.com/woodjobber/over-scroll-views-plus/pkg/geometry"
	"github.com/woodjobber/over-scroll-views-plus/pkg/gestures"
	"github.com/woodjobber/over-scroll-views-plus/pkg/notifications"
	"github.com/woodjobber/over-scroll-views-plus/pkg/scroll"
)

const pagerTag = "pager"

// pager bundles one nested scrollable level for tests: a position, its
// coordinator, and a reporter originating events below the coordinator.
type pager struct {
	position *scroll.Position
	coord    *Coordinator
	reporter *Reporter
}

func newPager(t *testing.T, parent *notifications.Node, min, max, pixels float64) *pager {
	t.Helper()
	p := scroll.NewPosition(nil, geometry.AxisDown, scroll.ClampingPhysics{}, nil)
	p.SetExtents(min, max, 300)
	p.SetPixels(pixels)
	coord := NewCoordinator(parent, p, pagerTag)
	origin := notifications.NewNode(coord.Node())
	return &pager{
		position: p,
		coord:    coord,
		reporter: NewReporter(p, origin),
	}
}

// dragPastMin feeds one drag update that overscrolls past the minimum
// extent: a positive primary delta maps to a negative offset delta.
func (pg *pager) dragPastMin(delta float64) {
	pg.reporter.DragUpdate(gestures.DragUpdateDetails{PrimaryDelta: delta})
}

func TestCedingToAncestor(t *testing.T) {
	root := notifications.NewNode(nil)
	outer := newPager(t, root, 0, 1000, 500)
	inner := newPager(t, outer.coord.Node(), 0, 300, 0)

	inner.reporter.DragStart(gestures.DragStartDetails{})
	inner.dragPastMin(15)

	if !inner.coord.AtBoundary() {
		t.Error("inner coordinator should flip atBoundary after a ceded overscroll")
	}
	if outer.coord.IgnoringChildOverscroll() {
		t.Error("ancestor's ignoreOverscrollFromChild must stay unset while it can still scroll")
	}
	if !outer.coord.HasActiveDrag() {
		t.Error("ancestor should own a synthetic drag after the handoff")
	}
	if outer.position.Pixels() != 485 {
		t.Errorf("ancestor offset = %v, want 485 (ceded delta applied)", outer.position.Pixels())
	}
	if inner.position.Pixels() != 0 {
		t.Errorf("inner offset = %v, want 0 (stays pinned at its extent)", inner.position.Pixels())
	}
}

func TestNoAncestorSwallowsOverscroll(t *testing.T) {
	root := notifications.NewNode(nil)
	var rootSawOverscroll bool
	root.SetListener(func(n notifications.Notification) bool {
		if _, ok := n.(*notifications.Overscroll); ok {
			rootSawOverscroll = true
		}
		return false
	})

	only := newPager(t, root, 0, 300, 0)
	only.dragPastMin(15)

	if only.coord.AtBoundary() {
		t.Error("coordinator with no matching ancestor must not flip atBoundary")
	}
	if rootSawOverscroll {
		t.Error("topmost coordinator should swallow its own overscroll")
	}
}

func TestAncestorDiscoveryCachedAcrossEvents(t *testing.T) {
	root := notifications.NewNode(nil)
	outer := newPager(t, root, 0, 1000, 500)

	// A pass-through counter between the inner coordinator and its
	// ancestor observes every scope query the inner one issues.
	queries := 0
	counter := notifications.NewNode(outer.coord.Node())
	counter.SetListener(func(n notifications.Notification) bool {
		if _, ok := n.(*notifications.ScopeQuery); ok {
			queries++
		}
		return false
	})

	inner := newPager(t, counter, 0, 300, 100)
	inner.reporter.DragStart(gestures.DragStartDetails{})
	inner.reporter.DragUpdate(gestures.DragUpdateDetails{PrimaryDelta: -10})
	inner.reporter.DragUpdate(gestures.DragUpdateDetails{PrimaryDelta: -10})

	if queries != 1 {
		t.Errorf("discovery queries issued = %d, want 1 (cached after first depth-0 event)", queries)
	}
	if !inner.coord.HasAncestor() {
		t.Error("discovery should have found the matching ancestor")
	}
}

func TestHandoffCascadesWhenAncestorPins(t *testing.T) {
	root := notifications.NewNode(nil)
	grand := newPager(t, root, 0, 1000, 500)
	// The middle pager pins against its min extent after one ceded delta.
	middle := newPager(t, grand.coord.Node(), 40, 100, 55)
	inner := newPager(t, middle.coord.Node(), 0, 300, 0)

	inner.dragPastMin(15)
	if !middle.coord.HasActiveDrag() {
		t.Fatal("middle coordinator should own the first ceded drag")
	}
	if middle.position.Pixels() != 40 {
		t.Fatalf("middle offset = %v, want 40 (pinned at its min)", middle.position.Pixels())
	}
	if !middle.coord.AtBoundary() {
		t.Error("pinned middle coordinator should cede upward")
	}
	if !middle.coord.IgnoringChildOverscroll() {
		t.Error("pinned middle coordinator should stop absorbing child overscroll")
	}

	inner.dragPastMin(15)
	if !grand.coord.HasActiveDrag() {
		t.Error("grandparent should own a drag once the middle lets overscroll pass")
	}
	if grand.position.Pixels() != 485 {
		t.Errorf("grandparent offset = %v, want 485", grand.position.Pixels())
	}
}

func TestScrollEndWithResidualFlings(t *testing.T) {
	root := notifications.NewNode(nil)
	outer := newPager(t, root, 0, 1000, 500)
	inner := newPager(t, outer.coord.Node(), 0, 300, 0)

	var fling float64
	outer.position.OnFling = func(v float64) { fling = v }

	inner.dragPastMin(15)
	inner.reporter.DragEnd(gestures.DragEndDetails{PrimaryVelocity: -400})

	if outer.coord.HasActiveDrag() {
		t.Error("drag must be released when the gesture ends")
	}
	if fling != 400 {
		t.Errorf("residual velocity forwarded = %v, want 400", fling)
	}
	if inner.coord.AtBoundary() {
		t.Error("inner coordinator flags must clear on scroll end")
	}
}

func TestScrollEndWithoutResidualCancels(t *testing.T) {
	root := notifications.NewNode(nil)
	outer := newPager(t, root, 0, 1000, 500)
	inner := newPager(t, outer.coord.Node(), 0, 300, 0)

	var fling bool
	outer.position.OnFling = func(float64) { fling = true }

	inner.dragPastMin(15)
	inner.reporter.DragCancel()

	if outer.coord.HasActiveDrag() {
		t.Error("drag must be released when the gesture cancels")
	}
	if fling {
		t.Error("cancel must not forward any velocity")
	}
}

func TestOwnershipReleaseIdempotence(t *testing.T) {
	sequences := []struct {
		name string
		run  func(outer, inner *pager)
	}{
		{"end then end", func(outer, inner *pager) {
			inner.reporter.DragEnd(gestures.DragEndDetails{PrimaryVelocity: -100})
			inner.reporter.DragEnd(gestures.DragEndDetails{PrimaryVelocity: -100})
		}},
		{"cancel then end", func(outer, inner *pager) {
			inner.reporter.DragCancel()
			inner.reporter.DragEnd(gestures.DragEndDetails{})
		}},
		{"end then dispose", func(outer, inner *pager) {
			inner.reporter.DragEnd(gestures.DragEndDetails{})
			outer.coord.Dispose()
		}},
		{"dispose during drag", func(outer, inner *pager) {
			outer.coord.Dispose()
		}},
		{"dispose twice", func(outer, inner *pager) {
			outer.coord.Dispose()
			outer.coord.Dispose()
		}},
	}
	for _, tt := range sequences {
		t.Run(tt.name, func(t *testing.T) {
			root := notifications.NewNode(nil)
			outer := newPager(t, root, 0, 1000, 500)
			inner := newPager(t, outer.coord.Node(), 0, 300, 0)

			inner.reporter.DragStart(gestures.DragStartDetails{})
			inner.dragPastMin(15)
			inner.dragPastMin(5)
			if !outer.coord.HasActiveDrag() {
				t.Fatal("precondition: ancestor should own a drag")
			}

			tt.run(outer, inner)
			if outer.coord.HasActiveDrag() {
				t.Error("drag must be released exactly once, never leaked")
			}
		})
	}
}

func TestDisposedCoordinatorIgnoresNotifications(t *testing.T) {
	root := notifications.NewNode(nil)
	outer := newPager(t, root, 0, 1000, 500)
	inner := newPager(t, outer.coord.Node(), 0, 300, 0)

	outer.coord.Dispose()
	inner.dragPastMin(15)

	if outer.coord.HasActiveDrag() {
		t.Error("disposed coordinator must not construct drags")
	}
	if outer.position.Pixels() != 500 {
		t.Errorf("disposed coordinator moved its position to %v", outer.position.Pixels())
	}
}

func TestQueryAnsweredByNearestOfIdenticalTags(t *testing.T) {
	root := notifications.NewNode(nil)
	far := newPager(t, root, 0, 1000, 500)
	near := newPager(t, far.coord.Node(), 0, 1000, 500)
	origin := notifications.NewNode(near.coord.Node())

	matches := 0
	QueryAncestor(origin, pagerTag, func() { matches++ })

	if matches != 1 {
		t.Errorf("OnMatch ran %d times, want exactly 1 for identically tagged ancestors", matches)
	}
}

func TestWrapRecognizersGatesOnCededState(t *testing.T) {
	root := notifications.NewNode(nil)
	outer := newPager(t, root, 0, 1000, 500)

	received := 0
	inner := gestures.FactoryTable{
		geometry.AxisVertical: func(callbacks gestures.DragCallbacks) gestures.DragRecognizer {
			return &countingRecognizer{count: &received}
		},
	}
	recognizer := outer.coord.WrapRecognizers(inner).Factory(geometry.AxisVertical)(gestures.DragCallbacks{})

	recognizer.HandleEvent(gestures.PointerEvent{Phase: gestures.PointerPhaseMove})
	if received != 1 {
		t.Fatal("recognizer should receive events while not ceded")
	}

	outer.coord.ignoreOverscrollFromChild = true
	recognizer.HandleEvent(gestures.PointerEvent{Phase: gestures.PointerPhaseMove})
	if received != 1 {
		t.Error("recognizer must be starved while child overscroll is ignored")
	}
}

type countingRecognizer struct {
	count *int
}

func (r *countingRecognizer) AddPointer(gestures.PointerEvent)  { *r.count++ }
func (r *countingRecognizer) HandleEvent(gestures.PointerEvent) { *r.count++ }
func (r *countingRecognizer) Dispose()                          {}
