package notifications

import (
	"testing"

	"github.com/woodjobber/over-scroll-views-plus/pkg/scroll"
)

func TestDispatchVisitsInnermostFirst(t *testing.T) {
	root := NewNode(nil)
	middle := NewNode(root)
	inner := NewNode(middle)

	var order []string
	root.SetListener(func(Notification) bool { order = append(order, "root"); return false })
	middle.SetListener(func(Notification) bool { order = append(order, "middle"); return false })
	inner.SetListener(func(Notification) bool { order = append(order, "inner"); return false })

	Dispatch(NewScrollStart(scroll.Metrics{}, nil), inner)

	want := []string{"inner", "middle", "root"}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visited %v, want %v", order, want)
		}
	}
}

func TestDispatchConsumptionStopsPropagation(t *testing.T) {
	root := NewNode(nil)
	middle := NewNode(root)
	inner := NewNode(middle)

	var rootSaw bool
	root.SetListener(func(Notification) bool { rootSaw = true; return false })
	middle.SetListener(func(Notification) bool { return true })

	Dispatch(NewScrollUpdate(scroll.Metrics{}, nil), inner)
	if rootSaw {
		t.Error("consumed notification must not reach ancestors above the consumer")
	}
}

func TestDispatchUnconsumedDropsSilently(t *testing.T) {
	root := NewNode(nil)
	inner := NewNode(root)
	// No listeners anywhere: reaching the root unconsumed is not an error.
	Dispatch(NewScrollEnd(scroll.Metrics{}, nil), inner)
}

func TestDispatchDepthCountsScrollBoundaries(t *testing.T) {
	root := NewNode(nil)
	outer := NewNode(root)
	outer.MarkScrollBoundary()
	inner := NewNode(outer)
	inner.MarkScrollBoundary()
	origin := NewNode(inner)

	var innerDepth, outerDepth, rootDepth int
	inner.SetListener(func(n Notification) bool { innerDepth = n.Depth(); return false })
	outer.SetListener(func(n Notification) bool { outerDepth = n.Depth(); return false })
	root.SetListener(func(n Notification) bool { rootDepth = n.Depth(); return false })

	Dispatch(NewOverscroll(scroll.Metrics{}, -15, nil), origin)

	if innerDepth != 0 {
		t.Errorf("inner listener depth = %d, want 0", innerDepth)
	}
	if outerDepth != 1 {
		t.Errorf("outer listener depth = %d, want 1", outerDepth)
	}
	if rootDepth != 2 {
		t.Errorf("root listener depth = %d, want 2", rootDepth)
	}
}

func TestScopeQueryAnsweredAtMostOnce(t *testing.T) {
	const tag = "carousel"

	answer := func(node *Node, answered *int) {
		node.SetListener(func(n Notification) bool {
			query, ok := n.(*ScopeQuery)
			if !ok || query.ExpectedOwner != tag {
				return false
			}
			*answered++
			if query.OnMatch != nil {
				query.OnMatch()
			}
			return true
		})
	}

	root := NewNode(nil)
	far := NewNode(root)
	near := NewNode(far)
	origin := NewNode(near)

	var farAnswers, nearAnswers, matches int
	answer(far, &farAnswers)
	answer(near, &nearAnswers)

	Dispatch(NewScopeQuery(tag, func() { matches++ }), origin)

	if matches != 1 {
		t.Errorf("OnMatch invoked %d times, want exactly 1", matches)
	}
	if nearAnswers != 1 {
		t.Errorf("nearest matching ancestor answered %d times, want 1", nearAnswers)
	}
	if farAnswers != 0 {
		t.Errorf("farther ancestor answered %d times, want 0 (propagation must halt)", farAnswers)
	}
}

func TestScopeQueryNoMatchIsBestEffort(t *testing.T) {
	root := NewNode(nil)
	origin := NewNode(root)
	root.SetListener(func(n Notification) bool {
		if query, ok := n.(*ScopeQuery); ok && query.ExpectedOwner == "pager" {
			t.Fatal("mismatched tag must not answer")
		}
		return false
	})

	var matched bool
	Dispatch(NewScopeQuery("carousel", func() { matched = true }), origin)
	if matched {
		t.Error("query with no matching ancestor must not invoke OnMatch")
	}
}
