// Package autoscroll implements edge-dragging auto-scroll: while a
// dragged item is held near a scrollable's boundary, the scrollable is
// scrolled step by step toward the item until the item is no longer near
// the edge or the drag ends.
package autoscroll

import (
	"math"
	"time"

	"github.com/woodjobber/over-scroll-views-plus/pkg/animation"
	"github.com/woodjobber/over-scroll-views-plus/pkg/errors"
	"github.com/woodjobber/over-scroll-views-plus/pkg/geometry"
	"github.com/woodjobber/over-scroll-views-plus/pkg/scroll"
)

// OverDragMax caps how far a single auto-scroll step moves, in logical
// units, so a large overhang cannot overshoot the target.
const OverDragMax = 20.0

// minScrollDelta is the smallest step worth animating. Anything closer is
// treated as "no scroll needed" so the loop cannot jitter indefinitely.
const minScrollDelta = 1.0

// DefaultVelocityScalar is the step speed used when none is configured.
const DefaultVelocityScalar = 7.0

// Scrollable is the surface the auto-scroller needs from its host.
type Scrollable interface {
	// Position returns the scrollable's scroll position.
	Position() *scroll.Position
	// RenderBounds returns the viewport's on-screen rectangle, in the
	// same coordinate space as the drag-target rectangles reported to
	// StartAutoScrollIfNecessary.
	RenderBounds() geometry.Rect
}

type loopState int

const (
	stateIdle loopState = iota
	stateStepping
)

// AutoScroller drives a scrollable toward a drag target held near its
// edge. Each loop iteration re-reads the latest recorded target, so a
// fresher target reported mid-flight supersedes the stale one; there is
// no queue, only a single latest value.
//
// The loop is an explicit state machine with a suspend point at each
// animated step rather than a recursive call: a completed step re-checks
// the scrolling flag before scheduling the next, so long drags never grow
// the call stack.
type AutoScroller struct {
	scrollable     Scrollable
	velocityScalar float64

	// OnScrolled fires after each completed scroll step.
	OnScrolled func()

	// dragTarget is the latest reported target, in the scrollable's
	// scroll-origin-relative coordinate frame.
	dragTarget geometry.Rect
	scrolling  bool
	state      loopState
}

// NewAutoScroller creates an auto-scroller for a scrollable. A
// non-positive velocityScalar falls back to DefaultVelocityScalar.
func NewAutoScroller(scrollable Scrollable, velocityScalar float64) *AutoScroller {
	if velocityScalar <= 0 {
		velocityScalar = DefaultVelocityScalar
	}
	return &AutoScroller{
		scrollable:     scrollable,
		velocityScalar: velocityScalar,
	}
}

// Scrolling reports whether the auto-scroll loop is running.
func (s *AutoScroller) Scrolling() bool {
	return s.scrolling
}

// StartAutoScrollIfNecessary records the latest drag-target rectangle,
// translated into the scroll-origin frame, and starts the scroll loop if
// it is not already running. A running loop picks the new target up at
// its next iteration.
func (s *AutoScroller) StartAutoScrollIfNecessary(dragTarget geometry.Rect) {
	delta := s.deltaToOrigin()
	s.dragTarget = dragTarget.Translate(delta.X, delta.Y)
	if s.scrolling {
		return
	}
	s.scrolling = true
	s.step()
}

// StopAutoScroll stops the loop at the next iteration boundary. An
// animation step already in flight always completes first.
func (s *AutoScroller) StopAutoScroll() {
	s.scrolling = false
}

// step runs one loop iteration: recompute the overhang from the latest
// target and either animate one clamped scroll step or terminate.
func (s *AutoScroller) step() {
	s.state = stateStepping
	newOffset, ok := s.computeTarget()
	if !ok {
		s.scrolling = false
		s.state = stateIdle
		return
	}
	duration := time.Duration(math.Round(1000.0/s.velocityScalar)) * time.Millisecond
	s.scrollable.Position().AnimateTo(newOffset, duration, animation.Linear, s.stepCompleted)
}

// stepCompleted resumes the loop after an animated step finishes. Stop is
// honored here, at the iteration boundary, never mid-animation.
func (s *AutoScroller) stepCompleted() {
	s.state = stateIdle
	if s.OnScrolled != nil {
		s.OnScrolled()
	}
	if s.scrolling {
		s.step()
	}
}

// computeTarget decides whether the current drag target overhangs the
// leading or trailing viewport edge and returns the next scroll offset.
// The step is clamped to OverDragMax and to the scroll extents; an offset
// within minScrollDelta of the current one means no scroll is needed.
func (s *AutoScroller) computeTarget() (float64, bool) {
	position := s.scrollable.Position()
	bounds := s.scrollable.RenderBounds()
	target := s.dragTarget

	// A target larger than the viewport makes the overhang test oscillate
	// between both edges; that is a caller bug, not a runtime condition.
	errors.Assertf(bounds.Size().Contains(target.Size()), "autoscroll.computeTarget",
		"drag target %vx%v exceeds scrollable bounds %vx%v",
		target.Width(), target.Height(), bounds.Width(), bounds.Height())

	direction := position.AxisDirection()
	axis := direction.Axis()
	delta := s.deltaToOrigin()
	viewportOrigin := bounds.TopLeft().Translate(delta.X, delta.Y)
	viewportStart := geometry.OffsetExtent(viewportOrigin, axis)
	viewportEnd := viewportStart + geometry.SizeExtent(bounds.Size(), axis)
	targetStart := geometry.OffsetExtent(target.TopLeft(), axis)
	targetEnd := targetStart + geometry.SizeExtent(target.Size(), axis)

	m := position.Metrics()
	pixels := m.Pixels
	var newOffset float64
	found := false

	if direction.IsReversed() {
		if targetEnd > viewportEnd && pixels > m.MinScrollExtent {
			overDrag := math.Min(targetEnd-viewportEnd, OverDragMax)
			newOffset = math.Max(m.MinScrollExtent, pixels-overDrag)
			found = true
		} else if targetStart < viewportStart && pixels < m.MaxScrollExtent {
			overDrag := math.Min(viewportStart-targetStart, OverDragMax)
			newOffset = math.Min(m.MaxScrollExtent, pixels+overDrag)
			found = true
		}
	} else {
		if targetStart < viewportStart && pixels > m.MinScrollExtent {
			overDrag := math.Min(viewportStart-targetStart, OverDragMax)
			newOffset = math.Max(m.MinScrollExtent, pixels-overDrag)
			found = true
		} else if targetEnd > viewportEnd && pixels < m.MaxScrollExtent {
			overDrag := math.Min(targetEnd-viewportEnd, OverDragMax)
			newOffset = math.Min(m.MaxScrollExtent, pixels+overDrag)
			found = true
		}
	}

	if !found || math.Abs(newOffset-pixels) < minScrollDelta {
		return 0, false
	}
	return newOffset, true
}

// deltaToOrigin translates on-screen coordinates into the scroll-origin
// frame for the scrollable's axis direction.
func (s *AutoScroller) deltaToOrigin() geometry.Offset {
	position := s.scrollable.Position()
	pixels := position.Pixels()
	switch position.AxisDirection() {
	case geometry.AxisDown:
		return geometry.Offset{Y: pixels}
	case geometry.AxisUp:
		return geometry.Offset{Y: -pixels}
	case geometry.AxisRight:
		return geometry.Offset{X: pixels}
	default:
		return geometry.Offset{X: -pixels}
	}
}
