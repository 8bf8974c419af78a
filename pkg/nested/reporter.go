package nested

import (
	"github.com/woodjobber/over-scroll-views-plus/pkg/gestures"
	"github.com/woodjobber/over-scroll-views-plus/pkg/notifications"
	"github.com/woodjobber/over-scroll-views-plus/pkg/scroll"
)

// Reporter publishes a scrollable's drag activity onto the notification
// bus. The host wires its drag recognizer callbacks through a Reporter;
// the position applies each delta, and whatever the position refuses to
// absorb goes out as an Overscroll notification for ancestors to claim.
type Reporter struct {
	position *scroll.Position
	origin   *notifications.Node
	dragging bool
}

// NewReporter creates a reporter for a position. Notifications originate
// at origin, which should sit below the owning coordinator's node.
func NewReporter(position *scroll.Position, origin *notifications.Node) *Reporter {
	return &Reporter{position: position, origin: origin}
}

// Callbacks returns the drag lifecycle hooks to hand to the scrollable's
// recognizer factory.
func (r *Reporter) Callbacks() gestures.DragCallbacks {
	return gestures.DragCallbacks{
		OnStart:  r.DragStart,
		OnUpdate: r.DragUpdate,
		OnEnd:    r.DragEnd,
		OnCancel: r.DragCancel,
	}
}

// DragStart announces the start of a drag on the position.
func (r *Reporter) DragStart(details gestures.DragStartDetails) {
	r.dragging = true
	notifications.Dispatch(
		notifications.NewScrollStart(r.position.Metrics(), &details), r.origin)
}

// DragUpdate applies a drag delta to the position. In-range motion emits
// a ScrollUpdate; motion the position refuses emits an Overscroll carrying
// the drag details so an ancestor can continue the gesture.
func (r *Reporter) DragUpdate(details gestures.DragUpdateDetails) {
	residual := r.position.ApplyUserOffset(-details.PrimaryDelta)
	metrics := r.position.Metrics()
	if residual != 0 {
		notifications.Dispatch(
			notifications.NewOverscroll(metrics, residual, &details), r.origin)
		return
	}
	notifications.Dispatch(
		notifications.NewScrollUpdate(metrics, &details), r.origin)
}

// DragEnd announces the end of a drag, carrying the residual details so a
// ceded gesture can continue as a fling on its new owner.
func (r *Reporter) DragEnd(details gestures.DragEndDetails) {
	if !r.dragging {
		return
	}
	r.dragging = false
	notifications.Dispatch(
		notifications.NewScrollEnd(r.position.Metrics(), &details), r.origin)
}

// DragCancel announces the end of a drag with no residual velocity.
func (r *Reporter) DragCancel() {
	if !r.dragging {
		return
	}
	r.dragging = false
	notifications.Dispatch(
		notifications.NewScrollEnd(r.position.Metrics(), nil), r.origin)
}
