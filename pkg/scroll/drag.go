package scroll

import "github.com/woodjobber/over-scroll-views-plus/pkg/gestures"

// DragSession is the synthetic drag controller a position hands out from
// Drag. It implements [gestures.Drag] and is exclusively owned by its
// holder: no second reference may exist, and it is released exactly once,
// through End, Cancel, or Dispose.
type DragSession struct {
	position *Position
	onCancel func()
	active   bool
}

// Drag originates a fresh synthetic drag on the position. The start
// details are a new origin, never reused from a bubbled notification
// payload: a bubbled payload belongs to a different time and position
// reference frame and would desynchronize the offset math.
//
// The onCancel callback fires once when the session releases through End
// or Cancel; holders use it to clear their reference without re-entering
// teardown.
func (p *Position) Drag(_ gestures.DragStartDetails, onCancel func()) *DragSession {
	p.stopActivity()
	return &DragSession{
		position: p,
		onCancel: onCancel,
		active:   true,
	}
}

// Update feeds a drag position change into the underlying position.
func (s *DragSession) Update(details gestures.DragUpdateDetails) {
	if !s.active {
		return
	}
	s.position.ApplyUserOffset(-details.PrimaryDelta)
}

// End completes the drag, forwarding residual velocity to the position's
// fling hook so the motion continues ballistically.
func (s *DragSession) End(details gestures.DragEndDetails) {
	if !s.active {
		return
	}
	if s.position.OnFling != nil {
		s.position.OnFling(-details.PrimaryVelocity)
	}
	s.release()
}

// Cancel abandons the drag with no velocity; the position snaps wherever
// it currently is.
func (s *DragSession) Cancel() {
	if !s.active {
		return
	}
	s.release()
}

// Dispose releases the session from the holder's own teardown path. It
// does not run end or cancel semantics and does not fire the onCancel
// callback, so teardown never recurses back into the holder.
func (s *DragSession) Dispose() {
	s.active = false
	s.onCancel = nil
}

// Active reports whether the session still owns the drag.
func (s *DragSession) Active() bool {
	return s.active
}

func (s *DragSession) release() {
	s.active = false
	cb := s.onCancel
	s.onCancel = nil
	if cb != nil {
		cb()
	}
}

var _ gestures.Drag = (*DragSession)(nil)
