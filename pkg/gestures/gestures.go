// Package gestures defines the drag lifecycle surface the scroll
// coordination packages exchange with the host gesture layer: pointer
// events, drag detail records, the Drag controller interface, and
// recognizer factories with a proxying decorator.
//
// The host framework owns hit-testing, the gesture arena, and pointer
// routing; this package only describes the hand-off boundary.
package gestures

import (
	"time"

	"github.com/woodjobber/over-scroll-views-plus/pkg/geometry"
)

// DefaultTouchSlop is the distance a pointer must travel before a drag
// recognizer claims the gesture.
const DefaultTouchSlop = 18.0

// PointerPhase identifies a stage in a pointer's lifecycle.
type PointerPhase int

const (
	// PointerPhaseDown is the initial contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a position change while in contact.
	PointerPhaseMove
	// PointerPhaseUp is the contact ending normally.
	PointerPhaseUp
	// PointerPhaseCancel is the contact ending abnormally.
	PointerPhaseCancel
)

// PointerEvent describes a single pointer state change.
type PointerEvent struct {
	PointerID int
	Position  geometry.Offset
	Phase     PointerPhase
	Timestamp time.Duration
}

// Velocity describes pointer speed at the end of a drag.
type Velocity struct {
	PixelsPerSecond geometry.Offset
}

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	GlobalPosition  geometry.Offset
	SourceTimeStamp time.Duration
}

// DragUpdateDetails describes a drag position change.
type DragUpdateDetails struct {
	GlobalPosition geometry.Offset
	Delta          geometry.Offset
	// PrimaryDelta is the component of Delta along the recognizer's axis.
	PrimaryDelta    float64
	SourceTimeStamp time.Duration
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	Velocity Velocity
	// PrimaryVelocity is the component of Velocity along the recognizer's axis.
	PrimaryVelocity float64
}

// Drag is a stateful handle for an in-progress pointer drag. The holder
// owns it exclusively and must release it exactly once, through End,
// Cancel, or the holder's own teardown.
type Drag interface {
	// Update feeds a position change into the drag.
	Update(details DragUpdateDetails)
	// End completes the drag with a final velocity.
	End(details DragEndDetails)
	// Cancel abandons the drag with no velocity.
	Cancel()
}

// DragCallbacks carries the lifecycle hooks a drag recognizer reports to.
type DragCallbacks struct {
	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()
}

// DragRecognizer is the minimal surface of a per-axis drag recognizer
// provided by the host gesture layer.
type DragRecognizer interface {
	AddPointer(event PointerEvent)
	HandleEvent(event PointerEvent)
	Dispose()
}

// RecognizerFactory creates a drag recognizer wired to the given callbacks.
type RecognizerFactory func(callbacks DragCallbacks) DragRecognizer

// FactoryTable maps each scroll axis to the factory creating its recognizer.
type FactoryTable map[geometry.Axis]RecognizerFactory
