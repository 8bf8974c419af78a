package scroll

import (
	"time"

	"github.com/woodjobber/over-scroll-views-plus/pkg/animation"
	"github.com/woodjobber/over-scroll-views-plus/pkg/geometry"
)

// Position stores a scrollable's current offset and extents and applies
// user and programmatic offset changes through its physics.
type Position struct {
	pixels    float64
	min       float64
	max       float64
	viewport  float64
	hasPixels bool
	direction geometry.AxisDirection
	physics   Physics

	controller *Controller
	onUpdate   func()

	// OnFling receives the residual velocity when a synthetic drag ends
	// with drag-end details. The host's ballistic simulation consumes it.
	OnFling func(velocity float64)

	activity *animation.Animation
}

// NewPosition creates a scroll position. The onUpdate callback fires after
// every offset change. A nil physics defaults to ClampingPhysics.
func NewPosition(controller *Controller, direction geometry.AxisDirection, physics Physics, onUpdate func()) *Position {
	if physics == nil {
		physics = ClampingPhysics{}
	}
	p := &Position{
		direction:  direction,
		physics:    physics,
		onUpdate:   onUpdate,
		controller: controller,
	}
	if controller != nil {
		p.pixels = controller.InitialScrollOffset
		controller.attach(p)
	}
	return p
}

// Pixels returns the current scroll offset.
func (p *Position) Pixels() float64 {
	return p.pixels
}

// HasPixels reports whether extents have been set at least once.
func (p *Position) HasPixels() bool {
	return p.hasPixels
}

// AxisDirection returns the direction in which offsets increase.
func (p *Position) AxisDirection() geometry.AxisDirection {
	return p.direction
}

// Physics returns the position's physics.
func (p *Position) Physics() Physics {
	return p.physics
}

// Metrics returns an immutable snapshot of the position.
func (p *Position) Metrics() Metrics {
	return Metrics{
		MinScrollExtent:   p.min,
		MaxScrollExtent:   p.max,
		Pixels:            p.pixels,
		ViewportDimension: p.viewport,
		AxisDirection:     p.direction,
	}
}

// AtEdge reports whether the offset is pinned against an extent.
func (p *Position) AtEdge() bool {
	return p.Metrics().AtEdge()
}

// SetExtents updates the scrollable range and viewport dimension,
// re-clamping the current offset.
func (p *Position) SetExtents(min, max, viewport float64) {
	if max < min {
		max = min
	}
	p.min = min
	p.max = max
	p.viewport = viewport
	p.hasPixels = true
	p.SetPixels(p.pixels)
}

// SetPixels moves the offset directly, clamped to the extents.
func (p *Position) SetPixels(value float64) {
	clamped := clamp(value, p.min, p.max)
	if clamped == p.pixels && p.hasPixels {
		return
	}
	p.pixels = clamped
	p.notify()
}

// ApplyUserOffset applies a drag delta through the physics and returns the
// residual overscroll, zero when the delta was absorbed in range.
func (p *Position) ApplyUserOffset(delta float64) float64 {
	p.stopActivity()
	m := p.Metrics()
	adjusted := p.physics.ApplyPhysicsToUserOffset(m, delta)
	proposed := p.pixels + adjusted
	overscroll := p.physics.ApplyBoundaryConditions(m, proposed)
	p.SetPixels(proposed - overscroll)
	return overscroll
}

// AnimateTo animates the offset to a target value. The completion callback
// fires only if the animation finishes without being superseded.
func (p *Position) AnimateTo(to float64, duration time.Duration, curve animation.Curve, whenComplete func()) {
	p.stopActivity()
	to = clamp(to, p.min, p.max)
	p.activity = animation.Animate(p.pixels, to, duration, curve,
		func(value float64) {
			p.pixels = clamp(value, p.min, p.max)
			p.notify()
		},
		func() {
			p.activity = nil
			if whenComplete != nil {
				whenComplete()
			}
		},
	)
}

// MoveTo animates the offset to a target value with no completion hook.
func (p *Position) MoveTo(to float64, duration time.Duration, curve animation.Curve) {
	p.AnimateTo(to, duration, curve, nil)
}

// IsAnimating reports whether an animated offset change is in flight.
func (p *Position) IsAnimating() bool {
	return p.activity != nil
}

func (p *Position) stopActivity() {
	if p.activity != nil {
		p.activity.Stop()
		p.activity = nil
	}
}

func (p *Position) notify() {
	if p.onUpdate != nil {
		p.onUpdate()
	}
	if p.controller != nil {
		p.controller.notifyListeners()
	}
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
