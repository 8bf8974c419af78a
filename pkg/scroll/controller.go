package scroll

import (
	"slices"
	"time"

	"github.com/woodjobber/over-scroll-views-plus/pkg/animation"
	"github.com/woodjobber/over-scroll-views-plus/pkg/errors"
)

// Controller observes and drives the scroll positions attached to it.
type Controller struct {
	// InitialScrollOffset seeds newly attached positions.
	InitialScrollOffset float64

	positions      []*Position
	listeners      map[int]func()
	nextListenerID int
}

// Offset returns the current scroll offset of the attached position.
func (c *Controller) Offset() float64 {
	if len(c.positions) > 0 {
		return c.positions[0].Pixels()
	}
	return c.InitialScrollOffset
}

// Position returns the single attached position, or nil when none is
// attached. Sharing one default controller between several positions is a
// programming error.
func (c *Controller) Position() *Position {
	errors.Assertf(len(c.positions) <= 1, "scroll.Controller.Position",
		"%d positions attached to a controller used as a single-position default", len(c.positions))
	if len(c.positions) == 0 {
		return nil
	}
	return c.positions[0]
}

// HasClients reports whether any position is attached.
func (c *Controller) HasClients() bool {
	return len(c.positions) > 0
}

// AddListener registers a callback for scroll changes.
// It returns an unsubscribe function.
func (c *Controller) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = listener
	return func() {
		delete(c.listeners, id)
	}
}

// JumpTo moves all attached positions to a new offset without animating.
func (c *Controller) JumpTo(offset float64) {
	c.InitialScrollOffset = offset
	if len(c.positions) == 0 {
		c.notifyListeners()
		return
	}
	for _, position := range c.positions {
		position.SetPixels(offset)
	}
}

// AnimateTo animates all attached positions to a new offset.
func (c *Controller) AnimateTo(offset float64, duration time.Duration, curve animation.Curve) {
	if len(c.positions) == 0 {
		c.InitialScrollOffset = offset
		c.notifyListeners()
		return
	}
	for _, position := range c.positions {
		position.MoveTo(offset, duration, curve)
	}
}

func (c *Controller) attach(position *Position) {
	if slices.Contains(c.positions, position) {
		return
	}
	c.positions = append(c.positions, position)
}

// Detach removes a position from the controller.
func (c *Controller) Detach(position *Position) {
	for i, existing := range c.positions {
		if existing == position {
			c.positions = append(c.positions[:i], c.positions[i+1:]...)
			return
		}
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}
