package scroll

import (
	"time"

	"github.com/woodjobber/over-scroll-views-plus/pkg/animation"
	"github.com/woodjobber/over-scroll-views-plus/pkg/errors"
	"github.com/woodjobber/over-scroll-views-plus/pkg/geometry"
)

// IncrementType distinguishes discrete keyboard-driven scroll steps.
type IncrementType int

const (
	// IncrementLine scrolls by a small fixed distance, as for arrow keys.
	IncrementLine IncrementType = iota
	// IncrementPage scrolls by most of a viewport, as for page up/down.
	IncrementPage
)

// DefaultLineIncrement is the distance of one line step.
const DefaultLineIncrement = 50.0

// defaultPageFraction is the share of the viewport one page step covers.
const defaultPageFraction = 0.8

// IntentDuration is the animation length of a resolved scroll intent.
const IntentDuration = 100 * time.Millisecond

// IncrementDetails carries the inputs an increment calculator resolves.
type IncrementDetails struct {
	Type    IncrementType
	Metrics Metrics
}

// IncrementCalculator converts an increment request into a distance.
type IncrementCalculator func(details IncrementDetails) float64

// DefaultIncrement is the calculator used when none is configured:
// 50 units per line, 80% of the viewport per page.
func DefaultIncrement(details IncrementDetails) float64 {
	switch details.Type {
	case IncrementPage:
		return details.Metrics.ViewportDimension * defaultPageFraction
	default:
		return DefaultLineIncrement
	}
}

// Intent is a keyboard or semantic request to scroll in a direction by a
// discrete increment.
type Intent struct {
	Direction geometry.AxisDirection
	Type      IncrementType
}

// ApplyIntent resolves an intent into a signed distance and animates the
// position there over IntentDuration with ease-in-out. It no-ops when the
// resolved increment is zero, when the intent runs along the wrong axis,
// or when the physics reject user-driven offset changes. A nil position
// is a programming error: the action was invoked outside any scrollable
// context with no default available.
func ApplyIntent(p *Position, intent Intent, calc IncrementCalculator) {
	errors.Assertf(p != nil, "scroll.ApplyIntent",
		"no scroll position available to receive a scroll intent")
	if p == nil {
		return
	}
	m := p.Metrics()
	if !p.physics.ShouldAcceptUserOffset(m) {
		return
	}
	if calc == nil {
		calc = DefaultIncrement
	}
	increment := calc(IncrementDetails{Type: intent.Type, Metrics: m})
	delta := increment * directionSign(intent.Direction, p.direction)
	if delta == 0 {
		return
	}
	target := clamp(p.pixels+delta, p.min, p.max)
	p.MoveTo(target, IntentDuration, animation.EaseInOut)
}

// directionSign maps an intent direction onto the position's offset sign:
// +1 along the growth direction, -1 against it, 0 across axes.
func directionSign(intent, growth geometry.AxisDirection) float64 {
	if intent.Axis() != growth.Axis() {
		return 0
	}
	if intent == growth {
		return 1
	}
	return -1
}
