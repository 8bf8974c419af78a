package scroll

import (
	"testing"
	"time"

	"github.com/woodjobber/over-scroll-views-plus/pkg/geometry"
	"github.com/woodjobber/over-scroll-views-plus/pkg/testkit"
)

func TestDefaultIncrementValues(t *testing.T) {
	metrics := Metrics{ViewportDimension: 500, MaxScrollExtent: 2000}

	if got := DefaultIncrement(IncrementDetails{Type: IncrementLine, Metrics: metrics}); got != 50.0 {
		t.Errorf("line increment = %v, want 50.0", got)
	}
	if got := DefaultIncrement(IncrementDetails{Type: IncrementPage, Metrics: metrics}); got != 400.0 {
		t.Errorf("page increment = %v, want 400.0 (80%% of viewport)", got)
	}
}

func TestApplyIntentAnimatesOverIntentDuration(t *testing.T) {
	fake := testkit.NewFakeClock()
	defer fake.Install()()

	p := newTestPosition(t, 0, 1000, 500)
	ApplyIntent(p, Intent{Direction: geometry.AxisDown, Type: IncrementLine}, nil)

	if !p.IsAnimating() {
		t.Fatal("intent should start an animated offset change")
	}
	// Halfway through the fixed 100ms intent duration the offset must
	// have moved but not arrived.
	fake.StepFrames(50*time.Millisecond, 1)
	if p.Pixels() <= 0 || p.Pixels() >= 50 {
		t.Errorf("offset mid-intent = %v, want strictly between 0 and 50", p.Pixels())
	}
	fake.StepFrames(60*time.Millisecond, 1)
	if p.Pixels() != 50 {
		t.Errorf("offset after intent = %v, want 50", p.Pixels())
	}
}

func TestApplyIntentDirectionSigns(t *testing.T) {
	fake := testkit.NewFakeClock()
	defer fake.Install()()

	p := newTestPosition(t, 0, 1000, 500)
	p.SetPixels(500)

	ApplyIntent(p, Intent{Direction: geometry.AxisUp, Type: IncrementLine}, nil)
	fake.StepFrames(110*time.Millisecond, 1)
	if p.Pixels() != 450 {
		t.Errorf("offset after upward line intent = %v, want 450", p.Pixels())
	}

	// An intent across the axis resolves to zero distance and no-ops.
	ApplyIntent(p, Intent{Direction: geometry.AxisRight, Type: IncrementLine}, nil)
	if p.IsAnimating() {
		t.Error("cross-axis intent must not start an animation")
	}
}

func TestApplyIntentRespectsPhysicsRejection(t *testing.T) {
	p := NewPosition(nil, geometry.AxisDown, NeverScrollablePhysics{}, nil)
	p.SetExtents(0, 1000, 500)

	ApplyIntent(p, Intent{Direction: geometry.AxisDown, Type: IncrementPage}, nil)
	if p.IsAnimating() {
		t.Error("intent must no-op when physics reject user offsets")
	}
}

func TestApplyIntentCustomCalculator(t *testing.T) {
	fake := testkit.NewFakeClock()
	defer fake.Install()()

	p := newTestPosition(t, 0, 1000, 500)
	calc := func(details IncrementDetails) float64 { return 123 }
	ApplyIntent(p, Intent{Direction: geometry.AxisDown, Type: IncrementLine}, calc)
	fake.StepFrames(110*time.Millisecond, 1)
	if p.Pixels() != 123 {
		t.Errorf("offset with custom calculator = %v, want 123", p.Pixels())
	}
}

func TestApplyIntentZeroIncrementNoOps(t *testing.T) {
	p := newTestPosition(t, 0, 1000, 500)
	ApplyIntent(p, Intent{Direction: geometry.AxisDown, Type: IncrementLine},
		func(IncrementDetails) float64 { return 0 })
	if p.IsAnimating() {
		t.Error("zero increment must not start an animation")
	}
}
