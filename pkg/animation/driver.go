package animation

import "time"

// Animation drives a float value from one offset to another over a fixed
// duration, applying an easing curve. It is the primitive behind animated
// scroll offsets: the value callback fires once per frame, and the
// completion callback fires exactly once when the target is reached.
//
// Stopping an animation early never fires the completion callback.
type Animation struct {
	from       float64
	to         float64
	duration   time.Duration
	curve      Curve
	onTick     func(value float64)
	onComplete func()
	ticker     *Ticker
	done       bool
}

// Animate starts a new animation from one value to another. The tick
// callback receives the interpolated value each frame; the completion
// callback, if non-nil, fires once when the animation finishes naturally.
// A non-positive duration completes on the first frame.
func Animate(from, to float64, duration time.Duration, curve Curve, onTick func(float64), onComplete func()) *Animation {
	if curve == nil {
		curve = Linear
	}
	a := &Animation{
		from:       from,
		to:         to,
		duration:   duration,
		curve:      curve,
		onTick:     onTick,
		onComplete: onComplete,
	}
	a.ticker = NewTicker(a.tick)
	a.ticker.Start()
	return a
}

func (a *Animation) tick(elapsed time.Duration) {
	if a.done {
		return
	}
	progress := 1.0
	if a.duration > 0 {
		progress = float64(elapsed) / float64(a.duration)
		if progress > 1.0 {
			progress = 1.0
		}
	}
	value := a.from + (a.to-a.from)*a.curve(progress)
	if a.onTick != nil {
		a.onTick(value)
	}
	if progress >= 1.0 {
		a.finish()
	}
}

func (a *Animation) finish() {
	a.done = true
	a.ticker.Stop()
	if a.onComplete != nil {
		a.onComplete()
	}
}

// Stop cancels the animation at its current value. The completion
// callback does not fire.
func (a *Animation) Stop() {
	if a.done {
		return
	}
	a.done = true
	a.ticker.Stop()
}

// IsAnimating returns true while the animation is still running.
func (a *Animation) IsAnimating() bool {
	return !a.done
}
