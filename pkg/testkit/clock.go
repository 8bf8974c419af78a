// Package testkit provides deterministic test doubles for the scroll
// coordination packages.
package testkit

import (
	"sync"
	"time"

	"github.com/woodjobber/over-scroll-views-plus/pkg/animation"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// StepFrames advances the clock frame by frame, stepping the animation
// tickers after each advance.
func (c *FakeClock) StepFrames(frame time.Duration, count int) {
	for i := 0; i < count; i++ {
		c.Advance(frame)
		animation.StepTickers()
	}
}

// Install makes the fake clock the animation time source and returns a
// function restoring the previous clock.
func (c *FakeClock) Install() func() {
	prev := animation.SetClock(c)
	return func() { animation.SetClock(prev) }
}
