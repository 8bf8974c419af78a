// Package scroll provides the scroll-position surface the coordination
// packages build on: immutable metrics snapshots, a clamping scroll
// position with animated offsets and synthetic drags, a controller that
// can observe and drive attached positions, and discrete scroll
// increments for keyboard-driven scrolling.
package scroll

import "github.com/woodjobber/over-scroll-views-plus/pkg/geometry"

// Metrics is an immutable snapshot of a scrollable's extent. It is the
// read-only input to every coordination algorithm; consumers copy it,
// never mutate it.
type Metrics struct {
	// MinScrollExtent is the minimum in-range offset.
	MinScrollExtent float64
	// MaxScrollExtent is the maximum in-range offset.
	MaxScrollExtent float64
	// Pixels is the current offset.
	Pixels float64
	// ViewportDimension is the viewport's extent along the scroll axis.
	ViewportDimension float64
	// AxisDirection is the direction in which offsets increase.
	AxisDirection geometry.AxisDirection
}

// Axis returns the scroll axis.
func (m Metrics) Axis() geometry.Axis {
	return m.AxisDirection.Axis()
}

// AtEdge reports whether the offset is pinned against an extent.
func (m Metrics) AtEdge() bool {
	return m.Pixels <= m.MinScrollExtent || m.Pixels >= m.MaxScrollExtent
}

// OutOfRange reports whether the offset has escaped the extents.
func (m Metrics) OutOfRange() bool {
	return m.Pixels < m.MinScrollExtent || m.Pixels > m.MaxScrollExtent
}

// ExtentBefore returns the scrollable distance before the current offset.
func (m Metrics) ExtentBefore() float64 {
	if d := m.Pixels - m.MinScrollExtent; d > 0 {
		return d
	}
	return 0
}

// ExtentAfter returns the scrollable distance after the current offset.
func (m Metrics) ExtentAfter() float64 {
	if d := m.MaxScrollExtent - m.Pixels; d > 0 {
		return d
	}
	return 0
}
