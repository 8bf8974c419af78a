package geometry

import "fmt"

// Axis identifies a scroll axis.
type Axis int

const (
	// AxisVertical scrolls along the y axis (the zero value).
	AxisVertical Axis = iota
	// AxisHorizontal scrolls along the x axis.
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// AxisDirection identifies the direction along an axis in which scroll
// offsets increase. AxisDown means offset zero is at the top and growing
// offsets reveal content further down; AxisUp is the reverse orientation.
type AxisDirection int

const (
	// AxisDown grows scroll offsets toward the bottom (the zero value).
	AxisDown AxisDirection = iota
	// AxisUp grows scroll offsets toward the top.
	AxisUp
	// AxisRight grows scroll offsets toward the right.
	AxisRight
	// AxisLeft grows scroll offsets toward the left.
	AxisLeft
)

// String returns a human-readable representation of the axis direction.
func (d AxisDirection) String() string {
	switch d {
	case AxisDown:
		return "down"
	case AxisUp:
		return "up"
	case AxisRight:
		return "right"
	case AxisLeft:
		return "left"
	default:
		return fmt.Sprintf("AxisDirection(%d)", int(d))
	}
}

// Axis returns the axis the direction runs along.
func (d AxisDirection) Axis() Axis {
	switch d {
	case AxisRight, AxisLeft:
		return AxisHorizontal
	default:
		return AxisVertical
	}
}

// IsReversed reports whether offsets grow against the coordinate axis,
// i.e. toward the top or toward the left.
func (d AxisDirection) IsReversed() bool {
	return d == AxisUp || d == AxisLeft
}

// Flipped returns the opposite direction along the same axis.
func (d AxisDirection) Flipped() AxisDirection {
	switch d {
	case AxisDown:
		return AxisUp
	case AxisUp:
		return AxisDown
	case AxisRight:
		return AxisLeft
	default:
		return AxisRight
	}
}

// OffsetExtent returns the component of o along the given axis.
func OffsetExtent(o Offset, axis Axis) float64 {
	if axis == AxisHorizontal {
		return o.X
	}
	return o.Y
}

// SizeExtent returns the component of s along the given axis.
func SizeExtent(s Size, axis Axis) float64 {
	if axis == AxisHorizontal {
		return s.Width
	}
	return s.Height
}
