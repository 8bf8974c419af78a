package scroll

// Physics determines how user offsets map onto a position.
type Physics interface {
	// ApplyPhysicsToUserOffset adjusts a raw drag delta.
	ApplyPhysicsToUserOffset(m Metrics, offset float64) float64
	// ApplyBoundaryConditions returns the part of a proposed offset that
	// lies outside the extents; the position subtracts it before applying.
	ApplyBoundaryConditions(m Metrics, value float64) float64
	// ShouldAcceptUserOffset reports whether user-driven offset changes
	// are currently allowed.
	ShouldAcceptUserOffset(m Metrics) bool
}

// ClampingPhysics stops at the extents with no overscroll.
type ClampingPhysics struct{}

// ApplyPhysicsToUserOffset returns the raw delta unchanged.
func (ClampingPhysics) ApplyPhysicsToUserOffset(_ Metrics, offset float64) float64 {
	return offset
}

// ApplyBoundaryConditions clamps at the min/max extents.
func (ClampingPhysics) ApplyBoundaryConditions(m Metrics, value float64) float64 {
	if value < m.MinScrollExtent {
		return value - m.MinScrollExtent
	}
	if value > m.MaxScrollExtent {
		return value - m.MaxScrollExtent
	}
	return 0
}

// ShouldAcceptUserOffset allows user scrolling whenever there is any
// scrollable range.
func (ClampingPhysics) ShouldAcceptUserOffset(m Metrics) bool {
	return m.MaxScrollExtent > m.MinScrollExtent
}

// NeverScrollablePhysics rejects all user-driven offset changes.
// Programmatic offsets still apply.
type NeverScrollablePhysics struct{}

// ApplyPhysicsToUserOffset suppresses the delta entirely.
func (NeverScrollablePhysics) ApplyPhysicsToUserOffset(_ Metrics, _ float64) float64 {
	return 0
}

// ApplyBoundaryConditions clamps at the min/max extents.
func (NeverScrollablePhysics) ApplyBoundaryConditions(m Metrics, value float64) float64 {
	return ClampingPhysics{}.ApplyBoundaryConditions(m, value)
}

// ShouldAcceptUserOffset always reports false.
func (NeverScrollablePhysics) ShouldAcceptUserOffset(_ Metrics) bool {
	return false
}
