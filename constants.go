package curveisect

// Numerical tolerances used throughout the intersection engine. Each one
// governs a different comparison and is not interchangeable with the
// others: picking the wrong one shows up as missed or duplicated records
// on curves whose geometry is close to degenerate.
const (
	// geometricEpsilon bounds the broad-phase bounding-box test; boxes
	// within this distance of touching are still treated as colliding.
	geometricEpsilon = 1e-7

	// curveTimeEpsilon bounds how close to 0 or 1 a curve parameter must
	// be before it is treated as coincident with an endpoint.
	curveTimeEpsilon = 1e-8

	// fatLineEpsilon is the convergence threshold for the Bézier-clipping
	// recursion: once both curves' parameter windows fall below this, the
	// midpoint is reported as the intersection.
	fatLineEpsilon = 1e-9

	// epsilon is the general near-zero threshold for scalar comparisons
	// outside of the fat-line recursion (collapsed control points in
	// evaluate, the d1 test in selfIntersection, the dispatcher's own
	// bounding-box padding).
	epsilon = 1e-12

	// machineEpsilon bounds the line/line cross-product test, which is
	// sensitive enough that only true floating-point noise should pass.
	machineEpsilon = 1.12e-16
)

func isZero(v float64) bool {
	return v >= -epsilon && v <= epsilon
}

func isMachineZero(v float64) bool {
	return v >= -machineEpsilon && v <= machineEpsilon
}
