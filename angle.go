package stroke

import "math"

// Tolerances inherited from 26.6 fixed-point stroking. Coordinates are in
// output units (pixels for scaled glyphs), so 2/64 is two 26.6 units.
const (
	// smallEpsilon is the per-axis distance under which two points are
	// treated as coincident.
	smallEpsilon = 2.0 / 64

	// smallCurveAngle is the largest tangent deviation a quadratic or
	// cubic sub-arc may have before it is subdivided again.
	smallCurveAngle = math.Pi / 6

	// minMiterAngle is the half-turn below which a miter degrades to a
	// bevel because sin(theta) is no longer usable (57/65536 of a degree).
	minMiterAngle = 57.0 / 65536 * math.Pi / 180

	// reversalEpsilon absorbs float rounding when a turn of exactly π
	// (a path doubling back on itself) must be recognised.
	reversalEpsilon = 1e-12

	// arcCubicAngle is the widest sweep approximated by a single cubic.
	arcCubicAngle = math.Pi / 2
)

func isSmall(v float64) bool {
	return v > -smallEpsilon && v < smallEpsilon
}

// normalizeAngle wraps a into (-π, π].
func normalizeAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// angleDiff returns the signed turn from a1 to a2, in (-π, π].
func angleDiff(a1, a2 float64) float64 {
	return normalizeAngle(a2 - a1)
}

// angleMean returns the direction halfway between a1 and a2 along the
// shorter turn.
func angleMean(a1, a2 float64) float64 {
	return normalizeAngle(a1 + angleDiff(a1, a2)/2)
}

// isReversal reports whether turn is a half revolution.
func isReversal(turn float64) bool {
	return math.Abs(math.Abs(turn)-math.Pi) < reversalEpsilon
}

// polar returns the vector of the given length pointing along angle.
func polar(length, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: length * cos, Y: length * sin}
}

// sideRotate maps a border side to its offset direction relative to the
// path tangent: +π/2 for side 0, -π/2 for side 1.
func sideRotate(side int) float64 {
	return math.Pi/2 - float64(side)*math.Pi
}
