package stroke

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointFromFixed converts a 26.6 fixed-point vector to a Point.
func PointFromFixed(p fixed.Point26_6) Point {
	return Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

// Fixed converts the point to 26.6 fixed-point, rounding to the nearest
// representable value.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Mid returns the midpoint between p and q. It does not overflow for
// finite points.
func (p Point) Mid(q Point) Point {
	return Point{X: p.X/2 + q.X/2, Y: p.Y/2 + q.Y/2}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Angle returns the direction of the vector in radians, in (-π, π].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// near reports whether p and q coincide within smallEpsilon on both axes.
func (p Point) near(q Point) bool {
	return isSmall(p.X-q.X) && isSmall(p.Y-q.Y)
}
