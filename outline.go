package stroke

import (
	"fmt"
	"math"
)

// Tag classifies an outline point.
type Tag uint8

const (
	// TagOnCurve marks a point the outline passes through.
	TagOnCurve Tag = iota
	// TagQuadratic marks a quadratic Bézier control point. Two consecutive
	// quadratic controls imply an on-curve point halfway between them.
	TagQuadratic
	// TagCubic marks a cubic Bézier control point. Cubic controls always
	// come in pairs.
	TagCubic
)

func (t Tag) String() string {
	switch t {
	case TagOnCurve:
		return "on"
	case TagQuadratic:
		return "quad"
	case TagCubic:
		return "cubic"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// Orientation is the winding direction of an outline.
type Orientation int

const (
	// OrientationNone is reported for outlines without area.
	OrientationNone Orientation = iota
	// OrientationClockwise is the TrueType convention for outer contours
	// (y axis pointing up).
	OrientationClockwise
	// OrientationCounterClockwise is the PostScript convention for outer
	// contours (y axis pointing up).
	OrientationCounterClockwise
)

// Outline is a set of contours stored as flat parallel arrays.
//
// Points and Tags have the same length. Contours holds, for every contour,
// the index of its last point; contour i spans Points[Contours[i-1]+1]
// through Points[Contours[i]]. Contours are implicitly closed unless the
// stroker is told to treat them as open.
type Outline struct {
	Points   []Point
	Tags     []Tag
	Contours []int
}

// NewOutline returns an empty outline with room for n points.
func NewOutline(n int) *Outline {
	return &Outline{
		Points: make([]Point, 0, n),
		Tags:   make([]Tag, 0, n),
	}
}

// MoveTo starts a new contour at p.
func (o *Outline) MoveTo(p Point) *Outline {
	o.Points = append(o.Points, p)
	o.Tags = append(o.Tags, TagOnCurve)
	o.Contours = append(o.Contours, len(o.Points)-1)
	return o
}

// LineTo appends an on-curve point to the current contour.
func (o *Outline) LineTo(p Point) *Outline {
	return o.push(p, TagOnCurve)
}

// QuadTo appends a quadratic segment to the current contour.
func (o *Outline) QuadTo(control, p Point) *Outline {
	o.push(control, TagQuadratic)
	return o.push(p, TagOnCurve)
}

// CubicTo appends a cubic segment to the current contour.
func (o *Outline) CubicTo(c1, c2, p Point) *Outline {
	o.push(c1, TagCubic)
	o.push(c2, TagCubic)
	return o.push(p, TagOnCurve)
}

// push appends a point to the last contour, starting one if there is none.
func (o *Outline) push(p Point, tag Tag) *Outline {
	o.Points = append(o.Points, p)
	o.Tags = append(o.Tags, tag)
	if len(o.Contours) == 0 {
		o.Contours = append(o.Contours, len(o.Points)-1)
	} else {
		o.Contours[len(o.Contours)-1] = len(o.Points) - 1
	}
	return o
}

// Len returns the number of points.
func (o *Outline) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Points)
}

// IsEmpty reports whether the outline has no points.
func (o *Outline) IsEmpty() bool {
	return o.Len() == 0
}

// Contour returns the half-open point range [first, end) of contour i.
func (o *Outline) Contour(i int) (first, end int) {
	if i > 0 {
		first = o.Contours[i-1] + 1
	}
	return first, o.Contours[i] + 1
}

// Clone returns a deep copy of the outline.
func (o *Outline) Clone() *Outline {
	if o == nil {
		return nil
	}
	return &Outline{
		Points:   append([]Point(nil), o.Points...),
		Tags:     append([]Tag(nil), o.Tags...),
		Contours: append([]int(nil), o.Contours...),
	}
}

// Reset empties the outline, keeping its storage.
func (o *Outline) Reset() {
	o.Points = o.Points[:0]
	o.Tags = o.Tags[:0]
	o.Contours = o.Contours[:0]
}

// Validate checks the structural consistency of the outline: parallel
// arrays, strictly increasing contour ends covering every point, known tags
// and finite coordinates.
func (o *Outline) Validate() error {
	if o == nil {
		return fmt.Errorf("%w: nil outline", ErrInvalidArgument)
	}
	if len(o.Points) != len(o.Tags) {
		return fmt.Errorf("%w: %d points but %d tags", ErrInvalidOutline, len(o.Points), len(o.Tags))
	}
	prev := -1
	for i, last := range o.Contours {
		if last <= prev || last >= len(o.Points) {
			return &OutlineError{Contour: i, Point: last, Reason: "contour end out of order or out of range"}
		}
		prev = last
	}
	if prev != len(o.Points)-1 {
		return &OutlineError{Contour: len(o.Contours), Point: prev + 1, Reason: "points after the last contour end"}
	}
	for i, p := range o.Points {
		if !p.IsFinite() {
			return &OutlineError{Contour: o.contourOf(i), Point: i, Reason: "non-finite coordinate"}
		}
		if o.Tags[i] > TagCubic {
			return &OutlineError{Contour: o.contourOf(i), Point: i, Reason: "unknown tag " + o.Tags[i].String()}
		}
	}
	return nil
}

func (o *Outline) contourOf(point int) int {
	for i, last := range o.Contours {
		if point <= last {
			return i
		}
	}
	return len(o.Contours)
}

// Orientation returns the winding direction of the outline from the sign
// of its area, with control points taken as polygon vertices.
func (o *Outline) Orientation() Orientation {
	var area float64
	for i := range o.Contours {
		first, end := o.Contour(i)
		if end-first < 2 {
			continue
		}
		prev := o.Points[end-1]
		for _, cur := range o.Points[first:end] {
			area += (cur.Y - prev.Y) * (cur.X + prev.X)
			prev = cur
		}
	}
	switch {
	case area > 0:
		return OrientationCounterClockwise
	case area < 0:
		return OrientationClockwise
	default:
		return OrientationNone
	}
}

// Bounds returns the control box of the outline. An empty outline returns
// zero points.
func (o *Outline) Bounds() (lo, hi Point) {
	if o.IsEmpty() {
		return Point{}, Point{}
	}
	lo = Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range o.Points {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
