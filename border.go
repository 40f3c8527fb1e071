package stroke

import (
	"fmt"
	"math"
)

// MaxBorderPoints is the largest number of points a single border may
// hold. Growth past it fails with ErrAllocation.
const MaxBorderPoints = 1 << 26

// pointTag packs the curve kind of a border point together with subpath
// boundary markers. A point with neither kind bit set is a quadratic
// control.
type pointTag uint8

const (
	tagOn pointTag = 1 << iota
	tagCubic
	tagBegin
	tagEnd

	tagConic        pointTag = 0
	tagBoundaryMask          = tagBegin | tagEnd
)

// border is one side of a stroke: a growable point/tag buffer with
// bookkeeping for the subpath currently being built.
type border struct {
	points []Point
	tags   []pointTag

	// start is the index of the first point of the open subpath, or -1.
	start int

	// movable means the last point may be replaced by the next lineTo
	// instead of being followed by a new point.
	movable bool

	// valid is set by counts and cleared by any mutation.
	valid bool

	limit int
}

func newBorder() border {
	return border{start: -1, limit: MaxBorderPoints}
}

func (b *border) len() int { return len(b.points) }

// grow makes room for n more points. Capacity grows to 2*cap+16 until it
// suffices.
func (b *border) grow(n int) error {
	need := len(b.points) + n
	if need > b.limit {
		return fmt.Errorf("%w: %d points exceed limit %d", ErrAllocation, need, b.limit)
	}
	if need <= cap(b.points) {
		return nil
	}
	newCap := cap(b.points)
	for newCap < need {
		newCap = 2*newCap + 16
	}
	newCap = min(newCap, b.limit)

	points := make([]Point, len(b.points), newCap)
	copy(points, b.points)
	tags := make([]pointTag, len(b.tags), newCap)
	copy(tags, b.tags)
	b.points, b.tags = points, tags

	if cap(b.points) > 4096 {
		Logger().Debug("stroke: border grown", "points", len(b.points), "capacity", newCap)
	}
	return nil
}

func (b *border) push(p Point, tag pointTag) {
	b.points = append(b.points, p)
	b.tags = append(b.tags, tag)
}

// lineTo adds an on-curve point, or replaces the last point when the
// previous append was movable. A point coinciding with the last point of
// the open subpath is dropped.
func (b *border) lineTo(to Point, movable bool) error {
	b.valid = false
	if b.movable {
		b.points[len(b.points)-1] = to
		b.movable = movable
		return nil
	}
	if n := len(b.points); n > b.start && b.start >= 0 && b.points[n-1].near(to) {
		return nil
	}
	if err := b.grow(1); err != nil {
		return err
	}
	b.push(to, tagOn)
	b.movable = movable
	return nil
}

func (b *border) quadTo(control, to Point) error {
	b.valid = false
	if err := b.grow(2); err != nil {
		return err
	}
	b.push(control, tagConic)
	b.push(to, tagOn)
	b.movable = false
	return nil
}

func (b *border) cubicTo(c1, c2, to Point) error {
	b.valid = false
	if err := b.grow(3); err != nil {
		return err
	}
	b.push(c1, tagCubic)
	b.push(c2, tagCubic)
	b.push(to, tagOn)
	b.movable = false
	return nil
}

// arcTo appends a circular arc around center, starting at angle start and
// turning by sweep radians, as a chain of cubics spanning at most π/2
// each. The border must already end at the arc's start point.
func (b *border) arcTo(center Point, radius, start, sweep float64) error {
	rotate := math.Pi / 2
	if sweep < 0 {
		rotate = -rotate
	}
	a := center.Add(polar(radius, start))
	angle := start
	for math.Abs(sweep) > reversalEpsilon {
		step := max(-arcCubicAngle, min(sweep, arcCubicAngle))
		next := angle + step
		half := math.Abs(step) / 2

		end := center.Add(polar(radius, next))
		length := radius * 4 * math.Sin(half) / (3 * (1 + math.Cos(half)))
		c1 := a.Add(polar(length, angle+rotate))
		c2 := end.Add(polar(length, next-rotate))

		if err := b.cubicTo(c1, c2, end); err != nil {
			return err
		}
		a = end
		angle = next
		sweep -= step
	}
	return nil
}

// moveTo closes any open subpath and starts a new one at to.
func (b *border) moveTo(to Point) error {
	if b.start >= 0 {
		b.close(false)
	}
	b.start = len(b.points)
	b.movable = false
	return b.lineTo(to, false)
}

// close ends the open subpath. A subpath with at most one point is
// discarded. Otherwise its last point replaces the first, since it holds
// the start coordinates as adjusted by the final corner or cap; the run is
// optionally reversed and its ends are marked.
func (b *border) close(reverse bool) {
	b.valid = false
	start, count := b.start, len(b.points)
	if start < 0 {
		return
	}
	if count <= start+1 {
		b.truncate(start)
	} else {
		count--
		b.points[start] = b.points[count]
		b.truncate(count)

		if reverse {
			for i, j := start+1, count-1; i < j; i, j = i+1, j-1 {
				b.points[i], b.points[j] = b.points[j], b.points[i]
				b.tags[i], b.tags[j] = b.tags[j], b.tags[i]
			}
		}
		b.tags[start] |= tagBegin
		b.tags[count-1] |= tagEnd
	}
	b.start = -1
	b.movable = false
}

// discard drops the open subpath without recording it.
func (b *border) discard() {
	if b.start >= 0 {
		b.truncate(b.start)
	}
	b.start = -1
	b.movable = false
	b.valid = false
}

func (b *border) truncate(n int) {
	b.points = b.points[:n]
	b.tags = b.tags[:n]
}

// appendReversed appends the open subpath of src to b in reverse order,
// with boundary markers stripped, and drops it from src. A leading point
// coinciding with b's last point is not repeated.
func (b *border) appendReversed(src *border) error {
	b.valid = false
	if src.start < 0 {
		return nil
	}
	i := len(src.points) - 1
	if n := len(b.points); i >= src.start && n > 0 && src.tags[i]&tagOn != 0 && b.points[n-1].near(src.points[i]) {
		i--
	}
	if err := b.grow(i - src.start + 1); err != nil {
		return err
	}
	for ; i >= src.start; i-- {
		b.push(src.points[i], src.tags[i]&^tagBoundaryMask)
	}
	src.discard()
	b.movable = false
	return nil
}

// counts verifies that the border consists of well formed begin/end runs
// and returns its point and contour totals.
func (b *border) counts() (points, contours int, err error) {
	inContour := false
	for i, tag := range b.tags {
		if tag&tagBegin != 0 {
			if inContour {
				return 0, 0, fmt.Errorf("%w: nested begin at point %d", ErrContourStructure, i)
			}
			inContour = true
		} else if !inContour {
			return 0, 0, fmt.Errorf("%w: point %d outside any contour", ErrContourStructure, i)
		}
		if tag&tagEnd != 0 {
			inContour = false
			contours++
		}
	}
	if inContour {
		return 0, 0, fmt.Errorf("%w: unterminated contour", ErrContourStructure)
	}
	b.valid = true
	return len(b.points), contours, nil
}

// exportTo appends the border's points to dst, translating tags and
// recording one contour end per end marker.
func (b *border) exportTo(dst *Outline) {
	base := len(dst.Points)
	dst.Points = append(dst.Points, b.points...)
	for i, tag := range b.tags {
		switch {
		case tag&tagOn != 0:
			dst.Tags = append(dst.Tags, TagOnCurve)
		case tag&tagCubic != 0:
			dst.Tags = append(dst.Tags, TagCubic)
		default:
			dst.Tags = append(dst.Tags, TagQuadratic)
		}
		if tag&tagEnd != 0 {
			dst.Contours = append(dst.Contours, base+i)
		}
	}
}

// rewind empties the border, keeping its storage.
func (b *border) rewind() {
	b.truncate(0)
	b.start = -1
	b.movable = false
	b.valid = false
}
