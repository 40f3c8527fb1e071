package stroke

// Walker receives the segments of an outline from Outline.Walk.
type Walker interface {
	// MoveTo starts a contour.
	MoveTo(p Point) error
	LineTo(p Point) error
	QuadTo(control, p Point) error
	CubicTo(c1, c2, p Point) error
	// Close ends the current contour. Walk does not emit a segment
	// joining an on-curve last point back to the start.
	Close() error
}

// Walk decomposes the outline into segments and feeds them to w.
//
// Contours with fewer than two points are skipped. A contour starting on a
// quadratic control starts at its last point when that point is on the
// curve, or halfway between its first and last points otherwise.
// Consecutive quadratic controls imply an on-curve point at their midpoint,
// and trailing controls curve back to the contour start.
//
// An outline whose contour starts with a cubic control, or holds a cubic
// control that is not followed by a second one, yields an *OutlineError.
// The first error returned by w aborts the walk.
func (o *Outline) Walk(w Walker) error {
	if err := o.Validate(); err != nil {
		return err
	}
	first := 0
	for n, last := range o.Contours {
		if err := o.walkContour(w, n, first, last); err != nil {
			return err
		}
		first = last + 1
	}
	return nil
}

func (o *Outline) walkContour(w Walker, n, first, last int) error {
	if last <= first {
		return nil
	}
	pts, tags := o.Points, o.Tags

	start := pts[first]
	limit := last
	i := first

	switch tags[first] {
	case TagCubic:
		return &OutlineError{Contour: n, Point: first, Reason: "contour starts with a cubic control point"}
	case TagQuadratic:
		if tags[last] == TagOnCurve {
			start = pts[last]
			limit--
		} else {
			start = start.Mid(pts[last])
		}
		// revisit the first point as a control
		i--
	}

	if err := w.MoveTo(start); err != nil {
		return err
	}

	for i < limit {
		i++
		switch tags[i] {
		case TagOnCurve:
			if err := w.LineTo(pts[i]); err != nil {
				return err
			}

		case TagQuadratic:
			control := pts[i]
			for {
				if i >= limit {
					if err := w.QuadTo(control, start); err != nil {
						return err
					}
					return w.Close()
				}
				i++
				p := pts[i]
				if tags[i] == TagOnCurve {
					if err := w.QuadTo(control, p); err != nil {
						return err
					}
					break
				}
				if tags[i] != TagQuadratic {
					return &OutlineError{Contour: n, Point: i, Reason: "cubic control after a quadratic control"}
				}
				if err := w.QuadTo(control, control.Mid(p)); err != nil {
					return err
				}
				control = p
			}

		default:
			if i+1 > limit || tags[i+1] != TagCubic {
				return &OutlineError{Contour: n, Point: i, Reason: "unpaired cubic control point"}
			}
			c1, c2 := pts[i], pts[i+1]
			i += 2
			if i <= limit {
				if err := w.CubicTo(c1, c2, pts[i]); err != nil {
					return err
				}
				continue
			}
			if err := w.CubicTo(c1, c2, start); err != nil {
				return err
			}
			return w.Close()
		}
	}
	return w.Close()
}
