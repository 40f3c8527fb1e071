package stroke

import "math"

// Subdivision limits. The stack holds the pending sub-arcs of one curve in
// reverse order: stack[top] is the end of the sub-arc being examined and
// stack[top+2] (quadratic) or stack[top+3] (cubic) its start. Each split
// pushes the first half on top of the second, so the depth is bounded and
// no allocation happens while flattening.
//
// A sub-arc is only split again while the stack is below its limit and
// the curve has been split fewer than maxCurveSplits times, so a curve
// that never flattens still emits at most maxCurveSplits+1 sub-arcs.
const (
	quadStackLimit  = 30
	cubicStackLimit = 32
	cubicStackSize  = cubicStackLimit + 5
	maxCurveSplits  = 1 << 11
)

// QuadTo adds a quadratic Bézier segment from the current point through
// control to to. The curve is subdivided until every sub-arc turns by less
// than π/6, and each sub-arc is offset by a single quadratic per border.
func (s *Stroker) QuadTo(control, to Point) error {
	if err := s.checkDrawing(control, to); err != nil {
		return err
	}
	v := &s.vtx
	if v.center.near(control) && v.center.near(to) {
		v.center = to
		return nil
	}

	arc := s.stack[:]
	arc[0] = to
	arc[1] = control
	arc[2] = v.center

	first := true
	splits := 0
	for top := 0; top >= 0; {
		angleIn, angleOut := v.angleIn, v.angleIn

		if top < quadStackLimit && splits < maxCurveSplits && !quadIsSmallEnough(arc[top:], &angleIn, &angleOut) {
			if s.phase == phaseStarted {
				v.angleIn = angleIn
			}
			splitQuad(arc[top:])
			splits++
			top += 2
			continue
		}

		if err := s.beginArc(first, arc[top+2], angleIn); err != nil {
			return err
		}
		first = false

		theta := angleDiff(angleIn, angleOut) / 2
		phi := angleIn + theta
		length := s.cfg.Radius / math.Cos(theta)
		for side := range 2 {
			rotate := sideRotate(side)
			ctrl := arc[top+1].Add(polar(length, phi+rotate))
			end := arc[top].Add(polar(s.cfg.Radius, angleOut+rotate))
			if err := s.borders[side].quadTo(ctrl, end); err != nil {
				return err
			}
		}

		top -= 2
		v.angleIn = angleOut
	}
	v.center = to
	return nil
}

// CubicTo adds a cubic Bézier segment from the current point through c1
// and c2 to to, flattened like QuadTo with one cubic per sub-arc and
// border.
func (s *Stroker) CubicTo(c1, c2, to Point) error {
	if err := s.checkDrawing(c1, c2, to); err != nil {
		return err
	}
	v := &s.vtx
	if v.center.near(c1) && v.center.near(c2) && v.center.near(to) {
		v.center = to
		return nil
	}

	arc := s.stack[:]
	arc[0] = to
	arc[1] = c2
	arc[2] = c1
	arc[3] = v.center

	first := true
	splits := 0
	for top := 0; top >= 0; {
		angleIn, angleMid, angleOut := v.angleIn, v.angleIn, v.angleIn

		if top < cubicStackLimit && splits < maxCurveSplits && !cubicIsSmallEnough(arc[top:], &angleIn, &angleMid, &angleOut) {
			if s.phase == phaseStarted {
				v.angleIn = angleIn
			}
			splitCubic(arc[top:])
			splits++
			top += 3
			continue
		}

		if err := s.beginArc(first, arc[top+3], angleIn); err != nil {
			return err
		}
		first = false

		theta1 := angleDiff(angleIn, angleMid) / 2
		theta2 := angleDiff(angleMid, angleOut) / 2
		phi1 := angleMean(angleIn, angleMid)
		phi2 := angleMean(angleMid, angleOut)
		length1 := s.cfg.Radius / math.Cos(theta1)
		length2 := s.cfg.Radius / math.Cos(theta2)
		for side := range 2 {
			rotate := sideRotate(side)
			ctrl1 := arc[top+2].Add(polar(length1, phi1+rotate))
			ctrl2 := arc[top+1].Add(polar(length2, phi2+rotate))
			end := arc[top].Add(polar(s.cfg.Radius, angleOut+rotate))
			if err := s.borders[side].cubicTo(ctrl1, ctrl2, end); err != nil {
				return err
			}
		}

		top -= 3
		v.angleIn = angleOut
	}
	v.center = to
	return nil
}

// beginArc prepares the borders for a sub-arc starting at start with
// tangent angle. The first sub-arc of a curve starts the subpath or joins
// the previous segment with the configured join; later sub-arcs only get a
// round corner when their tangents drift apart.
func (s *Stroker) beginArc(first bool, start Point, angle float64) error {
	v := &s.vtx
	if first {
		return s.beginSegment(angle)
	}
	if math.Abs(angleDiff(v.angleIn, angle)) > smallCurveAngle/4 {
		v.center = start
		v.angleOut = angle
		return s.processCorner(LineJoinRound)
	}
	return nil
}

// splitQuad halves the quadratic base[0..2] (end first) into
// base[0..2] and base[2..4].
func splitQuad(base []Point) {
	base[4] = base[2]
	a := base[2].Mid(base[1])
	b := base[0].Mid(base[1])
	base[3] = a
	base[1] = b
	base[2] = a.Mid(b)
}

// splitCubic halves the cubic base[0..3] (end first) into base[0..3] and
// base[3..6].
func splitCubic(base []Point) {
	base[6] = base[3]
	c, d := base[1], base[2]
	a := base[0].Mid(c)
	b := base[3].Mid(d)
	base[1] = a
	base[5] = b
	c = c.Mid(d)
	a = a.Mid(c)
	b = b.Mid(c)
	base[2] = a
	base[4] = b
	base[3] = a.Mid(b)
}

func isSmallVector(p Point) bool {
	return isSmall(p.X) && isSmall(p.Y)
}

// quadIsSmallEnough computes the tangents at both ends of the quadratic
// base[0..2] and reports whether they differ by less than smallCurveAngle.
// Tangents of degenerate legs are left untouched.
func quadIsSmallEnough(base []Point, angleIn, angleOut *float64) bool {
	d1 := base[1].Sub(base[2])
	d2 := base[0].Sub(base[1])
	close1 := isSmallVector(d1)
	close2 := isSmallVector(d2)

	switch {
	case close1 && close2:
		// a point; keep the incoming direction
	case close1:
		*angleIn = d2.Angle()
		*angleOut = *angleIn
	case close2:
		*angleIn = d1.Angle()
		*angleOut = *angleIn
	default:
		*angleIn = d1.Angle()
		*angleOut = d2.Angle()
	}
	return math.Abs(angleDiff(*angleIn, *angleOut)) < smallCurveAngle
}

// cubicIsSmallEnough computes the start, middle and end tangents of the
// cubic base[0..3] and reports whether both halves turn by less than
// smallCurveAngle.
func cubicIsSmallEnough(base []Point, angleIn, angleMid, angleOut *float64) bool {
	d1 := base[2].Sub(base[3])
	d2 := base[1].Sub(base[2])
	d3 := base[0].Sub(base[1])
	close1 := isSmallVector(d1)
	close2 := isSmallVector(d2)
	close3 := isSmallVector(d3)

	switch {
	case close1 && close2 && close3:
		// a point; keep the incoming direction
	case close1 && close2:
		*angleIn = d3.Angle()
		*angleMid, *angleOut = *angleIn, *angleIn
	case close1 && close3:
		*angleIn = d2.Angle()
		*angleMid, *angleOut = *angleIn, *angleIn
	case close1:
		// cusp at the start
		*angleIn = d2.Angle()
		*angleMid = *angleIn
		*angleOut = d3.Angle()
	case close2 && close3:
		*angleIn = d1.Angle()
		*angleMid, *angleOut = *angleIn, *angleIn
	case close2:
		*angleIn = d1.Angle()
		*angleOut = d3.Angle()
		*angleMid = angleMean(*angleIn, *angleOut)
	case close3:
		*angleIn = d1.Angle()
		*angleMid = d2.Angle()
		*angleOut = *angleMid
	default:
		*angleIn = d1.Angle()
		*angleMid = d2.Angle()
		*angleOut = d3.Angle()
	}
	theta1 := math.Abs(angleDiff(*angleIn, *angleMid))
	theta2 := math.Abs(angleDiff(*angleMid, *angleOut))
	return theta1 < smallCurveAngle && theta2 < smallCurveAngle
}
