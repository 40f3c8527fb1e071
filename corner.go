package stroke

import "math"

// processCorner joins the segment arriving at the current point with
// angleIn to the one leaving it with angleOut. The border on the turning
// side is the inside of the corner; the other one receives the join.
func (s *Stroker) processCorner(join LineJoin) error {
	turn := angleDiff(s.vtx.angleIn, s.vtx.angleOut)
	if turn == 0 {
		return nil
	}
	inside := 0
	if turn < 0 {
		inside = 1
	}
	if err := s.inside(inside, turn); err != nil {
		return err
	}
	return s.outside(1-inside, turn, join)
}

// inside moves the end of the incoming offset segment to its intersection
// with the outgoing one. Shallow corners, where the intersection would lie
// farther than the miter limit, just start the outgoing offset instead.
func (s *Stroker) inside(side int, turn float64) error {
	v := &s.vtx
	b := &s.borders[side]
	rotate := sideRotate(side)

	theta := turn / 2
	if isReversal(turn) {
		theta = rotate
	}
	phi := v.angleIn + theta
	thcos := math.Cos(theta)
	sigma := s.cfg.MiterLimit * thcos

	var to Point
	if sigma < 1 {
		to = v.center.Add(polar(s.cfg.Radius, v.angleOut+rotate))
		b.movable = false
	} else {
		to = v.center.Add(polar(s.cfg.Radius/thcos, phi+rotate))
	}
	return b.lineTo(to, false)
}

// outside draws the join on the outer border of a corner.
func (s *Stroker) outside(side int, turn float64, join LineJoin) error {
	v := &s.vtx
	b := &s.borders[side]
	rotate := sideRotate(side)
	r := s.cfg.Radius

	if join == LineJoinRound {
		sweep := turn
		if isReversal(turn) {
			sweep = -2 * rotate
		}
		if err := b.arcTo(v.center, r, v.angleIn+rotate, sweep); err != nil {
			return err
		}
		b.movable = false
		return nil
	}

	var theta, phi float64
	if isReversal(turn) {
		theta = rotate
		phi = v.angleIn
	} else {
		theta = turn / 2
		phi = v.angleIn + theta + rotate
	}
	sigma := s.cfg.MiterLimit * math.Cos(theta)

	if join == LineJoinMiter && sigma < 1 && math.Abs(theta) > minMiterAngle {
		middle := v.center.Add(polar(r*s.cfg.MiterLimit, phi))
		length := r * (1 - sigma) / math.Abs(math.Sin(theta))

		if err := b.lineTo(middle.Add(polar(length, phi+rotate)), false); err != nil {
			return err
		}
		if err := b.lineTo(middle.Add(polar(length, phi-rotate)), false); err != nil {
			return err
		}
		return b.lineTo(v.center.Add(polar(r, v.angleOut+rotate)), true)
	}

	// bevel: keep the incoming end and connect it to the outgoing start
	b.movable = false
	return b.lineTo(v.center.Add(polar(r, v.angleOut+rotate)), false)
}
