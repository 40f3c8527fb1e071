package stroke

// addCap terminates the stroke at the current point on the given border,
// for a path whose tangent at that point is angle (pointing away from the
// stroke). The border must end at the offset point on the side of rotate.
func (s *Stroker) addCap(angle float64, side int) error {
	v := &s.vtx
	b := &s.borders[side]
	rotate := sideRotate(side)
	r := s.cfg.Radius

	switch s.cfg.Cap {
	case LineCapRound:
		if err := b.arcTo(v.center, r, angle+rotate, -2*rotate); err != nil {
			return err
		}
		b.movable = false
		return nil

	case LineCapSquare:
		ahead := v.center.Add(polar(r, angle))
		if err := b.lineTo(ahead.Add(polar(r, angle+rotate)), false); err != nil {
			return err
		}
		return b.lineTo(ahead.Add(polar(r, angle-rotate)), false)

	default:
		if err := b.lineTo(v.center.Add(polar(r, angle+rotate)), false); err != nil {
			return err
		}
		return b.lineTo(v.center.Add(polar(r, angle-rotate)), false)
	}
}
