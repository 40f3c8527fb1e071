package stroke

// OutsideBorder returns the border that lies outside the contours of o
// when o is stroked as closed. Clockwise outlines (TrueType convention,
// y up) are outlined by BorderRight, all others by BorderLeft.
func OutsideBorder(o *Outline) Side {
	if o.Orientation() == OrientationClockwise {
		return BorderRight
	}
	return BorderLeft
}

// InsideBorder returns the border opposite to OutsideBorder.
func InsideBorder(o *Outline) Side {
	return 1 - OutsideBorder(o)
}

// StrokeOutline strokes every contour of o as closed and returns both
// borders.
func StrokeOutline(o *Outline, cfg Config) (*Outline, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := s.ParseOutline(o, false); err != nil {
		return nil, err
	}
	return s.Export()
}

// StrokeBorder strokes o as closed and keeps only one border: the one
// inside the glyph shape when inside is true, the outside one otherwise.
// This grows (outside) or shrinks (inside) a filled shape by the radius.
func StrokeBorder(o *Outline, cfg Config, inside bool) (*Outline, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := s.ParseOutline(o, false); err != nil {
		return nil, err
	}
	side := OutsideBorder(o)
	if inside {
		side = InsideBorder(o)
	}
	return s.ExportBorder(side)
}
