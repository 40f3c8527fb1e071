package stroke

import (
	"fmt"
	"slices"
)

// Counts validates both borders and returns the number of points and
// contours an Export would produce.
func (s *Stroker) Counts() (points, contours int, err error) {
	if s == nil {
		return 0, 0, fmt.Errorf("%w: nil stroker", ErrInvalidArgument)
	}
	for side := range s.borders {
		p, c, err := s.borders[side].counts()
		if err != nil {
			return 0, 0, fmt.Errorf("border %v: %w", Side(side), err)
		}
		points += p
		contours += c
	}
	return points, contours, nil
}

// BorderCounts validates one border and returns its point and contour
// totals.
func (s *Stroker) BorderCounts(side Side) (points, contours int, err error) {
	if s == nil {
		return 0, 0, fmt.Errorf("%w: nil stroker", ErrInvalidArgument)
	}
	if !side.valid() {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidArgument, side)
	}
	return s.borders[side].counts()
}

// ExportBorderTo appends the contours of one border to dst. The border is
// validated first; nothing is appended when it is malformed.
func (s *Stroker) ExportBorderTo(side Side, dst *Outline) error {
	if dst == nil {
		return fmt.Errorf("%w: nil outline", ErrInvalidArgument)
	}
	points, contours, err := s.BorderCounts(side)
	if err != nil {
		return err
	}
	dst.Points = slices.Grow(dst.Points, points)
	dst.Tags = slices.Grow(dst.Tags, points)
	dst.Contours = slices.Grow(dst.Contours, contours)
	s.borders[side].exportTo(dst)
	return nil
}

// ExportTo appends the contours of both borders to dst, BorderRight first.
func (s *Stroker) ExportTo(dst *Outline) error {
	if dst == nil {
		return fmt.Errorf("%w: nil outline", ErrInvalidArgument)
	}
	points, contours, err := s.Counts()
	if err != nil {
		return err
	}
	dst.Points = slices.Grow(dst.Points, points)
	dst.Tags = slices.Grow(dst.Tags, points)
	dst.Contours = slices.Grow(dst.Contours, contours)
	s.borders[BorderRight].exportTo(dst)
	s.borders[BorderLeft].exportTo(dst)
	return nil
}

// Export returns the stroke accumulated so far as a new outline that
// shares no storage with the Stroker.
func (s *Stroker) Export() (*Outline, error) {
	dst := &Outline{}
	if err := s.ExportTo(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// ExportBorder returns one border of the stroke as a new outline.
func (s *Stroker) ExportBorder(side Side) (*Outline, error) {
	dst := &Outline{}
	if err := s.ExportBorderTo(side, dst); err != nil {
		return nil, err
	}
	return dst, nil
}
