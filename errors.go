package stroke

import (
	"errors"
	"fmt"
)

// Sentinel errors for the stroke package.
var (
	// ErrInvalidArgument is returned for nil strokers or outlines, invalid
	// configurations, and drawing calls made outside a subpath.
	ErrInvalidArgument = errors.New("stroke: invalid argument")

	// ErrInvalidOutline is returned when an outline's tag sequence cannot
	// be decomposed into segments.
	ErrInvalidOutline = errors.New("stroke: invalid outline")

	// ErrAllocation is returned when a border would grow past its point
	// limit.
	ErrAllocation = errors.New("stroke: border allocation failed")

	// ErrContourStructure is returned when a border's begin/end markers
	// are not well formed, typically after a failed parse.
	ErrContourStructure = errors.New("stroke: malformed border contours")
)

// OutlineError describes where a source outline failed to decompose.
type OutlineError struct {
	Contour int
	Point   int
	Reason  string
}

func (e *OutlineError) Error() string {
	return fmt.Sprintf("stroke: invalid outline: contour %d, point %d: %s", e.Contour, e.Point, e.Reason)
}

// Unwrap makes OutlineError match ErrInvalidOutline with errors.Is.
func (e *OutlineError) Unwrap() error {
	return ErrInvalidOutline
}
