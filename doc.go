// Package stroke converts outlines into the outlines of their strokes.
//
// # Overview
//
// A stroke is the area covered by a disc of a given radius moving along a
// path. The Stroker turns a zero-width Outline (lines, quadratic and cubic
// Béziers, open or closed contours) into an Outline that, when filled with
// the nonzero rule, paints that area. Rasterization is left to the caller.
//
// # Quick Start
//
//	s, err := stroke.New(stroke.DefaultConfig().WithWidth(4).WithJoin(stroke.LineJoinRound))
//	if err != nil {
//		return err
//	}
//	o := stroke.NewOutline(4)
//	o.MoveTo(stroke.Pt(0, 0)).LineTo(stroke.Pt(100, 0)).LineTo(stroke.Pt(100, 100))
//	if err := s.ParseOutline(o, true); err != nil {
//		return err
//	}
//	result, err := s.Export()
//
// # Borders
//
// Every subpath is stroked into two borders, offset to either side of the
// direction of travel. A closed subpath yields one contour per border, an
// outer and an inner ring. An open subpath yields a single contour on
// BorderRight that runs along one side, around the end cap, back along the
// other side and around the start cap.
//
// ExportBorder extracts a single border. For glyphs, OutsideBorder and
// InsideBorder pick the border that grows or shrinks the filled shape.
//
// # Curves
//
// Curves are subdivided on a bounded explicit stack until every piece turns
// by less than π/6, and each piece is offset by one curve of the same
// degree. Pieces whose tangents disagree get a round corner.
//
// # Reuse and concurrency
//
// A Stroker accumulates results until Rewind and keeps its storage across
// outlines. It must not be shared between goroutines; Batch strokes many
// outlines in parallel with one Stroker per worker, and package cache
// memoizes results.
//
// # Coordinate System
//
// Coordinates are float64 with no unit attached. Tolerances come from 26.6
// fixed-point font rendering (two 1/64 units), so outlines are best given
// in pixels. Orientation helpers assume the y axis points up, as in font
// outlines.
package stroke
