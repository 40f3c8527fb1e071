// Package glyph converts font glyph outlines into stroke outlines.
//
// Two font stacks are supported: golang.org/x/image/font/sfnt and
// github.com/go-text/typesetting. Both adapters produce outlines in y-up
// coordinates, so TrueType outer contours come out clockwise and
// stroke.OutsideBorder selects the border that grows the glyph.
package glyph

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/stroke"
)

// FromSFNT converts glyph segments loaded by sfnt.Font.LoadGlyph. The
// segments are in pixels with y pointing down; the result has y pointing
// up.
func FromSFNT(segs sfnt.Segments) *stroke.Outline {
	o := stroke.NewOutline(len(segs) * 2)
	pt := func(p [3]fixed.Point26_6, i int) stroke.Point {
		q := stroke.PointFromFixed(p[i])
		q.Y = -q.Y
		return q
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			trimClosing(o)
			o.MoveTo(pt(seg.Args, 0))
		case sfnt.SegmentOpLineTo:
			o.LineTo(pt(seg.Args, 0))
		case sfnt.SegmentOpQuadTo:
			o.QuadTo(pt(seg.Args, 0), pt(seg.Args, 1))
		case sfnt.SegmentOpCubeTo:
			o.CubicTo(pt(seg.Args, 0), pt(seg.Args, 1), pt(seg.Args, 2))
		}
	}
	trimClosing(o)
	return o
}

// FromGoText converts a go-text glyph outline, given in font units with y
// pointing up, multiplying every coordinate by scale.
func FromGoText(g font.GlyphOutline, scale float64) *stroke.Outline {
	o := stroke.NewOutline(len(g.Segments) * 2)
	pt := func(p opentype.SegmentPoint) stroke.Point {
		return stroke.Pt(float64(p.X)*scale, float64(p.Y)*scale)
	}
	for _, seg := range g.Segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			trimClosing(o)
			o.MoveTo(pt(seg.Args[0]))
		case opentype.SegmentOpLineTo:
			o.LineTo(pt(seg.Args[0]))
		case opentype.SegmentOpQuadTo:
			o.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case opentype.SegmentOpCubeTo:
			o.CubicTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	trimClosing(o)
	return o
}

// trimClosing drops an explicit line back to the start of the last
// contour; outline contours are closed implicitly.
func trimClosing(o *stroke.Outline) {
	if len(o.Contours) == 0 {
		return
	}
	first, end := o.Contour(len(o.Contours) - 1)
	last := end - 1
	if last-first < 2 || o.Tags[last] != stroke.TagOnCurve || o.Tags[last-1] != stroke.TagOnCurve {
		return
	}
	if o.Points[last] != o.Points[first] {
		return
	}
	o.Points = o.Points[:last]
	o.Tags = o.Tags[:last]
	o.Contours[len(o.Contours)-1] = last - 1
}
