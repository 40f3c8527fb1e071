package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/stroke"
)

// pathData renders outlines as SVG path data. It implements stroke.Walker.
// Coordinates are shifted right by dx and y is flipped, since outlines are
// y-up and SVG is y-down.
type pathData struct {
	sb strings.Builder
	dx float64
}

func (p *pathData) pt(q stroke.Point) {
	p.sb.WriteString(strconv.FormatFloat(q.X+p.dx, 'f', 2, 64))
	p.sb.WriteByte(' ')
	p.sb.WriteString(strconv.FormatFloat(-q.Y, 'f', 2, 64))
}

func (p *pathData) op(c byte, pts ...stroke.Point) error {
	if p.sb.Len() > 0 {
		p.sb.WriteByte(' ')
	}
	p.sb.WriteByte(c)
	for _, q := range pts {
		p.sb.WriteByte(' ')
		p.pt(q)
	}
	return nil
}

func (p *pathData) MoveTo(to stroke.Point) error          { return p.op('M', to) }
func (p *pathData) LineTo(to stroke.Point) error          { return p.op('L', to) }
func (p *pathData) QuadTo(c, to stroke.Point) error       { return p.op('Q', c, to) }
func (p *pathData) CubicTo(c1, c2, to stroke.Point) error { return p.op('C', c1, c2, to) }
func (p *pathData) Close() error                          { return p.op('Z') }

// placed is a stroked glyph and its pen position on the baseline.
type placed struct {
	outline *stroke.Outline
	x       float64
}

// writeSVG writes one path element holding every glyph.
func writeSVG(w io.Writer, glyphs []placed, margin float64) error {
	lo := stroke.Pt(math.Inf(1), math.Inf(1))
	hi := stroke.Pt(math.Inf(-1), math.Inf(-1))
	var d pathData
	for _, g := range glyphs {
		if g.outline.IsEmpty() {
			continue
		}
		gLo, gHi := g.outline.Bounds()
		lo.X = min(lo.X, gLo.X+g.x)
		lo.Y = min(lo.Y, gLo.Y)
		hi.X = max(hi.X, gHi.X+g.x)
		hi.Y = max(hi.Y, gHi.Y)

		d.dx = g.x
		if err := g.outline.Walk(&d); err != nil {
			return err
		}
	}
	if d.sb.Len() == 0 {
		lo, hi = stroke.Point{}, stroke.Point{}
	}

	// SVG y runs down, so the top of the view box is -hi.Y.
	x, y := lo.X-margin, -hi.Y-margin
	width, height := hi.X-lo.X+2*margin, hi.Y-lo.Y+2*margin
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f">
<path fill="black" fill-rule="nonzero" d="%s"/>
</svg>
`, x, y, width, height, d.sb.String())
	return err
}
