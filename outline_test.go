package stroke

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder is a Walker that logs the segments it receives.
type recorder struct {
	ops    []string
	failOn string
}

var errStop = errors.New("stop")

func (r *recorder) add(op string, pts ...Point) error {
	s := op
	for _, p := range pts {
		s += fmt.Sprintf(" %g,%g", p.X, p.Y)
	}
	r.ops = append(r.ops, s)
	if op == r.failOn {
		return errStop
	}
	return nil
}

func (r *recorder) MoveTo(p Point) error          { return r.add("M", p) }
func (r *recorder) LineTo(p Point) error          { return r.add("L", p) }
func (r *recorder) QuadTo(c, p Point) error       { return r.add("Q", c, p) }
func (r *recorder) CubicTo(c1, c2, p Point) error { return r.add("C", c1, c2, p) }
func (r *recorder) Close() error                  { return r.add("Z") }

func TestOutline_Builders(t *testing.T) {
	o := NewOutline(8)
	o.MoveTo(Pt(0, 0)).LineTo(Pt(1, 0)).QuadTo(Pt(2, 0), Pt(2, 1))
	o.MoveTo(Pt(5, 5)).CubicTo(Pt(6, 5), Pt(7, 6), Pt(7, 7))

	want := &Outline{
		Points:   []Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {5, 5}, {6, 5}, {7, 6}, {7, 7}},
		Tags:     []Tag{TagOnCurve, TagOnCurve, TagQuadratic, TagOnCurve, TagOnCurve, TagCubic, TagCubic, TagOnCurve},
		Contours: []int{3, 7},
	}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}
	if o.Len() != 8 || o.IsEmpty() {
		t.Errorf("Len() = %d, IsEmpty() = %v", o.Len(), o.IsEmpty())
	}
	if first, end := o.Contour(1); first != 4 || end != 8 {
		t.Errorf("Contour(1) = [%d, %d), want [4, 8)", first, end)
	}

	// drawing without MoveTo starts a contour
	o2 := NewOutline(0)
	o2.LineTo(Pt(1, 1)).LineTo(Pt(2, 2))
	if diff := cmp.Diff([]int{1}, o2.Contours); diff != "" {
		t.Errorf("implicit contour mismatch (-want +got):\n%s", diff)
	}
}

func TestOutline_NilAndReset(t *testing.T) {
	var o *Outline
	if o.Len() != 0 || !o.IsEmpty() || o.Clone() != nil {
		t.Error("nil outline should be empty")
	}

	o = NewOutline(4)
	o.MoveTo(Pt(1, 1)).LineTo(Pt(2, 2))
	o.Reset()
	if !o.IsEmpty() || len(o.Contours) != 0 || cap(o.Points) < 2 {
		t.Errorf("Reset() left %+v", o)
	}
}

func TestOutline_Clone(t *testing.T) {
	o := NewOutline(4)
	o.MoveTo(Pt(0, 0)).LineTo(Pt(1, 0)).LineTo(Pt(1, 1))
	c := o.Clone()
	if diff := cmp.Diff(o, c); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}
	c.Points[0] = Pt(9, 9)
	c.Tags[1] = TagCubic
	c.Contours[0] = 0
	if o.Points[0] != Pt(0, 0) || o.Tags[1] != TagOnCurve || o.Contours[0] != 2 {
		t.Error("Clone() shares storage with the original")
	}
}

func TestOutline_Validate(t *testing.T) {
	valid := func() *Outline {
		return NewOutline(4).MoveTo(Pt(0, 0)).LineTo(Pt(1, 0)).LineTo(Pt(1, 1))
	}
	tests := []struct {
		name   string
		modify func(*Outline) *Outline
		want   error
	}{
		{"valid", func(o *Outline) *Outline { return o }, nil},
		{"empty", func(*Outline) *Outline { return &Outline{} }, nil},
		{"nil", func(*Outline) *Outline { return nil }, ErrInvalidArgument},
		{"tag count", func(o *Outline) *Outline { o.Tags = o.Tags[:2]; return o }, ErrInvalidOutline},
		{"contour past end", func(o *Outline) *Outline { o.Contours[0] = 3; return o }, ErrInvalidOutline},
		{"contours out of order", func(o *Outline) *Outline {
			o.Contours = []int{1, 1, 2}
			return o
		}, ErrInvalidOutline},
		{"trailing points", func(o *Outline) *Outline { o.Contours[0] = 1; return o }, ErrInvalidOutline},
		{"no contours", func(o *Outline) *Outline { o.Contours = nil; return o }, ErrInvalidOutline},
		{"nan", func(o *Outline) *Outline { o.Points[1].X = math.NaN(); return o }, ErrInvalidOutline},
		{"inf", func(o *Outline) *Outline { o.Points[2].Y = math.Inf(1); return o }, ErrInvalidOutline},
		{"unknown tag", func(o *Outline) *Outline { o.Tags[1] = 7; return o }, ErrInvalidOutline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.modify(valid()).Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOutlineError(t *testing.T) {
	o := NewOutline(2).MoveTo(Pt(0, 0)).LineTo(Pt(math.NaN(), 0))
	err := o.Validate()
	var oerr *OutlineError
	if !errors.As(err, &oerr) {
		t.Fatalf("Validate() error = %v, want *OutlineError", err)
	}
	if oerr.Contour != 0 || oerr.Point != 1 {
		t.Errorf("OutlineError = %+v, want contour 0 point 1", oerr)
	}
	if !errors.Is(err, ErrInvalidOutline) {
		t.Error("OutlineError should match ErrInvalidOutline")
	}
}

func TestOutline_Orientation(t *testing.T) {
	square := func(ccw bool) *Outline {
		o := NewOutline(4).MoveTo(Pt(0, 0))
		if ccw {
			return o.LineTo(Pt(1, 0)).LineTo(Pt(1, 1)).LineTo(Pt(0, 1))
		}
		return o.LineTo(Pt(0, 1)).LineTo(Pt(1, 1)).LineTo(Pt(1, 0))
	}
	tests := []struct {
		name string
		o    *Outline
		want Orientation
	}{
		{"ccw", square(true), OrientationCounterClockwise},
		{"cw", square(false), OrientationClockwise},
		{"line", NewOutline(2).MoveTo(Pt(0, 0)).LineTo(Pt(5, 5)), OrientationNone},
		{"empty", &Outline{}, OrientationNone},
	}
	for _, tt := range tests {
		if got := tt.o.Orientation(); got != tt.want {
			t.Errorf("%s: Orientation() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOutline_Bounds(t *testing.T) {
	o := NewOutline(4).MoveTo(Pt(-1, 2)).QuadTo(Pt(3, 7), Pt(2, -4))
	lo, hi := o.Bounds()
	if lo != Pt(-1, -4) || hi != Pt(3, 7) {
		t.Errorf("Bounds() = %v, %v; want (-1, -4), (3, 7)", lo, hi)
	}
	if lo, hi := (&Outline{}).Bounds(); lo != (Point{}) || hi != (Point{}) {
		t.Errorf("empty Bounds() = %v, %v", lo, hi)
	}
}

func TestTag_String(t *testing.T) {
	for tag, want := range map[Tag]string{TagOnCurve: "on", TagQuadratic: "quad", TagCubic: "cubic", 9: "Tag(9)"} {
		if got := tag.String(); got != want {
			t.Errorf("Tag(%d).String() = %q, want %q", tag, got, want)
		}
	}
}

func TestOutline_Walk(t *testing.T) {
	tests := []struct {
		name string
		o    *Outline
		want []string
	}{
		{
			name: "lines",
			o:    NewOutline(3).MoveTo(Pt(0, 0)).LineTo(Pt(1, 0)).LineTo(Pt(1, 1)),
			want: []string{"M 0,0", "L 1,0", "L 1,1", "Z"},
		},
		{
			name: "cubic",
			o:    NewOutline(4).MoveTo(Pt(0, 0)).CubicTo(Pt(1, 1), Pt(2, 1), Pt(3, 0)),
			want: []string{"M 0,0", "C 1,1 2,1 3,0", "Z"},
		},
		{
			name: "quadratic first point",
			o: &Outline{
				Points:   []Point{{1, 1}, {2, 0}, {0, 0}},
				Tags:     []Tag{TagQuadratic, TagOnCurve, TagOnCurve},
				Contours: []int{2},
			},
			want: []string{"M 0,0", "Q 1,1 2,0", "Z"},
		},
		{
			name: "all quadratic controls",
			o: &Outline{
				Points:   []Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}},
				Tags:     []Tag{TagQuadratic, TagQuadratic, TagQuadratic, TagQuadratic},
				Contours: []int{3},
			},
			want: []string{"M 0.5,-0.5", "Q 1,0 0.5,0.5", "Q 0,1 -0.5,0.5", "Q -1,0 -0.5,-0.5", "Q 0,-1 0.5,-0.5", "Z"},
		},
		{
			name: "trailing quadratic control",
			o: &Outline{
				Points:   []Point{{0, 0}, {2, 0}, {1, 2}},
				Tags:     []Tag{TagOnCurve, TagOnCurve, TagQuadratic},
				Contours: []int{2},
			},
			want: []string{"M 0,0", "L 2,0", "Q 1,2 0,0", "Z"},
		},
		{
			name: "trailing cubic controls",
			o: &Outline{
				Points:   []Point{{0, 0}, {1, 0}, {2, 1}, {1, 2}},
				Tags:     []Tag{TagOnCurve, TagOnCurve, TagCubic, TagCubic},
				Contours: []int{3},
			},
			want: []string{"M 0,0", "L 1,0", "C 2,1 1,2 0,0", "Z"},
		},
		{
			name: "single point contour skipped",
			o: &Outline{
				Points:   []Point{{5, 5}, {0, 0}, {1, 0}},
				Tags:     []Tag{TagOnCurve, TagOnCurve, TagOnCurve},
				Contours: []int{0, 2},
			},
			want: []string{"M 0,0", "L 1,0", "Z"},
		},
		{
			name: "empty",
			o:    &Outline{},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r recorder
			if err := tt.o.Walk(&r); err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, r.ops); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOutline_WalkErrors(t *testing.T) {
	tests := []struct {
		name  string
		tags  []Tag
		point int
	}{
		{"starts with cubic", []Tag{TagCubic, TagCubic, TagOnCurve}, 0},
		{"unpaired cubic", []Tag{TagOnCurve, TagCubic, TagOnCurve}, 1},
		{"unpaired trailing cubic", []Tag{TagOnCurve, TagOnCurve, TagCubic}, 2},
		{"cubic after quadratic", []Tag{TagOnCurve, TagQuadratic, TagCubic, TagCubic, TagOnCurve}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Outline{
				Points:   make([]Point, len(tt.tags)),
				Tags:     tt.tags,
				Contours: []int{len(tt.tags) - 1},
			}
			for i := range o.Points {
				o.Points[i] = Pt(float64(i), float64(i%2))
			}
			var r recorder
			err := o.Walk(&r)
			var oerr *OutlineError
			if !errors.As(err, &oerr) {
				t.Fatalf("Walk() error = %v, want *OutlineError", err)
			}
			if oerr.Point != tt.point {
				t.Errorf("OutlineError.Point = %d, want %d", oerr.Point, tt.point)
			}
		})
	}
}

func TestOutline_WalkStopsOnWalkerError(t *testing.T) {
	o := NewOutline(4).MoveTo(Pt(0, 0)).LineTo(Pt(1, 0)).LineTo(Pt(1, 1))
	o.MoveTo(Pt(5, 5)).LineTo(Pt(6, 5))

	r := recorder{failOn: "L"}
	if err := o.Walk(&r); !errors.Is(err, errStop) {
		t.Fatalf("Walk() error = %v, want errStop", err)
	}
	if diff := cmp.Diff([]string{"M 0,0", "L 1,0"}, r.ops); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}
