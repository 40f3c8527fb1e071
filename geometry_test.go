package stroke

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

const eps = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{2.5 * math.Pi, 0.5 * math.Pi},
		{-1.5 * math.Pi, 0.5 * math.Pi},
		{-0.25, -0.25},
		{7 * math.Pi / 4, -math.Pi / 4},
	}
	for _, tt := range tests {
		if got := normalizeAngle(tt.in); !near(got, tt.want, eps) {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAngleDiff(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, math.Pi / 2, math.Pi / 2},
		{math.Pi / 2, 0, -math.Pi / 2},
		{math.Pi - 0.1, -math.Pi + 0.1, 0.2},
		{-math.Pi + 0.1, math.Pi - 0.1, -0.2},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := angleDiff(tt.a, tt.b); !near(got, tt.want, eps) {
			t.Errorf("angleDiff(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAngleMean(t *testing.T) {
	if got := angleMean(0.1, -0.3); !near(got, -0.1, eps) {
		t.Errorf("angleMean(0.1, -0.3) = %v, want -0.1", got)
	}
	// the shorter way round crosses ±π
	if got := angleMean(math.Pi-0.1, -math.Pi+0.3); !near(got, -math.Pi+0.1, eps) {
		t.Errorf("angleMean across π = %v, want %v", got, -math.Pi+0.1)
	}
}

func TestIsReversal(t *testing.T) {
	for _, turn := range []float64{math.Pi, -math.Pi, angleDiff(0, math.Pi)} {
		if !isReversal(turn) {
			t.Errorf("isReversal(%v) = false", turn)
		}
	}
	for _, turn := range []float64{0, 3, -3.14, math.Pi / 2} {
		if isReversal(turn) {
			t.Errorf("isReversal(%v) = true", turn)
		}
	}
}

func TestPolarAndSideRotate(t *testing.T) {
	p := polar(2, math.Pi/2)
	if !near(p.X, 0, eps) || !near(p.Y, 2, eps) {
		t.Errorf("polar(2, π/2) = %v, want (0, 2)", p)
	}
	if sideRotate(0) != math.Pi/2 || sideRotate(1) != -math.Pi/2 {
		t.Errorf("sideRotate = %v, %v", sideRotate(0), sideRotate(1))
	}
}

func TestPoint_Operations(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Add(q); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
	if got := p.Sub(q); got != Pt(2, 2) {
		t.Errorf("Sub = %v, want (2, 2)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := p.Mid(q); got != Pt(2, 3) {
		t.Errorf("Mid = %v, want (2, 3)", got)
	}
	huge := Pt(math.MaxFloat64, -math.MaxFloat64)
	if got := huge.Mid(huge); got != huge {
		t.Errorf("Mid of extreme points = %v, want %v", got, huge)
	}
	if got := huge.Mid(Pt(0, 0)); !got.IsFinite() {
		t.Errorf("Mid = %v, want a finite point", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.Distance(Pt(0, 0)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Pt(0, -1).Angle(); !near(got, -math.Pi/2, eps) {
		t.Errorf("Angle = %v, want -π/2", got)
	}
	if Pt(math.NaN(), 0).IsFinite() || Pt(0, math.Inf(-1)).IsFinite() || !p.IsFinite() {
		t.Error("IsFinite misclassifies points")
	}
}

func TestPoint_Near(t *testing.T) {
	if !Pt(0, 0).near(Pt(0.03, -0.03)) {
		t.Error("points 0.03 apart should coincide")
	}
	if Pt(0, 0).near(Pt(0.04, 0)) {
		t.Error("points 0.04 apart should not coincide")
	}
}

func TestPoint_Fixed(t *testing.T) {
	p := Pt(1.5, -2.25)
	f := p.Fixed()
	if f != (fixed.Point26_6{X: 96, Y: -144}) {
		t.Errorf("Fixed() = %v, want {96, -144}", f)
	}
	if back := PointFromFixed(f); back != p {
		t.Errorf("PointFromFixed(Fixed()) = %v, want %v", back, p)
	}
	if got := Pt(0.51/64, 0).Fixed().X; got != 1 {
		t.Errorf("Fixed() rounds %v to %v, want 1", 0.51/64, got)
	}
}
