package stroke

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/stroke/internal/parallel"
)

func batchInputs(n int) []*Outline {
	outlines := make([]*Outline, n)
	for i := range outlines {
		switch i % 3 {
		case 0:
			outlines[i] = circle(Pt(float64(i), 0), 10+float64(i))
		case 1:
			outlines[i] = square(float64(i), 20, i%2 == 0)
		default:
			outlines[i] = quadCircle(Pt(0, float64(i)), 15)
		}
	}
	return outlines
}

func TestBatch_MatchesStrokeOutline(t *testing.T) {
	cfg := DefaultConfig().WithRadius(2).WithJoin(LineJoinRound)
	b, err := NewBatch(cfg, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if b.Config() != cfg {
		t.Errorf("Config() = %+v, want %+v", b.Config(), cfg)
	}

	outlines := batchInputs(40)
	got, err := b.Stroke(outlines, false)
	if err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}
	if len(got) != len(outlines) {
		t.Fatalf("len(results) = %d, want %d", len(got), len(outlines))
	}
	for i, o := range outlines {
		want, err := StrokeOutline(o, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got[i]); diff != "" {
			t.Errorf("outline %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestBatch_Open(t *testing.T) {
	cfg := DefaultConfig().WithRadius(3).WithCap(LineCapSquare)
	b, err := NewBatch(cfg, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	outlines := batchInputs(6)
	got, err := b.Stroke(outlines, true)
	if err != nil {
		t.Fatalf("Stroke() error = %v", err)
	}
	for i, o := range outlines {
		want := mustExport(t, mustStroke(t, cfg, o, true))
		if diff := cmp.Diff(want, got[i]); diff != "" {
			t.Errorf("outline %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestBatch_Errors(t *testing.T) {
	b, err := NewBatch(DefaultConfig(), 3)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	outlines := batchInputs(8)
	outlines[3] = &Outline{
		Points:   []Point{{0, 0}, {1, 1}, {2, 0}},
		Tags:     []Tag{TagCubic, TagCubic, TagOnCurve},
		Contours: []int{2},
	}
	outlines[5] = nil

	got, err := b.Stroke(outlines, false)
	if !errors.Is(err, ErrInvalidOutline) {
		t.Fatalf("Stroke() error = %v, want ErrInvalidOutline", err)
	}
	if !strings.Contains(err.Error(), "outline 3") {
		t.Errorf("error %q does not name the failed outline", err)
	}
	for i, o := range got {
		switch i {
		case 3, 5:
			if o != nil {
				t.Errorf("result %d = %v, want nil", i, o)
			}
		default:
			if o.IsEmpty() {
				t.Errorf("result %d is empty", i)
			}
		}
	}

	// a failed outline does not poison the worker's Stroker
	again, err := b.Stroke(batchInputs(8), false)
	if err != nil {
		t.Fatalf("Stroke() after a failure error = %v", err)
	}
	for i, o := range again {
		if o.IsEmpty() {
			t.Errorf("result %d is empty after a previous failure", i)
		}
	}
}

func TestBatch_EmptyInput(t *testing.T) {
	b, err := NewBatch(DefaultConfig(), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	got, err := b.Stroke(nil, false)
	if err != nil || len(got) != 0 {
		t.Errorf("Stroke(nil) = %v, %v; want empty, nil", got, err)
	}
}

func TestBatch_InvalidConfig(t *testing.T) {
	if _, err := NewBatch(Config{Radius: 1}, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewBatch(invalid) error = %v, want ErrInvalidArgument", err)
	}
}

func TestBatch_Closed(t *testing.T) {
	b, err := NewBatch(DefaultConfig(), 2)
	if err != nil {
		t.Fatal(err)
	}
	b.Close()
	b.Close()

	if _, err := b.Stroke(batchInputs(4), false); !errors.Is(err, parallel.ErrClosed) {
		t.Errorf("Stroke() after Close error = %v, want ErrClosed", err)
	}
}

func BenchmarkBatch_Stroke(b *testing.B) {
	batch, err := NewBatch(DefaultConfig().WithRadius(2), 0)
	if err != nil {
		b.Fatal(err)
	}
	defer batch.Close()

	outlines := batchInputs(64)
	for b.Loop() {
		if _, err := batch.Stroke(outlines, false); err != nil {
			b.Fatal(err)
		}
	}
}
