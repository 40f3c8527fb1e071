package stroke

import (
	"fmt"
	"math"
)

// Side selects one of the two borders of a stroke.
type Side int

const (
	// BorderRight is offset by +π/2 from the direction of travel: the
	// right-hand side in y-down device space, the left-hand side in y-up
	// font space. It lies outside clockwise (y-up) contours.
	BorderRight Side = iota
	// BorderLeft is offset by -π/2 from the direction of travel.
	BorderLeft
)

func (s Side) String() string {
	switch s {
	case BorderRight:
		return "right"
	case BorderLeft:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

func (s Side) valid() bool { return s == BorderRight || s == BorderLeft }

// phase is the state of the subpath state machine.
type phase uint8

const (
	// phaseIdle: no subpath has been begun.
	phaseIdle phase = iota
	// phaseStarted: a subpath was begun but no segment consumed yet, so
	// no tangent is known and nothing has been emitted.
	phaseStarted
	// phaseDrawing: at least one segment has been consumed.
	phaseDrawing
)

// vertex holds the transient per-vertex state of the driver.
type vertex struct {
	center   Point   // current path position
	angleIn  float64 // tangent arriving at center
	angleOut float64 // tangent leaving center

	subpathOpen  bool
	subpathStart Point
	subpathAngle float64 // tangent of the first segment, for the closing corner or start cap
}

// Stroker converts outlines into the outline of their stroke.
//
// A Stroker accumulates the stroke of every subpath fed to it in two
// borders until Rewind is called, so it can be reused across many outlines
// without reallocating. It is not safe for concurrent use; use one Stroker
// per goroutine (see Batch).
type Stroker struct {
	cfg     Config
	borders [2]border
	vtx     vertex
	phase   phase

	// failed is set when a parse aborted midway; Rewind clears it.
	failed bool

	// stack is the explicit subdivision stack shared by quadratic and
	// cubic flattening.
	stack [cubicStackSize]Point
}

// New creates a Stroker for the given configuration.
func New(cfg Config) (*Stroker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Stroker{cfg: cfg}
	s.borders[0] = newBorder()
	s.borders[1] = newBorder()
	return s, nil
}

// Config returns the active configuration.
func (s *Stroker) Config() Config {
	return s.cfg
}

// SetConfig replaces the configuration and rewinds the Stroker.
func (s *Stroker) SetConfig(cfg Config) error {
	if s == nil {
		return fmt.Errorf("%w: nil stroker", ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.Rewind()
	return nil
}

// Set is shorthand for SetConfig with the individual parameters.
func (s *Stroker) Set(radius float64, lineCap LineCap, join LineJoin, miterLimit float64) error {
	return s.SetConfig(Config{Radius: radius, Cap: lineCap, Join: join, MiterLimit: miterLimit})
}

// Rewind discards everything stroked so far, keeping allocated storage.
func (s *Stroker) Rewind() {
	if s == nil {
		return
	}
	s.borders[0].rewind()
	s.borders[1].rewind()
	s.vtx = vertex{}
	s.phase = phaseIdle
	s.failed = false
}

// BeginSubpath starts a subpath at to. When open is false the subpath is
// closed back to to by EndSubpath; otherwise its ends receive caps.
func (s *Stroker) BeginSubpath(to Point, open bool) error {
	if s == nil {
		return fmt.Errorf("%w: nil stroker", ErrInvalidArgument)
	}
	if !to.IsFinite() {
		return fmt.Errorf("%w: non-finite subpath start", ErrInvalidArgument)
	}
	s.phase = phaseStarted
	s.vtx = vertex{
		center:       to,
		subpathOpen:  open,
		subpathStart: to,
	}
	return nil
}

func (s *Stroker) checkDrawing(pts ...Point) error {
	if s == nil {
		return fmt.Errorf("%w: nil stroker", ErrInvalidArgument)
	}
	if s.phase == phaseIdle {
		return fmt.Errorf("%w: segment outside a subpath", ErrInvalidArgument)
	}
	for _, p := range pts {
		if !p.IsFinite() {
			return fmt.Errorf("%w: non-finite point %v", ErrInvalidArgument, p)
		}
	}
	return nil
}

// LineTo adds a straight segment from the current point to to.
// A zero-length segment is ignored.
func (s *Stroker) LineTo(to Point) error {
	if err := s.checkDrawing(to); err != nil {
		return err
	}
	v := &s.vtx
	delta := to.Sub(v.center)
	if delta.X == 0 && delta.Y == 0 {
		return nil
	}
	angle := delta.Angle()

	if err := s.beginSegment(angle); err != nil {
		return err
	}

	// segment ends are movable so the next corner can adjust them
	offset := polar(s.cfg.Radius, angle+math.Pi/2)
	if err := s.borders[0].lineTo(to.Add(offset), true); err != nil {
		return err
	}
	if err := s.borders[1].lineTo(to.Sub(offset), true); err != nil {
		return err
	}
	v.angleIn = angle
	v.center = to
	return nil
}

// beginSegment seeds both borders when angle is the first tangent of the
// subpath, and otherwise processes the corner between the previous
// tangent and angle.
func (s *Stroker) beginSegment(angle float64) error {
	if s.phase == phaseStarted {
		return s.startSubpath(angle)
	}
	s.vtx.angleOut = angle
	return s.processCorner(s.cfg.Join)
}

// startSubpath places the first point of each border at the offsets of
// the subpath start.
func (s *Stroker) startSubpath(angle float64) error {
	v := &s.vtx
	delta := polar(s.cfg.Radius, angle+math.Pi/2)
	if err := s.borders[0].moveTo(v.center.Add(delta)); err != nil {
		return err
	}
	if err := s.borders[1].moveTo(v.center.Sub(delta)); err != nil {
		return err
	}
	v.subpathAngle = angle
	s.phase = phaseDrawing
	return nil
}

// EndSubpath finishes the current subpath. Closed subpaths become two
// contours, one per border; open subpaths become a single capped contour
// on BorderRight. A subpath without any segment is dropped.
func (s *Stroker) EndSubpath() error {
	if err := s.checkDrawing(); err != nil {
		return err
	}
	if s.phase == phaseStarted {
		s.phase = phaseIdle
		return nil
	}
	var err error
	if s.vtx.subpathOpen {
		err = s.endOpen()
	} else {
		err = s.endClosed()
	}
	s.phase = phaseIdle
	return err
}

// endOpen caps the end of the subpath, walks back along the left border
// and caps the start, producing one contour on border 0.
func (s *Stroker) endOpen() error {
	v := &s.vtx
	right, left := &s.borders[0], &s.borders[1]

	if err := s.addCap(v.angleIn, 0); err != nil {
		return err
	}
	if err := right.appendReversed(left); err != nil {
		return err
	}
	v.center = v.subpathStart
	if err := s.addCap(normalizeAngle(v.subpathAngle+math.Pi), 0); err != nil {
		return err
	}
	right.close(false)
	return nil
}

// endClosed draws the closing segment and the corner at the subpath start,
// then closes both borders independently.
func (s *Stroker) endClosed() error {
	v := &s.vtx
	if v.center != v.subpathStart {
		if err := s.LineTo(v.subpathStart); err != nil {
			return err
		}
	}
	v.angleOut = v.subpathAngle
	if err := s.processCorner(s.cfg.Join); err != nil {
		return err
	}
	s.borders[0].close(true)
	s.borders[1].close(false)
	return nil
}

// ParseOutline strokes every contour of o, treating all of them as open
// when open is true. The result accumulates with earlier calls until
// Rewind.
//
// On error the Stroker is left partially populated and refuses further
// parsing until Rewind is called.
func (s *Stroker) ParseOutline(o *Outline, open bool) error {
	if s == nil {
		return fmt.Errorf("%w: nil stroker", ErrInvalidArgument)
	}
	if o == nil {
		return fmt.Errorf("%w: nil outline", ErrInvalidArgument)
	}
	if s.failed {
		return fmt.Errorf("%w: stroker must be rewound after a failed parse", ErrInvalidArgument)
	}
	if err := o.Walk(outlineParser{s: s, open: open}); err != nil {
		s.failed = true
		Logger().Debug("stroke: parse failed", "points", len(o.Points), "contours", len(o.Contours), "err", err)
		return err
	}
	return nil
}

// outlineParser adapts a Stroker to the Walker interface.
type outlineParser struct {
	s    *Stroker
	open bool
}

func (p outlineParser) MoveTo(to Point) error          { return p.s.BeginSubpath(to, p.open) }
func (p outlineParser) LineTo(to Point) error          { return p.s.LineTo(to) }
func (p outlineParser) QuadTo(c, to Point) error       { return p.s.QuadTo(c, to) }
func (p outlineParser) CubicTo(c1, c2, to Point) error { return p.s.CubicTo(c1, c2, to) }
func (p outlineParser) Close() error                   { return p.s.EndSubpath() }
