package stroke

import (
	"fmt"
	"math"
	"strings"
)

// LineCap specifies the shape of open subpath endpoints.
type LineCap int

const (
	// LineCapButt ends the stroke flush with the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a half circle of the stroke radius.
	LineCapRound
	// LineCapSquare extends the stroke by its radius past the endpoint.
	LineCapSquare
)

var lineCapNames = [...]string{"butt", "round", "square"}

// String returns the lower-case name of the cap.
func (c LineCap) String() string {
	if c < 0 || int(c) >= len(lineCapNames) {
		return fmt.Sprintf("LineCap(%d)", int(c))
	}
	return lineCapNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c LineCap) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(lineCapNames) {
		return nil, fmt.Errorf("%w: line cap %d", ErrInvalidArgument, int(c))
	}
	return []byte(lineCapNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are
// case-insensitive.
func (c *LineCap) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range lineCapNames {
		if n == name {
			*c = LineCap(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown line cap %q", ErrInvalidArgument, text)
}

// LineJoin specifies the shape drawn on the outside of a corner.
type LineJoin int

const (
	// LineJoinRound joins segments with a circular arc.
	LineJoinRound LineJoin = iota
	// LineJoinBevel joins segments with a straight connector.
	LineJoinBevel
	// LineJoinMiter joins sharp corners with a miter clipped at
	// MiterLimit times the radius, and milder corners with a bevel.
	LineJoinMiter
)

var lineJoinNames = [...]string{"round", "bevel", "miter"}

// String returns the lower-case name of the join.
func (j LineJoin) String() string {
	if j < 0 || int(j) >= len(lineJoinNames) {
		return fmt.Sprintf("LineJoin(%d)", int(j))
	}
	return lineJoinNames[j]
}

// MarshalText implements encoding.TextMarshaler.
func (j LineJoin) MarshalText() ([]byte, error) {
	if j < 0 || int(j) >= len(lineJoinNames) {
		return nil, fmt.Errorf("%w: line join %d", ErrInvalidArgument, int(j))
	}
	return []byte(lineJoinNames[j]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are
// case-insensitive.
func (j *LineJoin) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range lineJoinNames {
		if n == name {
			*j = LineJoin(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown line join %q", ErrInvalidArgument, text)
}

// Config defines how an outline is stroked.
// Config is a comparable value and can be used as a map key.
type Config struct {
	// Radius is half the stroke width. Must be positive.
	Radius float64

	// Cap is the shape of open subpath endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of corners. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit bounds the miter length as a multiple of Radius.
	// Must be at least 1. Default: 4.0
	MiterLimit float64
}

// DefaultConfig returns a one unit wide stroke with butt caps and miter
// joins limited at 4.
func DefaultConfig() Config {
	return Config{
		Radius:     0.5,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// WithRadius returns a copy of the Config with the given radius.
func (c Config) WithRadius(r float64) Config {
	c.Radius = r
	return c
}

// WithWidth returns a copy of the Config whose radius is half of w.
func (c Config) WithWidth(w float64) Config {
	c.Radius = w / 2
	return c
}

// WithCap returns a copy of the Config with the given line cap style.
func (c Config) WithCap(lineCap LineCap) Config {
	c.Cap = lineCap
	return c
}

// WithJoin returns a copy of the Config with the given line join style.
func (c Config) WithJoin(join LineJoin) Config {
	c.Join = join
	return c
}

// WithMiterLimit returns a copy of the Config with the given miter limit.
// A value of 1.0 clips every miter at the stroke radius.
func (c Config) WithMiterLimit(limit float64) Config {
	c.MiterLimit = limit
	return c
}

// Width returns the full stroke width.
func (c Config) Width() float64 {
	return 2 * c.Radius
}

// Validate reports whether the configuration can be used for stroking.
func (c Config) Validate() error {
	switch {
	case !(c.Radius > 0) || math.IsInf(c.Radius, 0):
		return fmt.Errorf("%w: radius %v must be positive and finite", ErrInvalidArgument, c.Radius)
	case !(c.MiterLimit >= 1) || math.IsInf(c.MiterLimit, 0):
		return fmt.Errorf("%w: miter limit %v must be at least 1", ErrInvalidArgument, c.MiterLimit)
	case c.Cap < LineCapButt || c.Cap > LineCapSquare:
		return fmt.Errorf("%w: %v", ErrInvalidArgument, c.Cap)
	case c.Join < LineJoinRound || c.Join > LineJoinMiter:
		return fmt.Errorf("%w: %v", ErrInvalidArgument, c.Join)
	}
	return nil
}
