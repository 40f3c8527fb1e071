package glyph

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/stroke"
)

var (
	// ErrGlyphNotFound is returned when the font maps a rune to no glyph.
	ErrGlyphNotFound = errors.New("glyph: no glyph for rune")

	// ErrNoOutline is returned for glyphs stored as bitmaps or SVG.
	ErrNoOutline = errors.New("glyph: glyph has no vector outline")
)

// Source yields glyph outlines, scaled to a pixel size, in y-up
// coordinates with the origin on the baseline.
type Source interface {
	Outline(r rune) (*stroke.Outline, error)
	// Advance returns the horizontal advance of the glyph for r.
	Advance(r rune) (float64, error)
}

// SFNTSource reads glyphs with golang.org/x/image/font/sfnt.
// It is safe for concurrent use.
type SFNTSource struct {
	font *sfnt.Font
	ppem fixed.Int26_6

	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewSFNTSource parses a TrueType or OpenType font for glyphs of size
// pixels per em.
func NewSFNTSource(data []byte, size float64) (*SFNTSource, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	return &SFNTSource{font: f, ppem: fixed.Int26_6(size * 64)}, nil
}

func (s *SFNTSource) index(r rune) (sfnt.GlyphIndex, error) {
	x, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil {
		return 0, err
	}
	if x == 0 {
		return 0, fmt.Errorf("%w: %q", ErrGlyphNotFound, r)
	}
	return x, nil
}

// Outline implements Source.
func (s *SFNTSource) Outline(r rune) (*stroke.Outline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	x, err := s.index(r)
	if err != nil {
		return nil, err
	}
	segs, err := s.font.LoadGlyph(&s.buf, x, s.ppem, nil)
	if errors.Is(err, sfnt.ErrColoredGlyph) {
		return nil, fmt.Errorf("%w: %q", ErrNoOutline, r)
	}
	if err != nil {
		return nil, fmt.Errorf("glyph: load %q: %w", r, err)
	}
	return FromSFNT(segs), nil
}

// Advance implements Source.
func (s *SFNTSource) Advance(r rune) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	x, err := s.index(r)
	if err != nil {
		return 0, err
	}
	adv, err := s.font.GlyphAdvance(&s.buf, x, s.ppem, xfont.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("glyph: advance %q: %w", r, err)
	}
	return float64(adv) / 64, nil
}

// GoTextSource reads glyphs with github.com/go-text/typesetting.
// It is safe for concurrent use; the underlying font.Face is not, so
// access is serialized.
type GoTextSource struct {
	mu    sync.Mutex
	face  *font.Face
	scale float64
}

// NewGoTextSource parses a TrueType or OpenType font for glyphs of size
// pixels per em.
func NewGoTextSource(data []byte, size float64) (*GoTextSource, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	return &GoTextSource{face: face, scale: size / float64(face.Upem())}, nil
}

func (s *GoTextSource) index(r rune) (font.GID, error) {
	gid, ok := s.face.Cmap.Lookup(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrGlyphNotFound, r)
	}
	return gid, nil
}

// Outline implements Source.
func (s *GoTextSource) Outline(r rune) (*stroke.Outline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gid, err := s.index(r)
	if err != nil {
		return nil, err
	}
	g, ok := s.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoOutline, r)
	}
	return FromGoText(g, s.scale), nil
}

// Advance implements Source.
func (s *GoTextSource) Advance(r rune) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gid, err := s.index(r)
	if err != nil {
		return 0, err
	}
	return float64(s.face.HorizontalAdvance(gid)) * s.scale, nil
}
