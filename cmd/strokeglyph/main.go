// Command strokeglyph strokes the glyphs of a font and writes the result
// as an SVG path.
//
// Usage:
//
//	strokeglyph -text Hello -radius 3 -join round -o hello.svg
//	strokeglyph -config stroke.toml -border outside
//
// Options may also come from a TOML file (-config); flags given on the
// command line take precedence over the file.
package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/stroke"
	"github.com/gogpu/stroke/glyph"
)

func main() {
	def := defaultOptions()
	var (
		flags      = def
		configPath = flag.String("config", "", "TOML file with options")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.StringVar(&flags.Font, "font", def.Font, "TrueType/OpenType font file (default Go Regular)")
	flag.StringVar(&flags.Backend, "backend", def.Backend, "font parser: ximage or gotext")
	flag.StringVar(&flags.Text, "text", def.Text, "text to stroke")
	flag.Float64Var(&flags.Size, "size", def.Size, "font size in pixels per em")
	flag.Float64Var(&flags.Radius, "radius", def.Radius, "stroke radius (half width)")
	flag.TextVar(&flags.Cap, "cap", def.Cap, "line cap: butt, round or square")
	flag.TextVar(&flags.Join, "join", def.Join, "line join: round, bevel or miter")
	flag.Float64Var(&flags.MiterLimit, "miter", def.MiterLimit, "miter limit")
	flag.StringVar(&flags.Border, "border", def.Border, "borders to keep: both, inside or outside")
	flag.BoolVar(&flags.Open, "open", def.Open, "stroke contours as open paths (border both only)")
	flag.StringVar(&flags.Output, "o", def.Output, "output file, - for stdout")
	flag.Parse()

	if *verbose {
		stroke.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := def
	if *configPath != "" {
		if err := loadConfig(*configPath, &opts); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) { override(&opts, flags, f.Name) })

	if err := save(opts); err != nil {
		log.Fatalf("strokeglyph: %v", err)
	}
	if opts.Output != "-" {
		log.Printf("Stroke saved to %s\n", opts.Output)
	}
}

// override copies the option behind flag name from src to dst.
func override(dst *options, src options, name string) {
	switch name {
	case "font":
		dst.Font = src.Font
	case "backend":
		dst.Backend = src.Backend
	case "text":
		dst.Text = src.Text
	case "size":
		dst.Size = src.Size
	case "radius":
		dst.Radius = src.Radius
	case "cap":
		dst.Cap = src.Cap
	case "join":
		dst.Join = src.Join
	case "miter":
		dst.MiterLimit = src.MiterLimit
	case "border":
		dst.Border = src.Border
	case "open":
		dst.Open = src.Open
	case "o":
		dst.Output = src.Output
	}
}

// save renders the document in memory and writes it to opts.Output only
// once stroking succeeded, so a failed run leaves no partial file behind.
func save(opts options) error {
	var buf bytes.Buffer
	if err := run(opts, &buf); err != nil {
		return err
	}
	if opts.Output == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(opts.Output, buf.Bytes(), 0o644)
}

func newSource(opts options) (glyph.Source, error) {
	data := goregular.TTF
	if opts.Font != "" {
		var err error
		if data, err = os.ReadFile(opts.Font); err != nil {
			return nil, err
		}
	}
	if opts.Backend == "gotext" {
		return glyph.NewGoTextSource(data, opts.Size)
	}
	return glyph.NewSFNTSource(data, opts.Size)
}

// run lays the text out on one line, strokes every glyph and writes the
// SVG document to w.
func run(opts options, w io.Writer) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if opts.Open && opts.Border != "both" {
		return errors.New("-open needs -border both")
	}
	src, err := newSource(opts)
	if err != nil {
		return err
	}

	var (
		outlines []*stroke.Outline
		pens     []float64
		pen      float64
	)
	for _, r := range norm.NFC.String(opts.Text) {
		o, err := src.Outline(r)
		if errors.Is(err, glyph.ErrGlyphNotFound) || errors.Is(err, glyph.ErrNoOutline) {
			log.Printf("skipping %q: %v", r, err)
			continue
		}
		if err != nil {
			return err
		}
		adv, err := src.Advance(r)
		if err != nil {
			return err
		}
		outlines = append(outlines, o)
		pens = append(pens, pen)
		pen += adv
	}

	strokes, err := strokeGlyphs(opts, outlines)
	if err != nil {
		return err
	}
	glyphs := make([]placed, len(strokes))
	for i, s := range strokes {
		glyphs[i] = placed{outline: s, x: pens[i]}
	}
	return writeSVG(w, glyphs, opts.Radius+opts.Size/16)
}

func strokeGlyphs(opts options, outlines []*stroke.Outline) ([]*stroke.Outline, error) {
	cfg := opts.strokeConfig()
	if opts.Border == "both" {
		b, err := stroke.NewBatch(cfg, 0)
		if err != nil {
			return nil, err
		}
		defer b.Close()
		return b.Stroke(outlines, opts.Open)
	}

	inside := opts.Border == "inside"
	out := make([]*stroke.Outline, len(outlines))
	for i, o := range outlines {
		s, err := stroke.StrokeBorder(o, cfg, inside)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
