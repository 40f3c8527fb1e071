package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/stroke"
)

// options holds everything a run needs. Config files fill it first and
// command line flags override it.
type options struct {
	Font       string          `toml:"font"`
	Backend    string          `toml:"backend"`
	Text       string          `toml:"text"`
	Size       float64         `toml:"size"`
	Radius     float64         `toml:"radius"`
	Cap        stroke.LineCap  `toml:"cap"`
	Join       stroke.LineJoin `toml:"join"`
	MiterLimit float64         `toml:"miter_limit"`
	Border     string          `toml:"border"`
	Open       bool            `toml:"open"`
	Output     string          `toml:"output"`
}

func defaultOptions() options {
	cfg := stroke.DefaultConfig()
	return options{
		Backend:    "ximage",
		Text:       "Stroke",
		Size:       96,
		Radius:     2,
		Cap:        cfg.Cap,
		Join:       cfg.Join,
		MiterLimit: cfg.MiterLimit,
		Border:     "both",
		Output:     "stroke.svg",
	}
}

// loadConfig decodes a TOML file over opts. Unknown keys are errors.
func loadConfig(path string, opts *options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return decodeConfig(data, opts)
}

func decodeConfig(data []byte, opts *options) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(opts); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (o options) strokeConfig() stroke.Config {
	return stroke.Config{
		Radius:     o.Radius,
		Cap:        o.Cap,
		Join:       o.Join,
		MiterLimit: o.MiterLimit,
	}
}

func (o options) validate() error {
	switch o.Backend {
	case "ximage", "gotext":
	default:
		return fmt.Errorf("unknown backend %q (want ximage or gotext)", o.Backend)
	}
	switch o.Border {
	case "both", "inside", "outside":
	default:
		return fmt.Errorf("unknown border %q (want both, inside or outside)", o.Border)
	}
	if !(o.Size > 0) {
		return fmt.Errorf("size %v must be positive", o.Size)
	}
	return o.strokeConfig().Validate()
}
