// Package settings turns command-line flags into a render request.
package settings

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/willbeason/fractal-art/pkg/escape"
	"github.com/willbeason/fractal-art/pkg/geometry"
	"github.com/willbeason/fractal-art/pkg/palette"
	"github.com/willbeason/fractal-art/pkg/render"
	"github.com/willbeason/fractal-art/pkg/transforms"
)

// Settings is everything needed to produce one image.
type Settings struct {
	Width, Height int

	Variant       string
	MaxIterations int
	EscapeRadius  float64

	// CReal and CImag are the Julia constant. Other variants ignore them.
	CReal, CImag float64

	// Min and Max bound the viewport unless ViewHeight is positive, in which
	// case the viewport is ViewHeight tall around Center.
	Min, Max   geometry.XY
	Center     geometry.XY
	ViewHeight float64

	// Stops, if set, overrides Palette.
	Palette string
	Stops   string

	Out     string
	Verbose bool
}

// Default returns Settings for a small, coarse Mandelbrot image.
func Default() Settings {
	return Settings{
		Width:         256,
		Height:        256,
		Variant:       transforms.Mandelbrot{}.Name(),
		MaxIterations: 5,
		EscapeRadius:  2.0,
		CReal:         -0.7,
		CImag:         0.27015,
		Min:           geometry.XY{X: -2, Y: -2},
		Max:           geometry.XY{X: 2, Y: 2},
		Palette:       palette.DefaultPreset,
		Out:           "out.png",
	}
}

// AddFlags binds flags to s, using the current values of s as defaults.
func (s *Settings) AddFlags(flags *pflag.FlagSet) {
	flags.IntVar(&s.Width, "width", s.Width, "image width in pixels")
	flags.IntVar(&s.Height, "height", s.Height, "image height in pixels")

	flags.StringVar(&s.Variant, "variant", s.Variant, "fractal to draw: "+strings.Join(transforms.Names, ", "))
	flags.IntVar(&s.MaxIterations, "max-iterations", s.MaxIterations, "iterations before a point is considered interior")
	flags.Float64Var(&s.EscapeRadius, "escape-radius", s.EscapeRadius, "magnitude past which a point has escaped")
	flags.Float64Var(&s.CReal, "c-real", s.CReal, "real part of the julia constant")
	flags.Float64Var(&s.CImag, "c-imag", s.CImag, "imaginary part of the julia constant")

	flags.Float64Var(&s.Min.X, "min-x", s.Min.X, "left edge of the viewport")
	flags.Float64Var(&s.Min.Y, "min-y", s.Min.Y, "top edge of the viewport")
	flags.Float64Var(&s.Max.X, "max-x", s.Max.X, "right edge of the viewport")
	flags.Float64Var(&s.Max.Y, "max-y", s.Max.Y, "bottom edge of the viewport")
	flags.Float64Var(&s.Center.X, "center-x", s.Center.X, "viewport center, used with --view-height")
	flags.Float64Var(&s.Center.Y, "center-y", s.Center.Y, "viewport center, used with --view-height")
	flags.Float64Var(&s.ViewHeight, "view-height", s.ViewHeight, "if positive, frame a viewport this tall around the center instead of using the bounds")

	flags.StringVar(&s.Palette, "palette", s.Palette, "gradient preset: "+strings.Join(palette.PresetNames(), ", "))
	flags.StringVar(&s.Stops, "stops", s.Stops, `explicit gradient stops, e.g. "0:#000764,0.5:#ffffff,1:#ff8800"`)

	flags.StringVarP(&s.Out, "out", "o", s.Out, "output file; the extension picks png, bmp or tiff")
	flags.BoolVarP(&s.Verbose, "verbose", "v", s.Verbose, "log debug output")
}

func (s Settings) Config() (escape.Config, error) {
	variant, err := transforms.Parse(s.Variant, complex(s.CReal, s.CImag))
	if err != nil {
		return escape.Config{}, err
	}

	cfg := escape.Config{
		MaxIterations: s.MaxIterations,
		EscapeRadius:  s.EscapeRadius,
		Variant:       variant,
	}

	if err := cfg.Validate(); err != nil {
		return escape.Config{}, err
	}

	return cfg, nil
}

func (s Settings) Viewport() geometry.Viewport {
	if s.ViewHeight > 0 && s.Height > 0 {
		return geometry.Around(s.Center, s.ViewHeight, s.Width, s.Height)
	}

	return geometry.Viewport{Min: s.Min, Max: s.Max}
}

func (s Settings) Gradient() (palette.Gradient, error) {
	if s.Stops != "" {
		return palette.ParseStops(s.Stops)
	}

	return palette.Preset(s.Palette)
}

// Logger returns a text logger writing to w, at debug level if Verbose.
func (s Settings) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if s.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Render draws the image s describes.
func (s Settings) Render(logger *slog.Logger) (*render.Image, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}

	gradient, err := s.Gradient()
	if err != nil {
		return nil, err
	}

	view := s.Viewport()
	logger.Debug("render settings",
		"variant", cfg.Variant.Name(),
		"max_iterations", cfg.MaxIterations,
		"escape_radius", cfg.EscapeRadius,
		"min", view.Min,
		"max", view.Max,
	)

	start := time.Now()
	img, err := render.Render(s.Width, s.Height, cfg, view, gradient)
	if err != nil {
		return nil, err
	}

	logger.Info("rendered", "width", s.Width, "height", s.Height, "elapsed", time.Since(start))

	return img, nil
}
