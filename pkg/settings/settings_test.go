package settings

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/fractal-art/pkg/escape"
	"github.com/willbeason/fractal-art/pkg/geometry"
	"github.com/willbeason/fractal-art/pkg/palette"
	"github.com/willbeason/fractal-art/pkg/render"
	"github.com/willbeason/fractal-art/pkg/transforms"
)

func parse(t *testing.T, args ...string) Settings {
	t.Helper()

	s := Default()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	s.AddFlags(flags)
	require.NoError(t, flags.Parse(args))

	return s
}

func TestDefault(t *testing.T) {
	s := parse(t)

	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, escape.Config{MaxIterations: 5, EscapeRadius: 2, Variant: transforms.Mandelbrot{}}, cfg)
	assert.Equal(t, geometry.Viewport{Min: geometry.XY{X: -2, Y: -2}, Max: geometry.XY{X: 2, Y: 2}}, s.Viewport())
	assert.Equal(t, 256, s.Width)
	assert.Equal(t, 256, s.Height)
	assert.Equal(t, "out.png", s.Out)
}

func TestAddFlags(t *testing.T) {
	s := parse(t,
		"--width", "64", "--height", "48",
		"--variant", "julia", "--c-real", "0.285", "--c-imag", "0.01",
		"--max-iterations", "30", "--escape-radius", "4",
		"--min-x", "-1", "--max-x", "1", "--min-y", "-0.5", "--max-y", "0.5",
		"-o", "dir/julia.bmp", "-v",
	)

	cfg, err := s.Config()
	require.NoError(t, err)
	assert.Equal(t, transforms.Julia{C: complex(0.285, 0.01)}, cfg.Variant)
	assert.Equal(t, 30, cfg.MaxIterations)
	assert.Equal(t, 4.0, cfg.EscapeRadius)
	assert.Equal(t, geometry.Viewport{Min: geometry.XY{X: -1, Y: -0.5}, Max: geometry.XY{X: 1, Y: 0.5}}, s.Viewport())
	assert.Equal(t, 64, s.Width)
	assert.Equal(t, 48, s.Height)
	assert.Equal(t, "dir/julia.bmp", s.Out)
	assert.True(t, s.Verbose)
}

func TestViewport_ViewHeight(t *testing.T) {
	s := parse(t, "--width", "200", "--height", "100", "--center-x", "-0.5", "--view-height", "2")

	assert.Equal(t, geometry.Around(geometry.XY{X: -0.5}, 2, 200, 100), s.Viewport())
}

func TestConfig_Errors(t *testing.T) {
	_, err := parse(t, "--variant", "newton").Config()
	require.ErrorIs(t, err, transforms.ErrUnknownVariant)

	_, err = parse(t, "--max-iterations", "0").Config()
	require.ErrorIs(t, err, escape.ErrInvalidIterations)

	_, err = parse(t, "--escape-radius", "-1").Config()
	require.ErrorIs(t, err, escape.ErrInvalidEscapeRadius)
}

func TestGradient(t *testing.T) {
	g, err := parse(t, "--palette", "grayscale").Gradient()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, g.Evaluate(1).R, 0.01)

	g, err = parse(t, "--palette", "grayscale", "--stops", "0:#ff0000,1:#ff0000").Gradient()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, g.Evaluate(1).G, 0.01)

	_, err = parse(t, "--palette", "rainbow").Gradient()
	require.ErrorIs(t, err, palette.ErrUnknownPreset)

	_, err = parse(t, "--stops", "nonsense").Gradient()
	require.ErrorIs(t, err, palette.ErrInvalidStop)
}

func TestRender(t *testing.T) {
	s := parse(t, "--width", "16", "--height", "8", "--variant", "burning-ship")

	img, err := s.Render(s.Logger(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Width)
	assert.Equal(t, 8, img.Height)
}

func TestRender_Errors(t *testing.T) {
	logger := Default().Logger(io.Discard)

	_, err := parse(t, "--width", "0").Render(logger)
	require.ErrorIs(t, err, render.ErrInvalidDimension)

	_, err = parse(t, "--min-x", "3").Render(logger)
	require.ErrorIs(t, err, geometry.ErrDegenerateViewport)
}

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)

	Default().Logger(buf).Debug("hidden")
	assert.Empty(t, buf.String())

	s := Default()
	s.Verbose = true
	s.Logger(buf).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
