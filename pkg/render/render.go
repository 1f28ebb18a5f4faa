// Package render draws escape-time fractals into pixel buffers.
package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/willbeason/fractal-art/pkg/escape"
	"github.com/willbeason/fractal-art/pkg/geometry"
	"github.com/willbeason/fractal-art/pkg/palette"
)

var (
	ErrInvalidDimension = errors.New("image dimensions must be positive")
	ErrMissingGradient  = errors.New("gradient is required")
)

// Interior is the color of points which do not escape.
var Interior = gg.Black

// Render evaluates cfg at every pixel of a width by height image covering view.
// Pixels which escape are colored by gradient at iterations/MaxIterations, in
// [0, 1); pixels which do not are Interior.
//
// All arguments are validated before the buffer is allocated. On error no
// Image is returned.
func Render(width, height int, cfg escape.Config, view geometry.Viewport, gradient palette.Gradient) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d pixels overflows", ErrInvalidDimension, width, height)
	}
	if palette.Missing(gradient) {
		return nil, ErrMissingGradient
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := view.Validate(); err != nil {
		return nil, err
	}

	img := newImage(width, height)
	maxIterations := float64(cfg.MaxIterations)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			iterations := escape.Evaluate(view.Map(x, y, width, height), cfg)

			if cfg.Interior(iterations) {
				img.set(x, y, Interior)
				continue
			}

			img.set(x, y, gradient.Evaluate(float64(iterations)/maxIterations))
		}
	}

	return img, nil
}
