// Package escape evaluates escape-time fractals at single points.
package escape

import (
	"errors"
	"fmt"
	"math"

	"github.com/willbeason/fractal-art/pkg/transforms"
)

var (
	ErrInvalidIterations   = errors.New("max iterations must be positive")
	ErrInvalidEscapeRadius = errors.New("escape radius must be positive and finite")
	ErrMissingVariant      = errors.New("fractal variant is required")
)

// Config holds the parameters of a single render. It is not modified during
// evaluation.
type Config struct {
	// MaxIterations is the iteration budget. Points which have not escaped
	// after MaxIterations iterations are interior.
	MaxIterations int

	// EscapeRadius is the magnitude past which a point has escaped.
	EscapeRadius float64

	Variant transforms.Variant
}

func (c Config) Validate() error {
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, c.MaxIterations)
	}
	if !(c.EscapeRadius > 0) || math.IsInf(c.EscapeRadius, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidEscapeRadius, c.EscapeRadius)
	}
	if transforms.Missing(c.Variant) {
		return ErrMissingVariant
	}

	return nil
}

// Interior reports whether iterations is the did-not-escape sentinel for c.
func (c Config) Interior(iterations int) bool {
	return iterations >= c.MaxIterations
}

// Evaluate iterates the point p under cfg.Variant and returns the number of
// iterations taken before |z| exceeded cfg.EscapeRadius. The result is in
// [0, cfg.MaxIterations]; cfg.MaxIterations means p did not escape.
//
// cfg must be valid. For a non-finite p, variants which start at p fail the
// magnitude test immediately and return 0; Mandelbrot starts at 0 and
// returns 1.
func Evaluate(p complex128, cfg Config) int {
	z, c := cfg.Variant.Start(p)
	r2 := cfg.EscapeRadius * cfg.EscapeRadius

	iterations := 0
	for iterations < cfg.MaxIterations && real(z)*real(z)+imag(z)*imag(z) <= r2 {
		z = cfg.Variant.Next(z, c)
		iterations++
	}

	return iterations
}
