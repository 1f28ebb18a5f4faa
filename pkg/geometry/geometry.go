package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateViewport is returned for viewports with zero or negative extent
// along either axis, or with non-finite bounds.
var ErrDegenerateViewport = errors.New("degenerate viewport")

// XY is a point in the plane.
type XY struct {
	X, Y float64
}

// A Viewport is the rectangle of the complex plane an image is mapped onto.
// X is the real axis and Y the imaginary axis.
type Viewport struct {
	Min, Max XY
}

// Validate reports whether the Viewport can be mapped onto an image.
func (v Viewport) Validate() error {
	for _, f := range []float64{v.Min.X, v.Min.Y, v.Max.X, v.Max.Y} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite bound in %v", ErrDegenerateViewport, v)
		}
	}

	if v.Min.X >= v.Max.X {
		return fmt.Errorf("%w: min x %g is not less than max x %g", ErrDegenerateViewport, v.Min.X, v.Max.X)
	}
	if v.Min.Y >= v.Max.Y {
		return fmt.Errorf("%w: min y %g is not less than max y %g", ErrDegenerateViewport, v.Min.Y, v.Max.Y)
	}

	return nil
}

// Map converts the pixel (x, y) of a width by height image to its point in the
// complex plane. Pixel (0, 0) maps to Min; Max is never reached since x/width
// is strictly less than one.
//
// x must be in [0, width) and y in [0, height).
func (v Viewport) Map(x, y, width, height int) complex128 {
	re := lerp(v.Min.X, v.Max.X, float64(x)/float64(width))
	im := lerp(v.Min.Y, v.Max.Y, float64(y)/float64(height))

	return complex(re, im)
}

// Around returns the Viewport of height viewHeight centered on center, with a
// width matching the aspect ratio of a width by height image.
func Around(center XY, viewHeight float64, width, height int) Viewport {
	viewWidth := viewHeight * float64(width) / float64(height)

	return Viewport{
		Min: XY{X: center.X - viewWidth*0.5, Y: center.Y - viewHeight*0.5},
		Max: XY{X: center.X + viewWidth*0.5, Y: center.Y + viewHeight*0.5},
	}
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
