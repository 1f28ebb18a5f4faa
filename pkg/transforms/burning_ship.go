package transforms

import "math"

// BurningShip iterates from z = the point, with the point as c. The imaginary
// part of each step folds 2*re*im to its absolute value before adding Im(c);
// the real part is left unfolded.
type BurningShip struct{}

func (BurningShip) Start(p complex128) (complex128, complex128) {
	return p, p
}

func (BurningShip) Next(z complex128, c complex128) complex128 {
	re, im := real(z), imag(z)

	return complex(re*re-im*im+real(c), math.Abs(2*re*im)+imag(c))
}

func (BurningShip) Name() string { return "burning-ship" }

func (BurningShip) variant() {}

var _ Variant = BurningShip{}
