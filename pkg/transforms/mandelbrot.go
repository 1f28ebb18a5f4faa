package transforms

// Mandelbrot iterates z*z + c from z = 0, where c is the point itself.
type Mandelbrot struct{}

func (Mandelbrot) Start(p complex128) (complex128, complex128) {
	return 0, p
}

func (Mandelbrot) Next(z complex128, c complex128) complex128 {
	return z*z + c
}

func (Mandelbrot) Name() string { return "mandelbrot" }

func (Mandelbrot) variant() {}

var _ Variant = Mandelbrot{}
