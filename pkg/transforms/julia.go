package transforms

// Julia iterates z*z + C from z = the point. C is fixed for the whole image.
type Julia struct {
	C complex128
}

func (j Julia) Start(p complex128) (complex128, complex128) {
	return p, j.C
}

func (j Julia) Next(z complex128, c complex128) complex128 {
	return z*z + c
}

func (Julia) Name() string { return "julia" }

func (Julia) variant() {}

var _ Variant = Julia{}
