package transforms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrUnknownVariant is returned by Parse for names which match no Variant.
var ErrUnknownVariant = errors.New("unknown fractal variant")

// A Variant is an escape-time recurrence.
//
// The set of Variants is closed: Mandelbrot, Julia and BurningShip.
type Variant interface {
	// Start returns the initial z and the parameter c used to iterate the
	// point p.
	Start(p complex128) (z, c complex128)

	// Next iterates z once. Both parts of the result are computed from z as
	// passed in.
	Next(z, c complex128) complex128

	// Name is the name Parse accepts for the Variant.
	Name() string

	variant()
}

// Missing reports whether v is nil, including a typed nil such as a nil *Julia.
func Missing(v Variant) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Names lists the names accepted by Parse.
var Names = []string{Mandelbrot{}.Name(), Julia{}.Name(), BurningShip{}.Name()}

// Parse returns the Variant called name. Matching ignores case, dashes and
// underscores. c is only used by Julia.
func Parse(name string, c complex128) (Variant, error) {
	normalized := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))

	switch normalized {
	case "mandelbrot":
		return Mandelbrot{}, nil
	case "julia":
		return Julia{C: c}, nil
	case "burningship":
		return BurningShip{}, nil
	default:
		return nil, fmt.Errorf("%w: %q, want one of %s", ErrUnknownVariant, name, strings.Join(Names, ", "))
	}
}
