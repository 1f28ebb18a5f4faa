// Package palette maps normalized escape times to colors.
package palette

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

var (
	ErrEmptyGradient = errors.New("gradient has no color stops")
	ErrInvalidStop   = errors.New("invalid color stop")
	ErrUnknownPreset = errors.New("unknown palette preset")
)

// A Gradient is a color ramp over the closed unit interval.
type Gradient interface {
	Evaluate(t float64) gg.RGBA
}

// Missing reports whether g is nil, including a typed nil such as a nil *Stops
// or a nil Func, or a Stops that was not built by New.
func Missing(g Gradient) bool {
	switch g := g.(type) {
	case nil:
		return true
	case *Stops:
		return g == nil || g.brush == nil
	case Func:
		return g == nil
	}

	v := reflect.ValueOf(g)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Func adapts an ordinary function to a Gradient.
type Func func(t float64) gg.RGBA

func (f Func) Evaluate(t float64) gg.RGBA {
	return f(t)
}

// Stops is a Gradient interpolated between color stops. Values of t outside
// [0, 1] take the color of the nearest end.
type Stops struct {
	brush *gg.LinearGradientBrush
}

// New returns a Gradient through stops. Stops need not be sorted.
func New(stops ...gg.ColorStop) (*Stops, error) {
	if len(stops) == 0 {
		return nil, ErrEmptyGradient
	}

	sorted := make([]gg.ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	// The brush runs along the x axis from 0 to 1, so the x coordinate of a
	// sample is its offset in the gradient.
	brush := gg.NewLinearGradientBrush(0, 0, 1, 0).SetExtend(gg.ExtendPad)
	for _, s := range sorted {
		brush.AddColorStop(s.Offset, s.Color)
	}

	return &Stops{brush: brush}, nil
}

func (s *Stops) Evaluate(t float64) gg.RGBA {
	return s.brush.ColorAt(t, 0)
}

// ColorStops returns the stops of the gradient in offset order.
func (s *Stops) ColorStops() []gg.ColorStop {
	result := make([]gg.ColorStop, len(s.brush.Stops))
	copy(result, s.brush.Stops)
	return result
}

// ParseStops parses a comma-separated list of offset:color pairs such as
// "0:#000764,0.5:#ffffff,1:#ff8800". Colors are hex in RGB, RGBA, RRGGBB or
// RRGGBBAA form, with or without a leading '#'.
func ParseStops(list string) (*Stops, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return nil, ErrEmptyGradient
	}

	var stops []gg.ColorStop
	for _, field := range strings.Split(list, ",") {
		stop, err := parseStop(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}

	return New(stops...)
}

func parseStop(field string) (gg.ColorStop, error) {
	offsetStr, hex, found := strings.Cut(field, ":")
	if !found {
		return gg.ColorStop{}, fmt.Errorf("%w: %q is not offset:color", ErrInvalidStop, field)
	}

	offset, err := strconv.ParseFloat(strings.TrimSpace(offsetStr), 64)
	if err != nil {
		return gg.ColorStop{}, fmt.Errorf("%w: offset in %q: %w", ErrInvalidStop, field, err)
	}
	if offset < 0 || offset > 1 {
		return gg.ColorStop{}, fmt.Errorf("%w: offset %g outside [0, 1]", ErrInvalidStop, offset)
	}

	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if !isHexColor(hex) {
		return gg.ColorStop{}, fmt.Errorf("%w: color in %q", ErrInvalidStop, field)
	}

	return gg.ColorStop{Offset: offset, Color: gg.Hex(hex)}, nil
}

func isHexColor(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}

	for _, c := range s {
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}

	return true
}
