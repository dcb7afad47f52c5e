package builder

import (
	"fmt"
	"math"
	"reflect"
)

// maxRangeLen bounds the length of a Range result.
const maxRangeLen = math.MaxInt32

// Range creates a slice of values from start towards stop (exclusive),
// spaced by step.
//
// A step pointing away from stop yields an empty slice. Values are computed
// as start + i*step, so floating-point ranges do not accumulate drift.
// Integer ranges are counted exactly over the full range of the type.
//
// Example:
//
//	r, _ := builder.Range(1.0, 3.0, 0.5) // [1 1.5 2 2.5]
func Range[T Numeric](start, stop, step T) ([]T, error) {
	kind := reflect.TypeFor[T]().Kind()
	isFloat := kind == reflect.Float32 || kind == reflect.Float64
	if isFloat && !(finite(float64(start)) && finite(float64(stop)) && finite(float64(step))) {
		return nil, ErrNonFinite
	}
	if step == 0 {
		return nil, ErrZeroStep
	}
	if (step > 0 && start >= stop) || (step < 0 && start <= stop) {
		return []T{}, nil
	}

	var n uint64
	switch kind {
	case reflect.Float32, reflect.Float64:
		c := math.Ceil((float64(stop) - float64(start)) / float64(step))
		if !(c <= maxRangeLen) {
			return nil, fmt.Errorf("%w: %g", ErrRangeTooLarge, c)
		}
		n = uint64(c)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n = rangeCount(uint64(stop)-uint64(start), uint64(step))
	default:
		// Two's complement subtraction yields the exact distance as uint64.
		dist := uint64(int64(stop) - int64(start))
		mag := uint64(int64(step))
		if step < 0 {
			dist = uint64(int64(start) - int64(stop))
			mag = -mag
		}
		n = rangeCount(dist, mag)
	}
	if n > maxRangeLen {
		return nil, fmt.Errorf("%w: %d", ErrRangeTooLarge, n)
	}

	out := make([]T, n)
	for i := range out {
		out[i] = start + T(i)*step
	}
	return out, nil
}

// rangeCount returns ceil(dist/step) for dist, step > 0 without overflow.
func rangeCount(dist, step uint64) uint64 {
	return (dist-1)/step + 1
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Linspace creates n evenly spaced values over [start, stop], both endpoints
// included.
//
// Example:
//
//	l, _ := builder.Linspace(0.0, 1.0, 5) // [0 0.25 0.5 0.75 1]
func Linspace[T Float](start, stop T, n int) ([]T, error) {
	if n < 0 {
		return nil, &ExtentError{Axis: 0, Extent: n}
	}
	out := make([]T, n)
	switch n {
	case 0:
		return out, nil
	case 1:
		out[0] = start
		return out, nil
	}

	step := (stop - start) / T(n-1)
	for i := range out {
		out[i] = start + T(i)*step
	}
	out[n-1] = stop
	return out, nil
}
