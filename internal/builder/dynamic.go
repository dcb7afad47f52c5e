package builder

import "fmt"

// New creates a zero-filled container whose rank is only known at run time.
//
// The result is a []T, [][]T, [][][]T or [][][][]T depending on len(shape).
// Prefer the rank-specific constructors when the rank is fixed at compile time.
func New[T any](shape Shape) (any, error) {
	return build(shape, ZeroOf[T])
}

// NewFull is like New but sets every element to value.
func NewFull[T any](shape Shape, value T) (any, error) {
	return build(shape, constant(value))
}

func build[T any](shape Shape, elem func() T) (any, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	switch len(shape) {
	case 1:
		return fill1(shape[0], elem), nil
	case 2:
		return fill2(shape[0], shape[1], elem), nil
	case 3:
		return fill3(shape[0], shape[1], shape[2], elem), nil
	case 4:
		return fill4(shape[0], shape[1], shape[2], shape[3], elem), nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedRank, len(shape))
	}
}
