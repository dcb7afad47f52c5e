package builder

// Constructors validate every extent before allocating anything, so a failed
// call never returns a partially built container. Each rank is built from
// fresh rank-1 rows; no two rows share a backing array.

// OneDim creates a slice of length n filled with the zero value of T.
//
// Example:
//
//	bias, _ := builder.OneDim[float64](5) // [0 0 0 0 0]
func OneDim[T any](n int) ([]T, error) {
	if err := (Shape{n}).Validate(); err != nil {
		return nil, err
	}
	return fill1(n, ZeroOf[T]), nil
}

// TwoDim creates an a×b nested slice filled with the zero value of T.
//
// Example:
//
//	m, _ := builder.TwoDim[int](3, 2) // [[0 0] [0 0] [0 0]]
func TwoDim[T any](a, b int) ([][]T, error) {
	if err := (Shape{a, b}).Validate(); err != nil {
		return nil, err
	}
	return fill2(a, b, ZeroOf[T]), nil
}

// ThreeDim creates an a×b×c nested slice filled with the zero value of T.
func ThreeDim[T any](a, b, c int) ([][][]T, error) {
	if err := (Shape{a, b, c}).Validate(); err != nil {
		return nil, err
	}
	return fill3(a, b, c, ZeroOf[T]), nil
}

// FourDim creates an a×b×c×d nested slice filled with the zero value of T.
//
// Example:
//
//	x, _ := builder.FourDim[int](1, 1, 1, 1) // [[[[0]]]]
func FourDim[T any](a, b, c, d int) ([][][][]T, error) {
	if err := (Shape{a, b, c, d}).Validate(); err != nil {
		return nil, err
	}
	return fill4(a, b, c, d, ZeroOf[T]), nil
}

// OneDimFull creates a slice of length n with every element set to value.
func OneDimFull[T any](n int, value T) ([]T, error) {
	if err := (Shape{n}).Validate(); err != nil {
		return nil, err
	}
	return fill1(n, constant(value)), nil
}

// TwoDimFull creates an a×b nested slice with every element set to value.
//
// Example:
//
//	m, _ := builder.TwoDimFull(2, 2, 3.14)
func TwoDimFull[T any](a, b int, value T) ([][]T, error) {
	if err := (Shape{a, b}).Validate(); err != nil {
		return nil, err
	}
	return fill2(a, b, constant(value)), nil
}

// ThreeDimFull creates an a×b×c nested slice with every element set to value.
func ThreeDimFull[T any](a, b, c int, value T) ([][][]T, error) {
	if err := (Shape{a, b, c}).Validate(); err != nil {
		return nil, err
	}
	return fill3(a, b, c, constant(value)), nil
}

// FourDimFull creates an a×b×c×d nested slice with every element set to value.
func FourDimFull[T any](a, b, c, d int, value T) ([][][][]T, error) {
	if err := (Shape{a, b, c, d}).Validate(); err != nil {
		return nil, err
	}
	return fill4(a, b, c, d, constant(value)), nil
}

// OneDimOnes creates a slice of length n filled with ones.
func OneDimOnes[T Numeric](n int) ([]T, error) {
	return OneDimFull(n, OneOf[T]())
}

// TwoDimOnes creates an a×b nested slice filled with ones.
func TwoDimOnes[T Numeric](a, b int) ([][]T, error) {
	return TwoDimFull(a, b, OneOf[T]())
}

// ThreeDimOnes creates an a×b×c nested slice filled with ones.
func ThreeDimOnes[T Numeric](a, b, c int) ([][][]T, error) {
	return ThreeDimFull(a, b, c, OneOf[T]())
}

// FourDimOnes creates an a×b×c×d nested slice filled with ones.
func FourDimOnes[T Numeric](a, b, c, d int) ([][][][]T, error) {
	return FourDimFull(a, b, c, d, OneOf[T]())
}

func constant[T any](value T) func() T {
	return func() T { return value }
}

// fill1 is the base case; the higher ranks only nest it.
// Extents must already be validated.
func fill1[T any](n int, elem func() T) []T {
	row := make([]T, n)
	for i := range row {
		row[i] = elem()
	}
	return row
}

func fill2[T any](a, b int, elem func() T) [][]T {
	out := make([][]T, a)
	for i := range out {
		out[i] = fill1(b, elem)
	}
	return out
}

func fill3[T any](a, b, c int, elem func() T) [][][]T {
	out := make([][][]T, a)
	for i := range out {
		out[i] = fill2(b, c, elem)
	}
	return out
}

func fill4[T any](a, b, c, d int, elem func() T) [][][][]T {
	out := make([][][][]T, a)
	for i := range out {
		out[i] = fill3(b, c, d, elem)
	}
	return out
}
