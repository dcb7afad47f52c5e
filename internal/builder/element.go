// Package builder provides the core constructors for nested multidimensional
// slices used by the ndim library.
package builder

// Numeric is a constraint for element types that have a multiplicative identity.
// It covers every Go integer and floating-point kind, including named types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Float is a constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Zeroer is implemented by element types whose neutral element is not the Go
// zero value. Zero is called on the Go zero value of the type and must not
// depend on its receiver.
type Zeroer[T any] interface {
	Zero() T
}

// ZeroOf returns the zero value of T.
//
// If T implements Zeroer[T], its Zero method supplies the value; otherwise the
// Go zero value is used. Each call produces a fresh value.
func ZeroOf[T any]() T {
	var zero T
	if z, ok := any(zero).(Zeroer[T]); ok {
		return z.Zero()
	}
	return zero
}

// OneOf returns the multiplicative identity of T.
func OneOf[T Numeric]() T {
	return T(1)
}
