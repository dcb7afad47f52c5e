// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package builder

import (
	"github.com/born-ml/ndim/internal/builder"
)

// Type aliases for public API

// Numeric is a constraint for element types with a multiplicative identity.
type Numeric = builder.Numeric

// Float is a constraint for floating-point element types.
type Float = builder.Float

// Zeroer is implemented by element types whose neutral element is not the Go
// zero value.
//
// Example:
//
//	type lowest float64
//
//	func (lowest) Zero() lowest { return lowest(math.Inf(-1)) }
type Zeroer[T any] = builder.Zeroer[T]

// Shape holds the extents of a nested container, outermost axis first.
// Example: Shape{2, 3, 4} describes a [][][]T of 2×3×4.
type Shape = builder.Shape

// Shaped pairs a nested container with its recorded Shape.
type Shaped[C any] = builder.Shaped[C]

// ExtentError reports a negative extent and the axis it was given for.
type ExtentError = builder.ExtentError

// Errors returned by the builders.
var (
	ErrNegativeExtent  = builder.ErrNegativeExtent
	ErrUnsupportedRank = builder.ErrUnsupportedRank
	ErrRagged          = builder.ErrRagged
	ErrNotContainer    = builder.ErrNotContainer
	ErrZeroStep        = builder.ErrZeroStep
	ErrNonFinite       = builder.ErrNonFinite
	ErrRangeTooLarge   = builder.ErrRangeTooLarge
)

// Zero value

// ZeroOf returns the zero value of T, honoring Zeroer.
func ZeroOf[T any]() T {
	return builder.ZeroOf[T]()
}

// Zero-filled constructors

// OneDim creates a slice of length n filled with the zero value of T.
//
// Example:
//
//	v, _ := builder.OneDim[float64](3) // [0 0 0]
func OneDim[T any](n int) ([]T, error) {
	return builder.OneDim[T](n)
}

// TwoDim creates an a×b nested slice filled with the zero value of T.
//
// Example:
//
//	m, _ := builder.TwoDim[int](3, 2) // [[0 0] [0 0] [0 0]]
func TwoDim[T any](a, b int) ([][]T, error) {
	return builder.TwoDim[T](a, b)
}

// ThreeDim creates an a×b×c nested slice filled with the zero value of T.
func ThreeDim[T any](a, b, c int) ([][][]T, error) {
	return builder.ThreeDim[T](a, b, c)
}

// FourDim creates an a×b×c×d nested slice filled with the zero value of T.
func FourDim[T any](a, b, c, d int) ([][][][]T, error) {
	return builder.FourDim[T](a, b, c, d)
}

// Filled constructors

// OneDimFull creates a slice of length n with every element set to value.
func OneDimFull[T any](n int, value T) ([]T, error) {
	return builder.OneDimFull(n, value)
}

// TwoDimFull creates an a×b nested slice with every element set to value.
func TwoDimFull[T any](a, b int, value T) ([][]T, error) {
	return builder.TwoDimFull(a, b, value)
}

// ThreeDimFull creates an a×b×c nested slice with every element set to value.
func ThreeDimFull[T any](a, b, c int, value T) ([][][]T, error) {
	return builder.ThreeDimFull(a, b, c, value)
}

// FourDimFull creates an a×b×c×d nested slice with every element set to value.
func FourDimFull[T any](a, b, c, d int, value T) ([][][][]T, error) {
	return builder.FourDimFull(a, b, c, d, value)
}

// OneDimOnes creates a slice of length n filled with ones.
func OneDimOnes[T Numeric](n int) ([]T, error) {
	return builder.OneDimOnes[T](n)
}

// TwoDimOnes creates an a×b nested slice filled with ones.
func TwoDimOnes[T Numeric](a, b int) ([][]T, error) {
	return builder.TwoDimOnes[T](a, b)
}

// ThreeDimOnes creates an a×b×c nested slice filled with ones.
func ThreeDimOnes[T Numeric](a, b, c int) ([][][]T, error) {
	return builder.ThreeDimOnes[T](a, b, c)
}

// FourDimOnes creates an a×b×c×d nested slice filled with ones.
func FourDimOnes[T Numeric](a, b, c, d int) ([][][][]T, error) {
	return builder.FourDimOnes[T](a, b, c, d)
}

// Sequences

// Range creates values from start towards stop (exclusive), spaced by step.
//
// Example:
//
//	r, _ := builder.Range(1.0, 3.0, 0.5) // [1 1.5 2 2.5]
func Range[T Numeric](start, stop, step T) ([]T, error) {
	return builder.Range(start, stop, step)
}

// Linspace creates n evenly spaced values over [start, stop].
func Linspace[T Float](start, stop T, n int) ([]T, error) {
	return builder.Linspace(start, stop, n)
}

// Runtime rank

// New creates a zero-filled container of rank len(shape), which must be 1 to 4.
// The result's dynamic type is []T, [][]T, [][][]T or [][][][]T.
func New[T any](shape Shape) (any, error) {
	return builder.New[T](shape)
}

// NewFull is like New but sets every element to value.
func NewFull[T any](shape Shape, value T) (any, error) {
	return builder.NewFull(shape, value)
}

// Shape inference

// ShapeOf infers the shape of a rectangular nested slice container.
func ShapeOf(v any) (Shape, error) {
	return builder.ShapeOf(v)
}

// Wrap pairs data with its measured shape.
func Wrap[C any](data C) (Shaped[C], error) {
	return builder.Wrap(data)
}
