// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package builder creates zero-filled multidimensional containers as nested
// slices.
//
// # Overview
//
// Go cannot overload a function by its return type, so each rank has its own
// constructor:
//   - OneDim(n) returns []T
//   - TwoDim(a, b) returns [][]T
//   - ThreeDim(a, b, c) returns [][][]T
//   - FourDim(a, b, c, d) returns [][][][]T
//
// All four share one zero-value capability: the Go zero value of T, or the
// result of T's Zero method when T implements Zeroer[T].
//
// # Basic Usage
//
//	import "github.com/born-ml/ndim/builder"
//
//	func main() {
//	    bias, _ := builder.OneDim[float64](5)        // [0 0 0 0 0]
//	    weights, _ := builder.TwoDim[float32](3, 2)  // [[0 0] [0 0] [0 0]]
//	    batch, _ := builder.FourDim[uint8](8, 3, 28, 28)
//	}
//
// # Guarantees
//
// Every inner slice is a separate allocation, so writing to one row never
// changes another. Extents may be zero; a negative extent fails with
// ErrNegativeExtent before anything is allocated.
//
// # Other Builders
//
//	ones, _ := builder.TwoDimOnes[float64](2, 2)     // [[1 1] [1 1]]
//	full, _ := builder.ThreeDimFull(1, 1, 2, 5.0)    // [[[5 5]]]
//	r, _ := builder.Range(0, 5, 1)                   // [0 1 2 3 4]
//	l, _ := builder.Linspace(2.0, 5.0, 4)            // [2 3 4 5]
//
// # Shape
//
// Nested slices do not record their rank. ShapeOf measures one, and Wrap
// pairs a container with its measured Shape:
//
//	s, _ := builder.Wrap(weights)
//	s.Shape() // (3, 2)
package builder
