package builder

import (
	"fmt"
	"reflect"
	"strings"
)

// Shape holds the extents of a nested container, outermost axis first.
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of innermost elements.
func (s Shape) NumElements() int {
	n := 1 // Rank 0 holds a single element.
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is non-negative. Zero extents are legal.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return &ExtentError{Axis: i, Extent: dim}
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as "(2, 3, 4)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprint(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ShapeOf infers the shape of a nested slice container.
//
// The rank is the number of slice levels in the static type of v, so
// ShapeOf([][]float64{}) is (0, 0). Every slice at a given depth must have
// the same length, otherwise ErrRagged is returned.
//
// Example:
//
//	s, _ := builder.ShapeOf([][]int{{0, 0}, {0, 0}, {0, 0}}) // (3, 2)
func ShapeOf(v any) (Shape, error) {
	if v == nil {
		return nil, ErrNotContainer
	}

	rv := reflect.ValueOf(v)
	rank := 0
	for t := rv.Type(); t.Kind() == reflect.Slice; t = t.Elem() {
		rank++
	}
	if rank == 0 {
		return nil, fmt.Errorf("%w: %T", ErrNotContainer, v)
	}

	shape := make(Shape, rank)
	seen := make([]bool, rank)
	if err := measure(rv, 0, shape, seen); err != nil {
		return nil, err
	}
	return shape, nil
}

// measure walks v depth-first, recording the first length seen on each axis
// and rejecting any sibling that disagrees.
func measure(v reflect.Value, axis int, shape Shape, seen []bool) error {
	n := v.Len()
	switch {
	case !seen[axis]:
		shape[axis] = n
		seen[axis] = true
	case shape[axis] != n:
		return fmt.Errorf("%w: axis %d has lengths %d and %d", ErrRagged, axis, shape[axis], n)
	}

	if axis+1 == len(shape) {
		return nil
	}
	for i := 0; i < n; i++ {
		if err := measure(v.Index(i), axis+1, shape, seen); err != nil {
			return err
		}
	}
	return nil
}
