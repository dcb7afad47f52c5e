package builder

import "fmt"

// Shaped pairs a nested slice container with its extents, for callers that
// need to ask a container for its rank or shape.
//
// The shape is recorded when the container is wrapped. Appending to or
// truncating rows of Data afterwards is not tracked.
type Shaped[C any] struct {
	data  C
	shape Shape
}

// Wrap records the shape of data. It fails if data is not a rectangular
// nested slice container.
//
// Example:
//
//	m, _ := builder.TwoDim[float32](3, 4)
//	s, _ := builder.Wrap(m)
//	s.Shape() // (3, 4)
func Wrap[C any](data C) (Shaped[C], error) {
	shape, err := ShapeOf(data)
	if err != nil {
		return Shaped[C]{}, fmt.Errorf("wrap: %w", err)
	}
	return Shaped[C]{data: data, shape: shape}, nil
}

// Data returns the wrapped container.
func (s Shaped[C]) Data() C {
	return s.data
}

// Shape returns a copy of the recorded shape.
func (s Shaped[C]) Shape() Shape {
	return s.shape.Clone()
}

// Rank returns the number of axes.
func (s Shaped[C]) Rank() int {
	return s.shape.Rank()
}
