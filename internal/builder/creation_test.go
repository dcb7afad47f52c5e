package builder

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lowest is an element type whose neutral element for max-reductions is -Inf.
type lowest float64

func (lowest) Zero() lowest { return lowest(math.Inf(-1)) }

// counter carries a pointer, so a shared zero value would be observable.
type counter struct {
	n *int
}

func (counter) Zero() counter { return counter{n: new(int)} }

func TestOneDim(t *testing.T) {
	for _, n := range []int{0, 1, 5, 100} {
		v, err := OneDim[float64](n)
		require.NoError(t, err)
		require.Len(t, v, n)
		for _, x := range v {
			assert.Zero(t, x)
		}
	}
}

func TestOneDim_Empty(t *testing.T) {
	v, err := OneDim[int](0)
	require.NoError(t, err)
	assert.NotNil(t, v)
	assert.Empty(t, v)
}

func TestTwoDim(t *testing.T) {
	m, err := TwoDim[int](3, 2)
	require.NoError(t, err)

	want := [][]int{{0, 0}, {0, 0}, {0, 0}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("TwoDim(3, 2) mismatch (-want +got):\n%s", diff)
	}
}

func TestTwoDim_Shapes(t *testing.T) {
	tests := []struct {
		name string
		a, b int
	}{
		{"square", 4, 4},
		{"wide", 2, 7},
		{"tall", 7, 2},
		{"empty outer", 0, 5},
		{"empty inner", 5, 0},
		{"both empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := TwoDim[float32](tt.a, tt.b)
			require.NoError(t, err)
			require.Len(t, m, tt.a)
			for _, row := range m {
				require.Len(t, row, tt.b)
				for _, x := range row {
					assert.Zero(t, x)
				}
			}
		})
	}
}

func TestTwoDim_RowsIndependent(t *testing.T) {
	m, err := TwoDim[int](2, 2)
	require.NoError(t, err)

	m[0][0] = 42
	assert.Equal(t, [][]int{{42, 0}, {0, 0}}, m)

	// A row re-sliced to its capacity must not reach into the next row.
	for i, row := range m {
		assert.Equal(t, len(row), cap(row), "row %d has spare capacity", i)
	}

	m[0] = append(m[0], 7)
	assert.Equal(t, []int{0, 0}, m[1])
}

func TestThreeDim_ComposesTwoDim(t *testing.T) {
	a, b, c := 3, 2, 4
	got, err := ThreeDim[int64](a, b, c)
	require.NoError(t, err)

	want := make([][][]int64, a)
	for i := range want {
		want[i], err = TwoDim[int64](b, c)
		require.NoError(t, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ThreeDim mismatch (-want +got):\n%s", diff)
	}

	got[0][0][0] = 1
	assert.Zero(t, got[1][0][0])
	assert.Zero(t, got[0][1][0])
}

func TestFourDim(t *testing.T) {
	x, err := FourDim[int](1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, [][][][]int{{{{0}}}}, x)

	x, err = FourDim[int](2, 3, 4, 5)
	require.NoError(t, err)
	shape, err := ShapeOf(x)
	require.NoError(t, err)
	assert.True(t, shape.Equal(Shape{2, 3, 4, 5}), "got %v", shape)

	x[1][2][3][4] = 9
	x[0][0][0][0] = 9
	count := 0
	for _, a := range x {
		for _, b := range a {
			for _, c := range b {
				for _, v := range c {
					if v != 0 {
						count++
					}
				}
			}
		}
	}
	assert.Equal(t, 2, count)
}

func TestConstructors_NegativeExtent(t *testing.T) {
	tests := []struct {
		name string
		axis int
		call func() (any, error)
	}{
		{"OneDim", 0, func() (any, error) { return OneDim[int](-1) }},
		{"TwoDim", 1, func() (any, error) { return TwoDim[int](2, -3) }},
		{"ThreeDim", 2, func() (any, error) { return ThreeDim[int](2, 3, -1) }},
		{"FourDim", 0, func() (any, error) { return FourDim[int](-4, 1, 1, 1) }},
		{"TwoDimFull", 0, func() (any, error) { return TwoDimFull(-1, 2, 1.5) }},
		{"FourDimOnes", 3, func() (any, error) { return FourDimOnes[uint8](1, 1, 1, -2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNegativeExtent)

			var extErr *ExtentError
			require.ErrorAs(t, err, &extErr)
			assert.Equal(t, tt.axis, extErr.Axis)
			assert.Less(t, extErr.Extent, 0)

			// No partially built container is handed back.
			assert.True(t, isNilContainer(v), "got %#v", v)
		})
	}
}

func isNilContainer(v any) bool {
	switch c := v.(type) {
	case []int:
		return c == nil
	case [][]int:
		return c == nil
	case [][][]int:
		return c == nil
	case [][][][]int:
		return c == nil
	case [][]float64:
		return c == nil
	case [][][][]uint8:
		return c == nil
	default:
		return v == nil
	}
}

func TestZeroer(t *testing.T) {
	m, err := TwoDim[lowest](2, 3)
	require.NoError(t, err)
	for _, row := range m {
		for _, x := range row {
			assert.True(t, math.IsInf(float64(x), -1))
		}
	}
}

func TestZeroer_FreshPerElement(t *testing.T) {
	m, err := TwoDim[counter](2, 2)
	require.NoError(t, err)

	*m[0][0].n = 5
	assert.Equal(t, 0, *m[0][1].n)
	assert.Equal(t, 0, *m[1][0].n)
	assert.NotSame(t, m[0][0].n, m[1][1].n)
}

func TestFull(t *testing.T) {
	v, err := OneDimFull(3, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x"}, v)

	m, err := TwoDimFull(2, 2, 2.5)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2.5, 2.5}, {2.5, 2.5}}, m)

	c, err := ThreeDimFull(1, 1, 2, 5.0)
	require.NoError(t, err)
	assert.Equal(t, [][][]float64{{{5, 5}}}, c)

	h, err := FourDimFull(1, 2, 1, 1, int32(-1))
	require.NoError(t, err)
	assert.Equal(t, [][][][]int32{{{{-1}}, {{-1}}}}, h)
}

func TestOnes(t *testing.T) {
	v, err := OneDimOnes[uint16](2)
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 1}, v)

	m, err := TwoDimOnes[float64](1, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}}, m)

	c, err := ThreeDimOnes[int8](1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, [][][]int8{{{1, 1}}}, c)

	h, err := FourDimOnes[float32](1, 1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, [][][][]float32{{{{1, 1}}}}, h)

	h[0][0][0][0] = 0
	assert.Equal(t, float32(1), h[0][0][0][1])
}
