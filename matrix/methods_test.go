// Package matrix_test: tests for ingestion, submatrix extraction, Apply, Equal.
package matrix_test

import (
	"math"
	"testing"

	"github.com/cellscope/scex/matrix"
	"github.com/stretchr/testify/require"
)

// TestFromRows validates ingestion of literal data.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestFromRowsEmpty yields a legal 0×0 matrix.
func TestFromRowsEmpty(t *testing.T) {
	m, err := matrix.FromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

// TestFromRowsRagged rejects rows of uneven length.
func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFromRowsNonFinite rejects NaN and Inf at ingestion.
func TestFromRowsNonFinite(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.FromRows([][]float64{{math.Inf(1), 2}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestInduced verifies copying submatrix extraction by index lists.
func TestInduced(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	sub, err := m.Induced([]int{2, 0}, []int{1}) // rows reordered, one column
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 1, sub.Cols())

	v, err := sub.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 8.0, v) // original (2,1)

	v, err = sub.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v) // original (0,1)

	// The copy must be independent of the source.
	require.NoError(t, sub.Set(0, 0, 99))
	v, err = m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 8.0, v)
}

// TestInducedNilAxisSelectsAll verifies nil index slices mean "full axis".
func TestInducedNilAxisSelectsAll(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	sub, err := m.Induced(nil, []int{1})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Rows())
	require.Equal(t, 1, sub.Cols())

	full, err := m.Induced(nil, nil)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, full))
}

// TestInducedOutOfRange rejects any invalid index before allocating output.
func TestInducedOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.Induced([]int{0, 2}, nil)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Induced(nil, []int{-1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestApply derives a new matrix without touching the receiver.
func TestApply(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 3}})
	require.NoError(t, err)

	out := m.Apply(func(_, _ int, v float64) float64 { return math.Log2(v + 1) })
	v, err := out.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v) // log2(3+1)

	v, err = m.At(0, 1) // receiver untouched
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

// TestEqual covers shape and value comparison plus nil handling.
func TestEqual(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)
	c, err := matrix.FromRows([][]float64{{1, 3}})
	require.NoError(t, err)

	require.True(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(a, c))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal(nil, nil))
}
