// Package matrix - ingestion, submatrix extraction and element-wise helpers.
//
// Purpose:
//   - FromRows: validated ingestion of literal [][]float64 data.
//   - Induced: copying submatrix by row/column index lists — the primitive
//     container subsetting is built on.
//   - Apply: element-wise derivation (e.g. log-transforming a counts assay).
//   - Equal: exact shape+value comparison used by round-trip tests.

package matrix

import (
	"fmt"
	"math"
)

// FromRows builds a Dense from a slice of equally-sized rows.
//
// An empty outer slice yields a 0×0 matrix. Ragged rows are rejected with
// ErrDimensionMismatch; non-finite values with ErrNaNInf. The input slices
// are copied, never retained.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return NewDense(0, 0)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromRows: value at (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// Induced materializes the submatrix selected by rowIdx × colIdx as an
// independent copy. A nil index slice selects the full axis in order;
// indices may repeat and reorder freely.
//
// Errors: ErrNilMatrix, ErrOutOfRange on any invalid index.
// Complexity: O(len(rowIdx) * len(colIdx)).
func (m *Dense) Induced(rowIdx, colIdx []int) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Dense.Induced: %w", ErrNilMatrix)
	}
	if rowIdx == nil {
		rowIdx = fullAxis(m.r)
	}
	if colIdx == nil {
		colIdx = fullAxis(m.c)
	}
	// Validate both index lists before allocating the result.
	for _, i := range rowIdx {
		if i < 0 || i >= m.r {
			return nil, fmt.Errorf("Dense.Induced: row index %d: %w", i, ErrOutOfRange)
		}
	}
	for _, j := range colIdx {
		if j < 0 || j >= m.c {
			return nil, fmt.Errorf("Dense.Induced: col index %d: %w", j, ErrOutOfRange)
		}
	}
	out := &Dense{
		r:    len(rowIdx),
		c:    len(colIdx),
		data: make([]float64, len(rowIdx)*len(colIdx)),
	}
	for oi, i := range rowIdx {
		base := i * m.c
		for oj, j := range colIdx {
			out.data[oi*out.c+oj] = m.data[base+j]
		}
	}

	return out, nil
}

// Apply returns a new matrix with f applied to every element; the receiver
// is untouched. f receives the coordinates and the current value.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) *Dense {
	if m == nil {
		return nil
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[i*m.c+j] = f(i, j, m.data[i*m.c+j])
		}
	}

	return out
}

// Equal reports whether a and b have identical shape and identical elements.
// Two nil matrices are equal; nil never equals non-nil.
// Complexity: O(r*c).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// fullAxis builds the identity index list [0, 1, ..., n-1].
// Complexity: O(n).
func fullAxis(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}
