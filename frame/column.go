// Package frame - typed column values.
//
// Purpose:
//   - Column is the minimal surface the Frame needs: length, row subsetting
//     by index list, and cloning.
//   - Concrete columns are thin named slice types; they are treated as
//     immutable once handed to a Frame (Take/Clone copy, never alias input
//     index effects back).

package frame

import "fmt"

// Column is one named vector of a Frame. Implementations must treat their
// backing storage as immutable once stored in a Frame.
type Column interface {
	// Len returns the number of rows in the column.
	// Complexity: O(1).
	Len() int

	// Take returns a new Column holding the rows selected by idx, in idx
	// order (repeats and reordering allowed).
	// Errors: ErrIndexOutOfRange on any invalid index.
	// Complexity: O(len(idx)).
	Take(idx []int) (Column, error)

	// Clone returns an independent deep copy of the column.
	// Complexity: O(Len).
	Clone() Column
}

// Bools is a boolean indicator column (e.g. spike-in membership flags).
type Bools []bool

// Floats is a float64 column (e.g. size factors, per-sample covariates).
type Floats []float64

// Ints is an int column (e.g. group sizes, ordinal labels).
type Ints []int

// Strings is a string column (e.g. sample batches, feature symbols).
type Strings []string

// checkIdx validates each index against n before any allocation.
// Complexity: O(len(idx)).
func checkIdx(idx []int, n int) error {
	for _, i := range idx {
		if i < 0 || i >= n {
			return fmt.Errorf("frame: row index %d of %d: %w", i, n, ErrIndexOutOfRange)
		}
	}

	return nil
}

func (c Bools) Len() int { return len(c) }

func (c Bools) Take(idx []int) (Column, error) {
	if err := checkIdx(idx, len(c)); err != nil {
		return nil, err
	}
	out := make(Bools, len(idx))
	for k, i := range idx {
		out[k] = c[i]
	}

	return out, nil
}

func (c Bools) Clone() Column {
	out := make(Bools, len(c))
	copy(out, c)

	return out
}

func (c Floats) Len() int { return len(c) }

func (c Floats) Take(idx []int) (Column, error) {
	if err := checkIdx(idx, len(c)); err != nil {
		return nil, err
	}
	out := make(Floats, len(idx))
	for k, i := range idx {
		out[k] = c[i]
	}

	return out, nil
}

func (c Floats) Clone() Column {
	out := make(Floats, len(c))
	copy(out, c)

	return out
}

func (c Ints) Len() int { return len(c) }

func (c Ints) Take(idx []int) (Column, error) {
	if err := checkIdx(idx, len(c)); err != nil {
		return nil, err
	}
	out := make(Ints, len(idx))
	for k, i := range idx {
		out[k] = c[i]
	}

	return out, nil
}

func (c Ints) Clone() Column {
	out := make(Ints, len(c))
	copy(out, c)

	return out
}

func (c Strings) Len() int { return len(c) }

func (c Strings) Take(idx []int) (Column, error) {
	if err := checkIdx(idx, len(c)); err != nil {
		return nil, err
	}
	out := make(Strings, len(idx))
	for k, i := range idx {
		out[k] = c[i]
	}

	return out, nil
}

func (c Strings) Clone() Column {
	out := make(Strings, len(c))
	copy(out, c)

	return out
}

// Compile-time assertions that every concrete column satisfies Column.
var (
	_ Column = Bools(nil)
	_ Column = Floats(nil)
	_ Column = Ints(nil)
	_ Column = Strings(nil)
)
