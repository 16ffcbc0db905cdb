// Package frame - the Frame type: ordered named columns over a locked row count.
//
// Storage mirrors the map-plus-order layout used for deterministic registries
// elsewhere in this module: a name→Column map for O(1) lookup and a []string
// slice recording insertion order for deterministic iteration. Overwriting a
// column keeps its original position.

package frame

import "fmt"

// Frame is an ordered table of named columns, all of length nrow.
// The zero value is not usable; construct with New.
type Frame struct {
	nrow  int               // locked row count; every column must match
	cols  map[string]Column // name → column
	order []string          // insertion order of column names
}

// New creates an empty frame with a fixed row count.
//
// Errors: ErrNegativeRows.
// Complexity: O(1).
func New(nrow int) (*Frame, error) {
	if nrow < 0 {
		return nil, ErrNegativeRows
	}

	return &Frame{nrow: nrow, cols: make(map[string]Column)}, nil
}

// MustNew is New for statically-known row counts; panics on negative nrow.
// Intended for literals in tests and examples.
func MustNew(nrow int) *Frame {
	f, err := New(nrow)
	if err != nil {
		panic(err)
	}

	return f
}

// NumRows returns the locked row count.
// Complexity: O(1).
func (f *Frame) NumRows() int { return f.nrow }

// NumCols returns the number of columns.
// Complexity: O(1).
func (f *Frame) NumCols() int { return len(f.order) }

// Names returns the column names in insertion order. The slice is a copy.
// Complexity: O(cols).
func (f *Frame) Names() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)

	return out
}

// Has reports whether a column with the given name exists.
// Complexity: O(1).
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]

	return ok
}

// Col returns the column stored under name.
//
// Errors: ErrColumnNotFound.
// Complexity: O(1).
func (f *Frame) Col(name string) (Column, error) {
	c, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("frame: column %q: %w", name, ErrColumnNotFound)
	}

	return c, nil
}

// Set inserts or overwrites a column. New names append to the column order;
// overwriting keeps the original position. The column length must equal the
// frame's row count.
//
// Errors: ErrLengthMismatch.
// Complexity: O(1).
func (f *Frame) Set(name string, col Column) error {
	if col.Len() != f.nrow {
		return fmt.Errorf("frame: column %q has %d rows, frame has %d: %w",
			name, col.Len(), f.nrow, ErrLengthMismatch)
	}
	if _, exists := f.cols[name]; !exists {
		f.order = append(f.order, name)
	}
	f.cols[name] = col

	return nil
}

// Delete removes a column if present; deleting an absent name is a no-op.
// Complexity: O(cols).
func (f *Frame) Delete(name string) {
	if _, ok := f.cols[name]; !ok {
		return
	}
	delete(f.cols, name)
	for k, n := range f.order {
		if n == name {
			f.order = append(f.order[:k], f.order[k+1:]...)

			break
		}
	}
}

// Take returns a new frame holding the rows selected by idx, in idx order,
// with every column sliced identically. A nil idx selects all rows in order.
//
// Errors: ErrIndexOutOfRange.
// Complexity: O(cols * len(idx)).
func (f *Frame) Take(idx []int) (*Frame, error) {
	if idx == nil {
		return f.Clone(), nil
	}
	if err := checkIdx(idx, f.nrow); err != nil {
		return nil, err
	}
	out := &Frame{
		nrow:  len(idx),
		cols:  make(map[string]Column, len(f.cols)),
		order: append([]string(nil), f.order...),
	}
	for _, name := range f.order {
		c, err := f.cols[name].Take(idx)
		if err != nil {
			return nil, err
		}
		out.cols[name] = c
	}

	return out, nil
}

// Clone returns a new frame header sharing the column values with the
// original. Columns are immutable by convention, so sharing is safe; callers
// replace columns via Set rather than writing through them.
// Complexity: O(cols).
func (f *Frame) Clone() *Frame {
	out := &Frame{
		nrow:  f.nrow,
		cols:  make(map[string]Column, len(f.cols)),
		order: append([]string(nil), f.order...),
	}
	for name, c := range f.cols {
		out.cols[name] = c
	}

	return out
}
