// Package rect - accessors and copy-on-write mutators.
//
// Every mutator clones the container header (O(assays) shallow copy), applies
// one change, and returns the clone. Assay matrices and annotation frames are
// shared between generations; they are immutable by convention.

package rect

import (
	"fmt"

	"github.com/cellscope/scex/frame"
	"github.com/cellscope/scex/matrix"
)

// NumRows returns the feature count.
// Complexity: O(1).
func (c *Container) NumRows() int { return c.nr }

// NumCols returns the sample count.
// Complexity: O(1).
func (c *Container) NumCols() int { return c.nc }

// RowNames returns a copy of the feature labels, or nil when unnamed.
// Complexity: O(nr).
func (c *Container) RowNames() []string {
	if c.rowNames == nil {
		return nil
	}

	return append([]string(nil), c.rowNames...)
}

// ColNames returns a copy of the sample labels, or nil when unnamed.
// Complexity: O(nc).
func (c *Container) ColNames() []string {
	if c.colNames == nil {
		return nil
	}

	return append([]string(nil), c.colNames...)
}

// RowData returns the per-feature annotation frame. Treat it as read-only;
// replace it wholesale via SetRowData.
// Complexity: O(1).
func (c *Container) RowData() *frame.Frame { return c.rowData }

// ColData returns the per-sample annotation frame. Treat it as read-only;
// replace it wholesale via SetColData.
// Complexity: O(1).
func (c *Container) ColData() *frame.Frame { return c.colData }

// AssayNames returns the assay names in insertion order.
// Complexity: O(assays).
func (c *Container) AssayNames() []string {
	return append([]string(nil), c.assayOrder...)
}

// NumAssays returns the number of stored assays.
// Complexity: O(1).
func (c *Container) NumAssays() int { return len(c.assayOrder) }

// Assay returns the assay stored under name.
//
// Errors: ErrAssayNotFound.
// Complexity: O(1).
func (c *Container) Assay(name string) (*matrix.Dense, error) {
	m, ok := c.assays[name]
	if !ok {
		return nil, fmt.Errorf("rect: assay %q: %w", name, ErrAssayNotFound)
	}

	return m, nil
}

// AssayAt returns the i-th assay in insertion order.
//
// Errors: ErrIndexOutOfRange.
// Complexity: O(1).
func (c *Container) AssayAt(i int) (*matrix.Dense, error) {
	if i < 0 || i >= len(c.assayOrder) {
		return nil, fmt.Errorf("rect: assay index %d of %d: %w",
			i, len(c.assayOrder), ErrIndexOutOfRange)
	}

	return c.assays[c.assayOrder[i]], nil
}

// HasAssay reports whether an assay with the given name exists.
// Complexity: O(1).
func (c *Container) HasAssay(name string) bool {
	_, ok := c.assays[name]

	return ok
}

// shallow clones the container header: assay map and order, name slices.
// Matrices and frames are shared with the receiver.
// Complexity: O(assays).
func (c *Container) shallow() *Container {
	out := &Container{
		nr:         c.nr,
		nc:         c.nc,
		assays:     make(map[string]*matrix.Dense, len(c.assays)),
		assayOrder: append([]string(nil), c.assayOrder...),
		rowData:    c.rowData,
		colData:    c.colData,
		rowNames:   c.rowNames,
		colNames:   c.colNames,
	}
	for name, m := range c.assays {
		out.assays[name] = m
	}

	return out
}

// Clone returns a shallow copy of the container: new header, shared assay
// matrices and annotation frames.
// Complexity: O(assays).
func (c *Container) Clone() *Container { return c.shallow() }

// SetAssay returns a new container with m stored under name. Overwriting
// keeps the assay's original position; a new name appends. The extent must
// match the container.
//
// Errors: ErrNilAssay, ErrDimensionMismatch.
// Complexity: O(assays).
func (c *Container) SetAssay(name string, m *matrix.Dense) (*Container, error) {
	if m == nil {
		return nil, fmt.Errorf("rect: assay %q: %w", name, ErrNilAssay)
	}
	if m.Rows() != c.nr || m.Cols() != c.nc {
		return nil, fmt.Errorf("rect: assay %q is %dx%d, container is %dx%d: %w",
			name, m.Rows(), m.Cols(), c.nr, c.nc, ErrDimensionMismatch)
	}
	out := c.shallow()
	if _, exists := out.assays[name]; !exists {
		out.assayOrder = append(out.assayOrder, name)
	}
	out.assays[name] = m

	return out, nil
}

// RemoveAssay returns a new container without the named assay.
//
// Errors: ErrAssayNotFound.
// Complexity: O(assays).
func (c *Container) RemoveAssay(name string) (*Container, error) {
	if _, ok := c.assays[name]; !ok {
		return nil, fmt.Errorf("rect: assay %q: %w", name, ErrAssayNotFound)
	}
	out := c.shallow()
	delete(out.assays, name)
	for k, n := range out.assayOrder {
		if n == name {
			out.assayOrder = append(out.assayOrder[:k], out.assayOrder[k+1:]...)

			break
		}
	}

	return out, nil
}

// SetRowData returns a new container with the per-feature annotation replaced.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(assays).
func (c *Container) SetRowData(f *frame.Frame) (*Container, error) {
	if f.NumRows() != c.nr {
		return nil, fmt.Errorf("rect: rowData has %d rows, container has %d: %w",
			f.NumRows(), c.nr, ErrDimensionMismatch)
	}
	out := c.shallow()
	out.rowData = f

	return out, nil
}

// SetColData returns a new container with the per-sample annotation replaced.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(assays).
func (c *Container) SetColData(f *frame.Frame) (*Container, error) {
	if f.NumRows() != c.nc {
		return nil, fmt.Errorf("rect: colData has %d rows, container has %d columns: %w",
			f.NumRows(), c.nc, ErrDimensionMismatch)
	}
	out := c.shallow()
	out.colData = f

	return out, nil
}

// SetRowNames returns a new container with the feature labels replaced.
// Passing nil clears the labels.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(assays + nr).
func (c *Container) SetRowNames(names []string) (*Container, error) {
	if names != nil && len(names) != c.nr {
		return nil, fmt.Errorf("rect: %d row names for %d rows: %w",
			len(names), c.nr, ErrDimensionMismatch)
	}
	out := c.shallow()
	if names == nil {
		out.rowNames = nil
	} else {
		out.rowNames = append([]string(nil), names...)
	}

	return out, nil
}

// SetColNames returns a new container with the sample labels replaced.
// Passing nil clears the labels.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(assays + nc).
func (c *Container) SetColNames(names []string) (*Container, error) {
	if names != nil && len(names) != c.nc {
		return nil, fmt.Errorf("rect: %d col names for %d columns: %w",
			len(names), c.nc, ErrDimensionMismatch)
	}
	out := c.shallow()
	if names == nil {
		out.colNames = nil
	} else {
		out.colNames = append([]string(nil), names...)
	}

	return out, nil
}
