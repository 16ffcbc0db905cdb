// Package rect - index subsetting.
//
// Subset is the container's single slicing primitive: every assay, both
// annotation frames and both name vectors are cut with the same index lists,
// so no parallel structure can drift. Higher layers (package sce) resolve
// name/boolean selectors into index lists and delegate here.

package rect

import (
	"fmt"

	"github.com/cellscope/scex/matrix"
)

// Subset returns a new container restricted to the selected rows and columns,
// in index order. Indices may repeat and reorder freely; a nil slice selects
// the full axis in order.
//
// Errors: ErrIndexOutOfRange (via the matrix/frame layers) on any bad index.
// Complexity: O(assays * |rows| * |cols| + annotation columns * |axis|).
func (c *Container) Subset(rowIdx, colIdx []int) (*Container, error) {
	// Validate axis indices once up front so the error does not depend on
	// which assay or frame happens to be sliced first.
	if err := checkAxis("row", rowIdx, c.nr); err != nil {
		return nil, err
	}
	if err := checkAxis("col", colIdx, c.nc); err != nil {
		return nil, err
	}

	nr, nc := c.nr, c.nc
	if rowIdx != nil {
		nr = len(rowIdx)
	}
	if colIdx != nil {
		nc = len(colIdx)
	}
	out := &Container{
		nr:         nr,
		nc:         nc,
		assays:     make(map[string]*matrix.Dense, len(c.assays)),
		assayOrder: append([]string(nil), c.assayOrder...),
	}

	// Slice every assay with the identical index lists.
	for _, name := range c.assayOrder {
		sub, err := c.assays[name].Induced(rowIdx, colIdx)
		if err != nil {
			return nil, fmt.Errorf("rect: subsetting assay %q: %w", name, err)
		}
		out.assays[name] = sub
	}

	// Slice annotation frames by their own axis.
	var err error
	if out.rowData, err = c.rowData.Take(rowIdx); err != nil {
		return nil, fmt.Errorf("rect: subsetting rowData: %w", err)
	}
	if out.colData, err = c.colData.Take(colIdx); err != nil {
		return nil, fmt.Errorf("rect: subsetting colData: %w", err)
	}

	// Slice name vectors; nil stays nil.
	out.rowNames = takeNames(c.rowNames, rowIdx)
	out.colNames = takeNames(c.colNames, colIdx)

	return out, nil
}

// checkAxis validates an index list against an axis length.
// Complexity: O(len(idx)).
func checkAxis(axis string, idx []int, n int) error {
	for _, i := range idx {
		if i < 0 || i >= n {
			return fmt.Errorf("rect: %s index %d of %d: %w", axis, i, n, ErrIndexOutOfRange)
		}
	}

	return nil
}

// takeNames slices a name vector by idx; nil names and nil idx pass through.
// Indices are assumed pre-validated by checkAxis.
// Complexity: O(len(idx)).
func takeNames(names []string, idx []int) []string {
	if names == nil {
		return nil
	}
	if idx == nil {
		return names
	}
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = names[i]
	}

	return out
}
