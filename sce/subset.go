// Package sce - subsetting and renaming.
//
// Subset is the invariant-preservation workhorse: one pair of resolved index
// lists is pushed through the base container, both internal metadata tables,
// every embedding (sliced by the column selection only — embedding rows ARE
// parent columns) and every alternative experiment (columns only; their rows
// are a disjoint feature set and stay untouched). Renaming columns propagates
// into every nested experiment, so sub-container labels can never diverge
// from the parent's.

package sce

import "fmt"

// Subset returns a new experiment restricted to the selected rows and
// columns, with all parallel structures sliced consistently and the validity
// checker passed. Nil selectors mean All().
//
// Errors: ErrIndexOutOfRange / ErrNotFound / ErrDimensionMismatch from
// selector resolution, *ValidityError as the last-resort net.
// Complexity: O(everything touched by the selection).
func (e *Experiment) Subset(rows, cols Selector) (*Experiment, error) {
	if rows == nil {
		rows = All()
	}
	if cols == nil {
		cols = All()
	}
	rowIdx, err := rows.resolve(e.NumRows(), e.base.RowNames())
	if err != nil {
		return nil, fmt.Errorf("sce: row selector: %w", err)
	}
	colIdx, err := cols.resolve(e.NumCols(), e.base.ColNames())
	if err != nil {
		return nil, fmt.Errorf("sce: col selector: %w", err)
	}

	out, err := e.subsetIdx(rowIdx, colIdx)
	if err != nil {
		return nil, err
	}
	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}

// subsetIdx slices by raw index lists (nil = full axis). It builds the
// candidate without validating, so compound operations can batch further
// edits before the final check.
func (e *Experiment) subsetIdx(rowIdx, colIdx []int) (*Experiment, error) {
	base, err := e.base.Subset(rowIdx, colIdx)
	if err != nil {
		return nil, err
	}
	out := e.shallow()
	out.base = base

	// Internal metadata tables follow their own axis.
	if out.rowInternal, err = e.rowInternal.Take(rowIdx); err != nil {
		return nil, fmt.Errorf("sce: subsetting row internal metadata: %w", err)
	}
	if out.colInternal, err = e.colInternal.Take(colIdx); err != nil {
		return nil, fmt.Errorf("sce: subsetting col internal metadata: %w", err)
	}

	// Column selection cuts embeddings (their rows are the parent's columns)
	// and every alternative experiment. Full-axis selection shares storage.
	if colIdx != nil {
		if e.rdims != nil {
			for _, name := range out.rdims.order {
				sub, err := e.rdims.m[name].Induced(colIdx, nil)
				if err != nil {
					return nil, fmt.Errorf("sce: subsetting reduced dimension %q: %w", name, err)
				}
				out.rdims.m[name] = sub
			}
		}
		if e.altexps != nil {
			for _, name := range out.altexps.order {
				sub, err := e.altexps.m[name].subsetIdx(nil, colIdx)
				if err != nil {
					return nil, fmt.Errorf("sce: subsetting alternative experiment %q: %w", name, err)
				}
				out.altexps.m[name] = sub
			}
		}
	}

	return out, nil
}

// SetColNames returns a new experiment with the sample labels replaced and
// propagated into every alternative experiment, recursively — nested column
// labels never diverge from the parent's. Passing nil clears labels
// everywhere.
//
// Errors: ErrDimensionMismatch, *ValidityError.
// Complexity: O(nc * nested experiments).
func (e *Experiment) SetColNames(names []string) (*Experiment, error) {
	if names != nil && len(names) != e.NumCols() {
		return nil, fmt.Errorf("sce: %d column names for %d columns: %w",
			len(names), e.NumCols(), ErrDimensionMismatch)
	}
	out, err := e.renameCols(names)
	if err != nil {
		return nil, err
	}
	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}

// renameCols applies new column labels to the base and recurses into the
// alternative-experiment registry without intermediate validation.
func (e *Experiment) renameCols(names []string) (*Experiment, error) {
	base, err := e.base.SetColNames(names)
	if err != nil {
		return nil, err
	}
	out := e.shallow()
	out.base = base
	if out.altexps != nil {
		for _, name := range out.altexps.order {
			sub, err := out.altexps.m[name].renameCols(names)
			if err != nil {
				return nil, fmt.Errorf("sce: renaming columns of alternative experiment %q: %w", name, err)
			}
			out.altexps.m[name] = sub
		}
	}

	return out, nil
}

// SetRowNames returns a new experiment with the feature labels replaced.
// Alternative experiments keep their own feature labels — their rows are a
// disjoint set.
//
// Errors: ErrDimensionMismatch, *ValidityError.
// Complexity: O(nr).
func (e *Experiment) SetRowNames(names []string) (*Experiment, error) {
	base, err := e.base.SetRowNames(names)
	if err != nil {
		return nil, err
	}

	return e.withBase(base)
}
