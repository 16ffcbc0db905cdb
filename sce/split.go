// Package sce - SplitAltExps: the registry's compound operation.
//
// SplitAltExps partitions the features of an experiment by a per-row label
// vector, moving every non-main group's assay rows (with their row annotation
// and row-internal metadata) out of the primary container and into the
// alternative-experiment registry. Row order is preserved within each group
// and assay names stay intact per group.

package sce

import "fmt"

// SplitAltExps returns a new experiment whose primary container holds only
// the rows labelled mainGroup (all unlabeled rows when mainGroup is empty),
// with one alternative experiment per other distinct label, in first-
// appearance order. Each alternative experiment carries the group's rows of
// every assay, its rowData and row-internal metadata, and starts with empty
// registries of its own.
//
// Errors: ErrDimensionMismatch when len(groups) != NumRows(), *ValidityError.
// Complexity: O(assays * nr * nc).
func (e *Experiment) SplitAltExps(groups []string, mainGroup string) (*Experiment, error) {
	if len(groups) != e.NumRows() {
		return nil, fmt.Errorf("sce: grouping vector has %d labels, experiment has %d rows: %w",
			len(groups), e.NumRows(), ErrDimensionMismatch)
	}

	// Partition row indices by label, preserving row order within groups and
	// first-appearance order across groups.
	var mainIdx []int
	var labels []string
	byLabel := make(map[string][]int)
	for i, g := range groups {
		if g == mainGroup {
			mainIdx = append(mainIdx, i)

			continue
		}
		if _, seen := byLabel[g]; !seen {
			labels = append(labels, g)
		}
		byLabel[g] = append(byLabel[g], i)
	}
	if mainIdx == nil {
		mainIdx = []int{}
	}

	// The primary keeps only the main rows; embeddings, existing alternative
	// experiments and column metadata are untouched by a row selection.
	out, err := e.subsetIdx(mainIdx, nil)
	if err != nil {
		return nil, err
	}

	for _, label := range labels {
		group, err := e.subsetIdx(byLabel[label], nil)
		if err != nil {
			return nil, fmt.Errorf("sce: splitting group %q: %w", label, err)
		}
		// Each group becomes a plain nested experiment: its own rows and row
		// metadata, the parent's columns, fresh registries.
		sub := group.shallow()
		sub.rdims = newRDRegistry()
		sub.altexps = newAERegistry()
		if out, err = out.SetAltExp(label, sub); err != nil {
			return nil, fmt.Errorf("sce: storing group %q: %w", label, err)
		}
	}

	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}
