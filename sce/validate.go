// Package sce - the validity checker.
//
// Purpose:
//   - Provide the single, canonical consistency predicate over the whole
//     Experiment, run at construction and after every mutator.
//   - Collect one diagnostic per independent violation, in invariant order —
//     never stop at the first problem.
//
// Version gating:
//   - The registry-existence checks (reduced dimensions, alternative
//     experiments) apply only at CurrentVersion and above, so legacy
//     deserialized objects pass without forced migration.
//   - The legacy spike-in / size-factor declaration checks run at EVERY
//     version. The asymmetry is inherited behavior and is pinned by tests;
//     do not unify the two sides.

package sce

import (
	"fmt"

	"github.com/cellscope/scex/frame"
)

// Validate is a pure predicate over the full object state. It returns nil
// when every structural invariant holds, or a *ValidityError carrying one
// ordered diagnostic per violation. Public mutators call it on every
// candidate they build; it only ever fires through low-level manipulation of
// internal state, since the public API is validity-preserving by
// construction.
//
// Complexity: O(registry entries + declared legacy sets + nested columns).
func (e *Experiment) Validate() error {
	if e == nil {
		return &ValidityError{Problems: []string{"experiment is nil"}}
	}
	var problems []string

	// 1. Internal metadata extents.
	if e.rowInternal == nil {
		problems = append(problems, "row internal metadata is missing")
	} else if e.rowInternal.NumRows() != e.NumRows() {
		problems = append(problems, fmt.Sprintf(
			"row internal metadata has %d rows, experiment has %d",
			e.rowInternal.NumRows(), e.NumRows()))
	}
	if e.colInternal == nil {
		problems = append(problems, "col internal metadata is missing")
	} else if e.colInternal.NumRows() != e.NumCols() {
		problems = append(problems, fmt.Sprintf(
			"col internal metadata has %d rows, experiment has %d columns",
			e.colInternal.NumRows(), e.NumCols()))
	}

	// 2. Registry existence — gated on the schema version.
	if e.version >= CurrentVersion {
		if e.rdims == nil {
			problems = append(problems, "reduced-dimension field missing from column internal metadata")
		}
		if e.altexps == nil {
			problems = append(problems, "alternative-experiment field missing from column internal metadata")
		}
	}

	// 3. Embedding extents: one row per experiment column.
	if e.rdims != nil {
		for _, name := range e.rdims.order {
			m := e.rdims.m[name]
			if m == nil {
				problems = append(problems, fmt.Sprintf("reduced dimension %q is nil", name))

				continue
			}
			if m.Rows() != e.NumCols() {
				problems = append(problems, fmt.Sprintf(
					"reduced dimension %q has %d rows, experiment has %d columns",
					name, m.Rows(), e.NumCols()))
			}
		}
	}

	// 4. Alternative experiments: identical column count and labels; zero
	//    rows are a legal placeholder.
	if e.altexps != nil {
		for _, name := range e.altexps.order {
			sub := e.altexps.m[name]
			if sub == nil {
				problems = append(problems, fmt.Sprintf("alternative experiment %q is nil", name))

				continue
			}
			if sub.NumCols() != e.NumCols() {
				problems = append(problems, fmt.Sprintf(
					"alternative experiment %q has %d columns, parent has %d",
					name, sub.NumCols(), e.NumCols()))
			} else if !namesEqual(sub.ColNames(), e.ColNames()) {
				problems = append(problems, fmt.Sprintf(
					"alternative experiment %q: column labels diverge from parent", name))
			}
		}
	}

	// 5. Legacy declarations — checked at every version.
	for _, name := range e.spikeNames {
		if !hasTypedCol[frame.Bools](e.rowInternal, spikeInPrefix+name) {
			problems = append(problems, fmt.Sprintf(
				"spike-in set %q has no boolean field in row internal metadata", name))
		}
	}
	for _, name := range e.sfNames {
		if !hasTypedCol[frame.Floats](e.colInternal, sizeFactorPrefix+name) {
			problems = append(problems, fmt.Sprintf(
				"size-factor set %q has no numeric field in col internal metadata", name))
		}
	}

	// 6. Name uniqueness within each registry and declared list.
	if e.rdims != nil {
		problems = appendDupProblems(problems, "reduced-dimension", e.rdims.order)
	}
	if e.altexps != nil {
		problems = appendDupProblems(problems, "alternative-experiment", e.altexps.order)
	}
	problems = appendDupProblems(problems, "spike-in", e.spikeNames)
	problems = appendDupProblems(problems, "size-factor", e.sfNames)

	if len(problems) > 0 {
		return &ValidityError{Problems: problems}
	}

	return nil
}

// hasTypedCol reports whether f holds a column of concrete type T under name.
// A nil frame has no columns.
func hasTypedCol[T frame.Column](f *frame.Frame, name string) bool {
	if f == nil {
		return false
	}
	col, err := f.Col(name)
	if err != nil {
		return false
	}
	_, ok := col.(T)

	return ok
}

// appendDupProblems adds one diagnostic per duplicated name in a registry
// order list.
// Complexity: O(n).
func appendDupProblems(problems []string, registry string, order []string) []string {
	seen := make(map[string]struct{}, len(order))
	for _, name := range order {
		if _, dup := seen[name]; dup {
			problems = append(problems, fmt.Sprintf(
				"%s registry declares %q more than once", registry, name))

			continue
		}
		seen[name] = struct{}{}
	}

	return problems
}
