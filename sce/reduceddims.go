// Package sce - the reduced-dimension registry.
//
// Embeddings are per-sample coordinate matrices: one row per experiment
// column, any number of coordinate columns (dimensionality is independent
// per embedding). The registry is named and insertion-ordered; overwrite
// preserves position; setting nil removes. Every mutator re-validates the
// resulting experiment before returning it.

package sce

import (
	"fmt"

	"github.com/cellscope/scex/matrix"
)

// RDEntry is one named embedding, used by the atomic bulk setter and the
// ordered snapshot getter.
type RDEntry struct {
	Name string
	Mat  *matrix.Dense
}

// ReducedDim returns the embedding stored under name.
//
// Errors: ErrNotFound.
// Complexity: O(1).
func (e *Experiment) ReducedDim(name string) (*matrix.Dense, error) {
	if e.rdims == nil {
		return nil, fmt.Errorf("sce: reduced dimension %q: %w", name, ErrNotFound)
	}
	m, ok := e.rdims.m[name]
	if !ok {
		return nil, fmt.Errorf("sce: reduced dimension %q: %w", name, ErrNotFound)
	}

	return m, nil
}

// ReducedDimAt returns the i-th embedding in insertion order.
//
// Errors: ErrIndexOutOfRange.
// Complexity: O(1).
func (e *Experiment) ReducedDimAt(i int) (*matrix.Dense, error) {
	n := 0
	if e.rdims != nil {
		n = len(e.rdims.order)
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("sce: reduced dimension index %d of %d: %w",
			i, n, ErrIndexOutOfRange)
	}

	return e.rdims.m[e.rdims.order[i]], nil
}

// ReducedDimNames returns the embedding names in insertion order.
// Complexity: O(entries).
func (e *Experiment) ReducedDimNames() []string {
	if e.rdims == nil {
		return []string{}
	}

	return append([]string(nil), e.rdims.order...)
}

// ReducedDims returns an ordered snapshot of the registry. Matrices are the
// stored values (immutable by convention), entries are fresh.
// Complexity: O(entries).
func (e *Experiment) ReducedDims() []RDEntry {
	if e.rdims == nil {
		return []RDEntry{}
	}
	out := make([]RDEntry, 0, len(e.rdims.order))
	for _, name := range e.rdims.order {
		out = append(out, RDEntry{Name: name, Mat: e.rdims.m[name]})
	}

	return out
}

// SetReducedDim returns a new experiment with m stored under name. A nil m
// removes the entry. New names append; overwriting keeps the original
// position. The embedding must have one row per experiment column.
//
// Errors: ErrDimensionMismatch (receiver untouched), *ValidityError.
// Complexity: O(entries).
func (e *Experiment) SetReducedDim(name string, m *matrix.Dense) (*Experiment, error) {
	if m != nil && m.Rows() != e.NumCols() {
		return nil, fmt.Errorf("sce: reduced dimension %q has %d rows, experiment has %d columns: %w",
			name, m.Rows(), e.NumCols(), ErrDimensionMismatch)
	}
	out := e.upgraded()
	if m == nil {
		out.rdims.remove(name)
	} else {
		out.rdims.set(name, m)
	}
	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}

// RemoveReducedDim is SetReducedDim(name, nil): it drops the entry.
// Removing an absent name is a no-op, matching registry removal semantics.
func (e *Experiment) RemoveReducedDim(name string) (*Experiment, error) {
	return e.SetReducedDim(name, nil)
}

// SetReducedDims atomically replaces the whole registry: either every entry
// validates or none are applied. Entries with empty names receive synthetic
// positional names ("unnamed1", "unnamed2", ...).
//
// Errors: ErrDimensionMismatch, ErrDuplicateName, *ValidityError — all with
// the receiver untouched.
// Complexity: O(entries).
func (e *Experiment) SetReducedDims(entries []RDEntry) (*Experiment, error) {
	names, err := synthesizeNames(rdEntryNames(entries))
	if err != nil {
		return nil, err
	}
	// Validate every entry before applying any.
	for k, ent := range entries {
		if ent.Mat == nil {
			return nil, fmt.Errorf("sce: reduced dimension %q: nil matrix: %w",
				names[k], ErrDimensionMismatch)
		}
		if ent.Mat.Rows() != e.NumCols() {
			return nil, fmt.Errorf("sce: reduced dimension %q has %d rows, experiment has %d columns: %w",
				names[k], ent.Mat.Rows(), e.NumCols(), ErrDimensionMismatch)
		}
	}
	out := e.upgraded()
	out.rdims = newRDRegistry()
	for k, ent := range entries {
		out.rdims.set(names[k], ent.Mat)
	}
	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}

func rdEntryNames(entries []RDEntry) []string {
	names := make([]string, len(entries))
	for k, ent := range entries {
		names[k] = ent.Name
	}

	return names
}

// synthesizeNames fills empty names with positional "unnamed<k>" labels and
// rejects duplicates after synthesis.
//
// Errors: ErrDuplicateName.
// Complexity: O(n).
func synthesizeNames(names []string) ([]string, error) {
	out := make([]string, len(names))
	seen := make(map[string]struct{}, len(names))
	for k, name := range names {
		if name == "" {
			name = fmt.Sprintf("%s%d", unnamedPrefix, k+1)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("sce: entry %d resolves to %q: %w", k, name, ErrDuplicateName)
		}
		seen[name] = struct{}{}
		out[k] = name
	}

	return out, nil
}
