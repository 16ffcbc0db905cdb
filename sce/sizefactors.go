// Package sce - the legacy size-factor store.
//
// Size factors are named per-sample scalar vectors stored as namespaced
// Floats fields ("sizefactor.<name>") in the column-internal metadata, with a
// declared-name list the validity checker verifies at every schema version.
//
// The whole surface is deprecated: keep size factors as ordinary column
// annotation instead. Behavior is preserved bit-for-bit for callers that
// still depend on it, including the best-effort single-set fallback of the
// no-argument getter.

package sce

import (
	"fmt"

	"github.com/cellscope/scex/frame"
)

// SizeFactorNames lists the declared size-factor set names in insertion order.
//
// Deprecated: store size factors as ordinary column annotation.
// Complexity: O(sets).
func (e *Experiment) SizeFactorNames() []string {
	return append([]string(nil), e.sfNames...)
}

// SizeFactorsFor returns a copy of the size-factor vector declared under name.
//
// Deprecated: store size factors as ordinary column annotation.
// Errors: ErrNotFound.
// Complexity: O(columns).
func (e *Experiment) SizeFactorsFor(name string) ([]float64, error) {
	col, err := e.colInternal.Col(sizeFactorPrefix + name)
	if err != nil {
		return nil, fmt.Errorf("sce: size factors %q: %w", name, ErrNotFound)
	}
	vals, ok := col.(frame.Floats)
	if !ok {
		return nil, fmt.Errorf("sce: size factors %q: field is not numeric: %w", name, ErrNotFound)
	}

	return append([]float64(nil), vals...), nil
}

// SizeFactors resolves the reserved default set. When the default is absent
// but exactly one named set is declared, that set is returned as a
// best-effort compatibility fallback instead of failing.
//
// Deprecated: store size factors as ordinary column annotation.
// Errors: ErrNotFound when neither the default nor a unique fallback exists.
// Complexity: O(columns).
func (e *Experiment) SizeFactors() ([]float64, error) {
	if v, err := e.SizeFactorsFor(DefaultSizeFactorSet); err == nil {
		return v, nil
	}
	if len(e.sfNames) == 1 {
		return e.SizeFactorsFor(e.sfNames[0])
	}

	return nil, fmt.Errorf("sce: size factors: no default set among %d declared: %w",
		len(e.sfNames), ErrNotFound)
}

// SetSizeFactorsFor returns a new experiment with vec stored as the
// size-factor set name. The vector must have one value per sample column.
//
// Deprecated: store size factors as ordinary column annotation.
// Errors: ErrDimensionMismatch (receiver untouched), *ValidityError.
// Complexity: O(columns).
func (e *Experiment) SetSizeFactorsFor(name string, vec []float64) (*Experiment, error) {
	if len(vec) != e.NumCols() {
		return nil, fmt.Errorf("sce: size factors %q have %d values, experiment has %d columns: %w",
			name, len(vec), e.NumCols(), ErrDimensionMismatch)
	}
	out := e.shallow()
	col := make(frame.Floats, len(vec))
	copy(col, vec)
	if err := out.colInternal.Set(sizeFactorPrefix+name, col); err != nil {
		return nil, err
	}
	if !containsName(out.sfNames, name) {
		out.sfNames = append(out.sfNames, name)
	}
	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}

// SetSizeFactors stores vec under the reserved default set name.
//
// Deprecated: store size factors as ordinary column annotation.
func (e *Experiment) SetSizeFactors(vec []float64) (*Experiment, error) {
	return e.SetSizeFactorsFor(DefaultSizeFactorSet, vec)
}

// ClearSizeFactors returns a new experiment with every size-factor set and
// its backing internal field removed.
//
// Deprecated: store size factors as ordinary column annotation.
// Complexity: O(sets * columns).
func (e *Experiment) ClearSizeFactors() (*Experiment, error) {
	out := e.shallow()
	for _, name := range out.sfNames {
		out.colInternal.Delete(sizeFactorPrefix + name)
	}
	out.sfNames = nil
	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}

// containsName reports whether a declared-name list already holds name.
// Complexity: O(n).
func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
