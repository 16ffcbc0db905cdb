// Package sce - the legacy spike-in flag store.
//
// Spike-in sets are named per-feature boolean indicators stored as namespaced
// Bools fields ("spike.<name>") in the row-internal metadata, with a
// declared-name list the validity checker verifies at every schema version —
// the row-side twin of the size-factor store, and deprecated for the same
// reason.

package sce

import (
	"fmt"

	"github.com/cellscope/scex/frame"
)

// SpikeInNames lists the declared spike-in set names in insertion order.
//
// Deprecated: model spike-ins as an alternative experiment instead.
// Complexity: O(sets).
func (e *Experiment) SpikeInNames() []string {
	return append([]string(nil), e.spikeNames...)
}

// IsSpikeIn returns a copy of the per-feature indicator vector declared
// under name.
//
// Deprecated: model spike-ins as an alternative experiment instead.
// Errors: ErrNotFound.
// Complexity: O(rows).
func (e *Experiment) IsSpikeIn(name string) ([]bool, error) {
	col, err := e.rowInternal.Col(spikeInPrefix + name)
	if err != nil {
		return nil, fmt.Errorf("sce: spike-in set %q: %w", name, ErrNotFound)
	}
	flags, ok := col.(frame.Bools)
	if !ok {
		return nil, fmt.Errorf("sce: spike-in set %q: field is not boolean: %w", name, ErrNotFound)
	}

	return append([]bool(nil), flags...), nil
}

// SetSpikeIn returns a new experiment with flags stored as the spike-in set
// name. The vector must have one value per feature row.
//
// Deprecated: model spike-ins as an alternative experiment instead.
// Errors: ErrDimensionMismatch (receiver untouched), *ValidityError.
// Complexity: O(rows).
func (e *Experiment) SetSpikeIn(name string, flags []bool) (*Experiment, error) {
	if len(flags) != e.NumRows() {
		return nil, fmt.Errorf("sce: spike-in set %q has %d flags, experiment has %d rows: %w",
			name, len(flags), e.NumRows(), ErrDimensionMismatch)
	}
	out := e.shallow()
	col := make(frame.Bools, len(flags))
	copy(col, flags)
	if err := out.rowInternal.Set(spikeInPrefix+name, col); err != nil {
		return nil, err
	}
	if !containsName(out.spikeNames, name) {
		out.spikeNames = append(out.spikeNames, name)
	}
	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}

// ClearSpikeIns returns a new experiment with every spike-in set and its
// backing internal field removed.
//
// Deprecated: model spike-ins as an alternative experiment instead.
// Complexity: O(sets * rows).
func (e *Experiment) ClearSpikeIns() (*Experiment, error) {
	out := e.shallow()
	for _, name := range out.spikeNames {
		out.rowInternal.Delete(spikeInPrefix + name)
	}
	out.spikeNames = nil
	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}
