// Package sce - the alternative-experiment registry.
//
// An alternative experiment is a nested Experiment holding measurements for a
// disjoint feature set over the identical sample columns of its parent. The
// registry enforces column consistency on the way in (SetAltExp) and every
// parent mutator maintains it, so a get always reflects the parent's current
// column set and order; the validity checker re-verifies alignment as the
// last-resort net.
//
// Column annotation on the boundary is governed by KeepColData: by default a
// stored sub-experiment carries no colData of its own (stripped on set) and
// the parent's can be copied on per request on get — duplicated annotation is
// never stored twice, so it cannot drift out of sync.

package sce

import (
	"fmt"

	"github.com/cellscope/scex/frame"
)

// AEEntry is one named alternative experiment, used by the atomic bulk
// setter and the ordered snapshot getter.
type AEEntry struct {
	Name string
	Exp  *Experiment
}

// AltExp returns the alternative experiment stored under name, aligned to
// the parent's current column order. KeepColData(true) copies the parent's
// column annotation onto the returned sub-experiment.
//
// Errors: ErrNotFound.
// Complexity: O(1); O(assays) when attaching colData.
func (e *Experiment) AltExp(name string, opts ...AltExpOption) (*Experiment, error) {
	if e.altexps == nil {
		return nil, fmt.Errorf("sce: alternative experiment %q: %w", name, ErrNotFound)
	}
	sub, ok := e.altexps.m[name]
	if !ok {
		return nil, fmt.Errorf("sce: alternative experiment %q: %w", name, ErrNotFound)
	}

	return e.finishAltExpGet(sub, opts)
}

// AltExpAt returns the i-th alternative experiment in insertion order.
//
// Errors: ErrIndexOutOfRange.
// Complexity: O(1); O(assays) when attaching colData.
func (e *Experiment) AltExpAt(i int, opts ...AltExpOption) (*Experiment, error) {
	n := 0
	if e.altexps != nil {
		n = len(e.altexps.order)
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("sce: alternative experiment index %d of %d: %w",
			i, n, ErrIndexOutOfRange)
	}

	return e.finishAltExpGet(e.altexps.m[e.altexps.order[i]], opts)
}

// finishAltExpGet applies the colData compatibility mode to a stored sub.
func (e *Experiment) finishAltExpGet(sub *Experiment, opts []AltExpOption) (*Experiment, error) {
	cfg := gatherAEOptions(opts)
	if !cfg.withColData {
		return sub, nil
	}
	base, err := sub.base.SetColData(e.base.ColData())
	if err != nil {
		return nil, fmt.Errorf("sce: attaching parent colData: %w", err)
	}
	out := sub.shallow()
	out.base = base

	return out, nil
}

// AltExpNames returns the alternative-experiment names in insertion order.
// Complexity: O(entries).
func (e *Experiment) AltExpNames() []string {
	if e.altexps == nil {
		return []string{}
	}

	return append([]string(nil), e.altexps.order...)
}

// AltExps returns an ordered snapshot of the registry, honoring KeepColData.
// Complexity: O(entries).
func (e *Experiment) AltExps(opts ...AltExpOption) []AEEntry {
	if e.altexps == nil {
		return []AEEntry{}
	}
	out := make([]AEEntry, 0, len(e.altexps.order))
	for _, name := range e.altexps.order {
		sub, _ := e.finishAltExpGet(e.altexps.m[name], opts)
		out = append(out, AEEntry{Name: name, Exp: sub})
	}

	return out
}

// SetAltExp returns a new experiment with sub stored under name. A nil sub
// removes the entry. The sub-experiment must have the parent's column count
// and positionally identical column labels. By default the supplied sub's
// column annotation is stripped before storage; KeepColData(true) keeps it.
//
// Errors: ErrColumnMismatch (receiver untouched), *ValidityError.
// Complexity: O(entries + sub assays).
func (e *Experiment) SetAltExp(name string, sub *Experiment, opts ...AltExpOption) (*Experiment, error) {
	out := e.upgraded()
	if sub == nil {
		out.altexps.remove(name)
	} else {
		stored, err := e.prepareAltExp(name, sub, gatherAEOptions(opts))
		if err != nil {
			return nil, err
		}
		out.altexps.set(name, stored)
	}
	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}

// RemoveAltExp is SetAltExp(name, nil): it drops the entry.
func (e *Experiment) RemoveAltExp(name string) (*Experiment, error) {
	return e.SetAltExp(name, nil)
}

// SetAltExps atomically replaces the whole registry: either every entry
// validates or none are applied. Empty names are synthesized positionally.
//
// Errors: ErrColumnMismatch, ErrDuplicateName, *ValidityError — all with the
// receiver untouched.
// Complexity: O(entries).
func (e *Experiment) SetAltExps(entries []AEEntry, opts ...AltExpOption) (*Experiment, error) {
	names := make([]string, len(entries))
	for k, ent := range entries {
		names[k] = ent.Name
	}
	synth, err := synthesizeNames(names)
	if err != nil {
		return nil, err
	}
	cfg := gatherAEOptions(opts)

	// Validate and prepare every entry before applying any.
	prepared := make([]*Experiment, len(entries))
	for k, ent := range entries {
		if ent.Exp == nil {
			return nil, fmt.Errorf("sce: alternative experiment %q: %w", synth[k], ErrNilExperiment)
		}
		sub, err := e.prepareAltExp(synth[k], ent.Exp, cfg)
		if err != nil {
			return nil, err
		}
		prepared[k] = sub
	}
	out := e.upgraded()
	out.altexps = newAERegistry()
	for k := range entries {
		out.altexps.set(synth[k], prepared[k])
	}
	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}

// prepareAltExp checks column compatibility against the parent and applies
// the storage-side colData convention.
func (e *Experiment) prepareAltExp(name string, sub *Experiment, cfg aeConfig) (*Experiment, error) {
	if sub.NumCols() != e.NumCols() {
		return nil, fmt.Errorf("sce: alternative experiment %q has %d columns, parent has %d: %w",
			name, sub.NumCols(), e.NumCols(), ErrColumnMismatch)
	}
	if !namesEqual(sub.ColNames(), e.ColNames()) {
		return nil, fmt.Errorf("sce: alternative experiment %q: column labels disagree with parent: %w",
			name, ErrColumnMismatch)
	}
	if cfg.withColData {
		return sub, nil
	}
	// Strip the sub's column annotation so it cannot drift from the parent's.
	base, err := sub.base.SetColData(frame.MustNew(sub.NumCols()))
	if err != nil {
		return nil, err
	}
	stored := sub.shallow()
	stored.base = base

	return stored, nil
}

// namesEqual compares two label vectors positionally; nil equals only nil.
// Complexity: O(n).
func namesEqual(a, b []string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}
