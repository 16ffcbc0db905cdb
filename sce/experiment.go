// Package sce - construction, coercion and the delegating base surface.
//
// Control flow of every mutator in this package:
//  1. reject contract violations immediately (dimension/column mismatch,
//     missing names) without building anything;
//  2. assemble a candidate as a shallow clone plus one change;
//  3. run the validity checker on the candidate;
//  4. return the candidate, or the error with the receiver untouched.

package sce

import (
	"fmt"

	"github.com/cellscope/scex/frame"
	"github.com/cellscope/scex/matrix"
	"github.com/cellscope/scex/rect"
)

// New assembles an Experiment from assay matrices, optional annotation and
// dimnames, and optional initial embeddings and alternative experiments.
// Construction always ends with a validity-checker pass.
//
// Errors: rect construction errors, ErrDimensionMismatch / ErrColumnMismatch
// for seeded registries, *ValidityError as the last-resort net.
// Complexity: O(inputs).
func New(opts ...Option) (*Experiment, error) {
	b := &builder{version: CurrentVersion}
	for _, opt := range opts {
		opt(b)
	}

	base, err := rect.New(b.rectOpts...)
	if err != nil {
		return nil, err
	}
	e, err := wrap(base, b.version)
	if err != nil {
		return nil, err
	}

	// Seed the registries through the validated setters so every invariant
	// holds entry by entry.
	for k, name := range b.rdNames {
		if e, err = e.SetReducedDim(name, b.rdMats[k]); err != nil {
			return nil, err
		}
	}
	for k, name := range b.aeNames {
		if e, err = e.SetAltExp(name, b.aeSubs[k]); err != nil {
			return nil, err
		}
	}

	if verr := e.Validate(); verr != nil {
		return nil, verr
	}

	return e, nil
}

// FromRect coerces an existing base container into an Experiment with empty
// embedding and alternative-experiment registries, at the current version.
//
// Errors: ErrNilExperiment on nil input, *ValidityError.
// Complexity: O(1) beside the frame allocations.
func FromRect(c *rect.Container) (*Experiment, error) {
	if c == nil {
		return nil, fmt.Errorf("sce: FromRect: nil container: %w", ErrNilExperiment)
	}
	e, err := wrap(c, CurrentVersion)
	if err != nil {
		return nil, err
	}
	if verr := e.Validate(); verr != nil {
		return nil, verr
	}

	return e, nil
}

// wrap builds the composite around a base container. Registries exist only
// at CurrentVersion and above; legacy versions start without them.
func wrap(base *rect.Container, version int) (*Experiment, error) {
	e := &Experiment{
		base:        base,
		rowInternal: frame.MustNew(base.NumRows()),
		colInternal: frame.MustNew(base.NumCols()),
		version:     version,
	}
	if version >= CurrentVersion {
		e.rdims = newRDRegistry()
		e.altexps = newAERegistry()
	}

	return e, nil
}

// shallow clones the experiment header. Base container, internal frames and
// registry headers are copied; assay matrices, columns, embeddings and nested
// experiments are shared (immutable by convention).
// Complexity: O(assays + registry entries + internal columns).
func (e *Experiment) shallow() *Experiment {
	return &Experiment{
		base:        e.base.Clone(),
		rowInternal: e.rowInternal.Clone(),
		colInternal: e.colInternal.Clone(),
		rdims:       e.rdims.clone(),
		altexps:     e.altexps.clone(),
		spikeNames:  append([]string(nil), e.spikeNames...),
		sfNames:     append([]string(nil), e.sfNames...),
		version:     e.version,
	}
}

// upgraded returns a shallow clone lazily lifted to the current schema:
// missing registries are initialized empty and the version tag is bumped.
// Legacy objects are upgraded, never rejected.
func (e *Experiment) upgraded() *Experiment {
	out := e.shallow()
	if out.rdims == nil {
		out.rdims = newRDRegistry()
	}
	if out.altexps == nil {
		out.altexps = newAERegistry()
	}
	if out.version < CurrentVersion {
		out.version = CurrentVersion
	}

	return out
}

// Version returns the schema version tag.
// Complexity: O(1).
func (e *Experiment) Version() int { return e.version }

// Base returns the underlying rectangular container. Treat it as read-only.
// Complexity: O(1).
func (e *Experiment) Base() *rect.Container { return e.base }

// NumRows returns the feature count.
func (e *Experiment) NumRows() int { return e.base.NumRows() }

// NumCols returns the sample count.
func (e *Experiment) NumCols() int { return e.base.NumCols() }

// RowNames returns a copy of the feature labels, or nil when unnamed.
func (e *Experiment) RowNames() []string { return e.base.RowNames() }

// ColNames returns a copy of the sample labels, or nil when unnamed.
func (e *Experiment) ColNames() []string { return e.base.ColNames() }

// RowData returns the user-visible per-feature annotation frame.
func (e *Experiment) RowData() *frame.Frame { return e.base.RowData() }

// ColData returns the user-visible per-sample annotation frame.
func (e *Experiment) ColData() *frame.Frame { return e.base.ColData() }

// AssayNames returns the assay names in insertion order.
func (e *Experiment) AssayNames() []string { return e.base.AssayNames() }

// Assay returns the assay stored under name.
// Errors: rect.ErrAssayNotFound.
func (e *Experiment) Assay(name string) (*matrix.Dense, error) { return e.base.Assay(name) }

// AssayAt returns the i-th assay in insertion order.
// Errors: rect.ErrIndexOutOfRange.
func (e *Experiment) AssayAt(i int) (*matrix.Dense, error) { return e.base.AssayAt(i) }

// HasAssay reports whether an assay with the given name exists.
func (e *Experiment) HasAssay(name string) bool { return e.base.HasAssay(name) }

// SetAssay returns a new experiment with m stored under name (extent-checked,
// overwrite keeps position), validated before return.
//
// Errors: rect.ErrDimensionMismatch, *ValidityError.
func (e *Experiment) SetAssay(name string, m *matrix.Dense) (*Experiment, error) {
	base, err := e.base.SetAssay(name, m)
	if err != nil {
		return nil, err
	}

	return e.withBase(base)
}

// RemoveAssay returns a new experiment without the named assay.
//
// Errors: rect.ErrAssayNotFound, *ValidityError.
func (e *Experiment) RemoveAssay(name string) (*Experiment, error) {
	base, err := e.base.RemoveAssay(name)
	if err != nil {
		return nil, err
	}

	return e.withBase(base)
}

// SetRowData returns a new experiment with the per-feature annotation replaced.
//
// Errors: rect.ErrDimensionMismatch, *ValidityError.
func (e *Experiment) SetRowData(f *frame.Frame) (*Experiment, error) {
	base, err := e.base.SetRowData(f)
	if err != nil {
		return nil, err
	}

	return e.withBase(base)
}

// SetColData returns a new experiment with the per-sample annotation replaced.
//
// Errors: rect.ErrDimensionMismatch, *ValidityError.
func (e *Experiment) SetColData(f *frame.Frame) (*Experiment, error) {
	base, err := e.base.SetColData(f)
	if err != nil {
		return nil, err
	}

	return e.withBase(base)
}

// withBase wraps a replaced base container into a validated candidate.
func (e *Experiment) withBase(base *rect.Container) (*Experiment, error) {
	out := e.shallow()
	out.base = base
	if verr := out.Validate(); verr != nil {
		return nil, verr
	}

	return out, nil
}
