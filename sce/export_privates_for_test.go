// Package sce - test-only access to private state.
//
// The public API is validity-preserving by construction, so exercising the
// checker's failure paths requires low-level manipulation of internal state.
// These hooks are compiled only with the tests.

package sce

import (
	"github.com/cellscope/scex/frame"
	"github.com/cellscope/scex/matrix"
)

// CorruptRowInternalForTest swaps the hidden row bookkeeping table in place.
func (e *Experiment) CorruptRowInternalForTest(f *frame.Frame) { e.rowInternal = f }

// CorruptColInternalForTest swaps the hidden column bookkeeping table in place.
func (e *Experiment) CorruptColInternalForTest(f *frame.Frame) { e.colInternal = f }

// CorruptReducedDimForTest overwrites a stored embedding without validation.
func (e *Experiment) CorruptReducedDimForTest(name string, m *matrix.Dense) {
	e.rdims.set(name, m)
}

// CorruptAltExpForTest overwrites a stored alternative experiment without
// validation.
func (e *Experiment) CorruptAltExpForTest(name string, sub *Experiment) {
	e.altexps.set(name, sub)
}

// DeclareSpikeNameForTest declares a spike-in set name without creating its
// backing field.
func (e *Experiment) DeclareSpikeNameForTest(name string) {
	e.spikeNames = append(e.spikeNames, name)
}

// DeclareSizeFactorNameForTest declares a size-factor set name without
// creating its backing field.
func (e *Experiment) DeclareSizeFactorNameForTest(name string) {
	e.sfNames = append(e.sfNames, name)
}

// DropRegistriesForTest removes both registries, mimicking a corrupted
// current-version object.
func (e *Experiment) DropRegistriesForTest() {
	e.rdims = nil
	e.altexps = nil
}

// DuplicateReducedDimOrderForTest duplicates the first order entry to
// exercise the uniqueness check.
func (e *Experiment) DuplicateReducedDimOrderForTest() {
	if len(e.rdims.order) > 0 {
		e.rdims.order = append(e.rdims.order, e.rdims.order[0])
	}
}
