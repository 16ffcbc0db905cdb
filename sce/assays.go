// Package sce - the assay-name convention layer.
//
// Five reserved names — counts, normcounts, logcounts, cpm, tpm — each get a
// typed getter and setter resolving to the base assay list by name. These are
// pure aliases: no separate storage, no extra state.

package sce

import (
	"errors"
	"fmt"

	"github.com/cellscope/scex/matrix"
	"github.com/cellscope/scex/rect"
)

// reservedAssay resolves one reserved name, translating the base container's
// miss into the convention-layer sentinel.
func (e *Experiment) reservedAssay(name string) (*matrix.Dense, error) {
	m, err := e.base.Assay(name)
	if err != nil {
		if errors.Is(err, rect.ErrAssayNotFound) {
			return nil, fmt.Errorf("sce: reserved assay %q: %w", name, ErrAssayNotFound)
		}

		return nil, err
	}

	return m, nil
}

// Counts returns the raw count assay.
// Errors: ErrAssayNotFound.
func (e *Experiment) Counts() (*matrix.Dense, error) { return e.reservedAssay(AssayCounts) }

// SetCounts stores m under the reserved name "counts" (extent-checked).
func (e *Experiment) SetCounts(m *matrix.Dense) (*Experiment, error) {
	return e.SetAssay(AssayCounts, m)
}

// Normcounts returns the normalized count assay.
// Errors: ErrAssayNotFound.
func (e *Experiment) Normcounts() (*matrix.Dense, error) { return e.reservedAssay(AssayNormcounts) }

// SetNormcounts stores m under the reserved name "normcounts" (extent-checked).
func (e *Experiment) SetNormcounts(m *matrix.Dense) (*Experiment, error) {
	return e.SetAssay(AssayNormcounts, m)
}

// Logcounts returns the log-transformed count assay.
// Errors: ErrAssayNotFound.
func (e *Experiment) Logcounts() (*matrix.Dense, error) { return e.reservedAssay(AssayLogcounts) }

// SetLogcounts stores m under the reserved name "logcounts" (extent-checked).
func (e *Experiment) SetLogcounts(m *matrix.Dense) (*Experiment, error) {
	return e.SetAssay(AssayLogcounts, m)
}

// CPM returns the counts-per-million assay.
// Errors: ErrAssayNotFound.
func (e *Experiment) CPM() (*matrix.Dense, error) { return e.reservedAssay(AssayCPM) }

// SetCPM stores m under the reserved name "cpm" (extent-checked).
func (e *Experiment) SetCPM(m *matrix.Dense) (*Experiment, error) {
	return e.SetAssay(AssayCPM, m)
}

// TPM returns the transcripts-per-million assay.
// Errors: ErrAssayNotFound.
func (e *Experiment) TPM() (*matrix.Dense, error) { return e.reservedAssay(AssayTPM) }

// SetTPM stores m under the reserved name "tpm" (extent-checked).
func (e *Experiment) SetTPM(m *matrix.Dense) (*Experiment, error) {
	return e.SetAssay(AssayTPM, m)
}
