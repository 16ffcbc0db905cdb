// Package sce: sentinel error set and the aggregate ValidityError.
// All operations return these sentinels (possibly wrapped with context via
// fmt.Errorf and %w) and tests check them via errors.Is.

package sce

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDimensionMismatch indicates a supplied structure (assay, embedding,
	// size-factor vector, grouping vector, mask) whose row/column count
	// disagrees with the experiment.
	ErrDimensionMismatch = errors.New("sce: dimension mismatch")

	// ErrColumnMismatch indicates an alternative experiment whose columns
	// disagree with the parent in count, identity or order.
	ErrColumnMismatch = errors.New("sce: column mismatch")

	// ErrNotFound indicates a requested name absent from a registry
	// (embedding, alternative experiment, size-factor set, assay selector).
	ErrNotFound = errors.New("sce: not found")

	// ErrIndexOutOfRange indicates a numeric index beyond a registry or axis.
	ErrIndexOutOfRange = errors.New("sce: index out of range")

	// ErrDuplicateName indicates two registry entries resolving to one name.
	ErrDuplicateName = errors.New("sce: duplicate name")

	// ErrAssayNotFound indicates a reserved-name assay getter found no assay
	// stored under its reserved name.
	ErrAssayNotFound = errors.New("sce: assay not found")

	// ErrNilExperiment indicates a nil *Experiment where one is required.
	ErrNilExperiment = errors.New("sce: nil experiment")

	// ErrInvalid is the sentinel behind *ValidityError: one or more structural
	// invariants are violated. Raised only when a built state fails global
	// consistency; public mutators are validity-preserving by construction.
	ErrInvalid = errors.New("sce: invalid experiment")
)

// ValidityError aggregates every violated invariant found by Validate, in
// check order — at least one message per independent violation, never just
// the first. It unwraps to ErrInvalid so errors.Is(err, ErrInvalid) matches.
type ValidityError struct {
	// Problems holds one human-readable diagnostic per violation, ordered.
	Problems []string
}

// Error renders all diagnostics on one line, semicolon-separated.
func (e *ValidityError) Error() string {
	return fmt.Sprintf("sce: invalid experiment: %s", strings.Join(e.Problems, "; "))
}

// Unwrap ties the aggregate to the ErrInvalid sentinel.
func (e *ValidityError) Unwrap() error { return ErrInvalid }
