// Package scex is an in-memory, validity-checked composite container for
// single-cell measurement data: a rectangular matrix-of-matrices (rows are
// features, columns are samples) kept consistent with per-column embeddings,
// nested alternative experiments, and legacy per-column size factors.
//
// 🚀 What is scex?
//
//	A small, zero-runtime-dependency library built around one idea: every
//	mutating operation returns a NEW object and re-runs a structural validity
//	check before handing it back, so downstream analysis code can never hold
//	a corrupted container.
//
// The module is organized into four subpackages:
//
//	matrix/ — dense row-major float64 matrices (assays, embeddings) with
//	          safe indexing and copying submatrix extraction
//	frame/  — ordered column tables with a locked row count (row/column
//	          annotation and hidden bookkeeping tables)
//	rect/   — the base rectangular container: named parallel assays plus
//	          row/column metadata, sliced together on subsetting
//	sce/    — the composite Experiment: reduced-dimension registry,
//	          alternative-experiment registry, assay-name conventions,
//	          legacy size-factor/spike-in stores, and the validity checker
//
// ✨ Why choose scex?
//
//   - Copy-on-write everywhere — mutators never touch the receiver; failed
//     operations leave the original observably identical
//   - Invariant preservation — subsetting, renaming and registry assignment
//     keep assays, embeddings and nested experiments mutually consistent
//   - Sentinel errors — every failure mode is a package-level sentinel,
//     matched with errors.Is
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII sketch of one Experiment:
//
//	          samples (columns) →
//	 features ┌────────────────────┐   embeddings: PCA (n×k), TSNE (n×2)
//	 (rows) ↓ │ counts / logcounts │   alt-exps:   "spike" (own rows,
//	          └────────────────────┘                same columns)
//
// Start with package sce: sce.New(...) or sce.FromRect(...).
package scex
