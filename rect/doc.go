// Package rect implements the base rectangular container: a features ×
// samples extent carrying one or more named parallel assay matrices of
// identical shape, user-visible row/column annotation frames, and optional
// row/column name vectors.
//
// rect knows nothing about embeddings, alternative experiments or size
// factors — those live in package sce, which wraps a Container. What rect
// guarantees is the base-layer consistency every higher layer builds on:
//
//   - every assay matrix has exactly the container's extent;
//   - rowData has one row per feature, colData one row per sample;
//   - name vectors match their axis length;
//   - Subset slices assays, annotation frames and name vectors with the same
//     index lists, so nothing can drift.
//
// Containers are immutable by convention: every mutator returns a new
// *Container sharing unmodified assays and frames with the original
// (copy-on-write), and the original is never touched on failure.
//
// Errors are package-level sentinels matched via errors.Is:
//
//	ErrDimensionMismatch — assay/annotation/name extent disagrees with the container
//	ErrAssayNotFound     — requested assay name absent
//	ErrIndexOutOfRange   — numeric assay index beyond the assay list
//	ErrDuplicateName     — the same assay name supplied twice at construction
//	ErrNoExtent          — construction with neither an assay nor WithShape
package rect
