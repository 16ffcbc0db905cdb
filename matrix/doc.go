// Package matrix provides the dense numeric matrices used throughout scex:
// assay matrices (features × samples) and per-column embedding matrices
// (samples × dimensions).
//
// Design:
//
//   - Dense is a row-major float64 buffer with the explicit index formula
//     i*cols + j; all public indexers return errors instead of panicking.
//   - Zero-row and zero-column shapes are legal: row-less alternative
//     experiments carry 0×n assays as placeholders.
//   - A numeric policy rejects NaN and ±Inf at ingestion (FromRows) and on
//     Set, so every stored value is finite.
//   - Induced extracts a copying submatrix by row/column index lists; it is
//     the primitive behind container subsetting.
//
// Errors are package-level sentinels (errors.go) matched via errors.Is:
//
//	ErrInvalidDimensions — negative shape requested
//	ErrOutOfRange        — row/column index outside bounds
//	ErrDimensionMismatch — ragged input or incompatible operand shapes
//	ErrNaNInf            — non-finite value where finite is required
//	ErrNilMatrix         — nil *Dense receiver or argument
package matrix
