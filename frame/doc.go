// Package frame implements an ordered column table with a locked row count —
// the metadata-table abstraction behind per-feature (row) and per-sample
// (column) annotation, and behind the hidden bookkeeping tables of package
// sce.
//
// A Frame is a sequence of named Columns, all of identical length. Column
// order is insertion order and is preserved by overwrite, subsetting and
// cloning. Row subsetting (Take) slices every column by the same index list,
// so parallel annotations can never drift apart.
//
// Columns are immutable by convention: a Frame clone shares column values
// with the original, and mutators produce new Columns rather than writing
// through shared slices.
//
// Errors are package-level sentinels matched via errors.Is:
//
//	ErrColumnNotFound — requested column name absent
//	ErrLengthMismatch — column length disagrees with the frame's row count
//	ErrIndexOutOfRange — row index outside [0, NumRows)
package frame
