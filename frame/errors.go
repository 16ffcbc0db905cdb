// Package frame: sentinel error set, matched by callers via errors.Is.

package frame

import "errors"

var (
	// ErrColumnNotFound indicates the requested column name is absent.
	ErrColumnNotFound = errors.New("frame: column not found")

	// ErrLengthMismatch indicates a column whose length disagrees with the
	// frame's locked row count.
	ErrLengthMismatch = errors.New("frame: column length mismatch")

	// ErrIndexOutOfRange indicates a row index outside [0, NumRows).
	ErrIndexOutOfRange = errors.New("frame: row index out of range")

	// ErrNegativeRows indicates a frame was requested with a negative row count.
	ErrNegativeRows = errors.New("frame: negative row count")
)
