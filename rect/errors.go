// Package rect: sentinel error set, matched by callers via errors.Is.

package rect

import "errors"

var (
	// ErrDimensionMismatch indicates a supplied assay, annotation frame or
	// name vector whose extent disagrees with the container.
	ErrDimensionMismatch = errors.New("rect: dimension mismatch")

	// ErrAssayNotFound indicates the requested assay name is absent.
	ErrAssayNotFound = errors.New("rect: assay not found")

	// ErrIndexOutOfRange indicates a numeric assay index beyond the list.
	ErrIndexOutOfRange = errors.New("rect: assay index out of range")

	// ErrDuplicateName indicates the same assay name was supplied twice
	// during construction.
	ErrDuplicateName = errors.New("rect: duplicate assay name")

	// ErrNilAssay indicates a nil matrix was supplied where an assay is required.
	ErrNilAssay = errors.New("rect: nil assay matrix")

	// ErrNoExtent indicates construction without any assay or explicit shape,
	// leaving the container's extent undefined.
	ErrNoExtent = errors.New("rect: container extent undefined")
)
