// Package rect - the Container type, construction options and the constructor.
//
// Construction follows the functional-option pattern: options record the
// caller's inputs, New applies them left-to-right and then validates the
// assembled state in one pass before returning. A failed New never yields a
// partially-built container.

package rect

import (
	"fmt"

	"github.com/cellscope/scex/frame"
	"github.com/cellscope/scex/matrix"
)

// Container is the base rectangular container: rows are features, columns are
// samples. The zero value is not usable; construct with New.
//
// Containers are immutable by convention. Mutators return a fresh *Container
// sharing unmodified assays and frames with the receiver.
type Container struct {
	nr, nc int // extent: feature count × sample count

	assays     map[string]*matrix.Dense // assay name → matrix (all nr×nc)
	assayOrder []string                 // insertion order of assay names

	rowData *frame.Frame // user-visible per-feature annotation (nr rows)
	colData *frame.Frame // user-visible per-sample annotation (nc rows)

	rowNames []string // optional feature labels (len nr or nil)
	colNames []string // optional sample labels (len nc or nil)
}

// Option configures construction of a Container.
type Option func(*builder)

// builder accumulates construction inputs before validation.
type builder struct {
	shapeSet bool
	nr, nc   int

	names  []string
	mats   []*matrix.Dense
	rowDat *frame.Frame
	colDat *frame.Frame
	rowNm  []string
	colNm  []string
}

// WithShape fixes the container extent explicitly. Needed only when the
// container carries no assay (e.g. a row-less placeholder with annotation
// only); when assays are supplied the first assay fixes the extent.
func WithShape(rows, cols int) Option {
	return func(b *builder) {
		b.shapeSet = true
		b.nr, b.nc = rows, cols
	}
}

// WithAssay appends a named assay matrix. Every assay must have the same
// extent; the first one (or WithShape) defines it.
func WithAssay(name string, m *matrix.Dense) Option {
	return func(b *builder) {
		b.names = append(b.names, name)
		b.mats = append(b.mats, m)
	}
}

// WithRowData attaches the per-feature annotation frame.
func WithRowData(f *frame.Frame) Option {
	return func(b *builder) { b.rowDat = f }
}

// WithColData attaches the per-sample annotation frame.
func WithColData(f *frame.Frame) Option {
	return func(b *builder) { b.colDat = f }
}

// WithRowNames attaches feature labels (must match the row count).
func WithRowNames(names ...string) Option {
	return func(b *builder) { b.rowNm = append([]string(nil), names...) }
}

// WithColNames attaches sample labels (must match the column count).
func WithColNames(names ...string) Option {
	return func(b *builder) { b.colNm = append([]string(nil), names...) }
}

// New assembles and validates a Container.
//
// Validation order: extent resolution, per-assay extent and duplicate-name
// checks, annotation row counts, name-vector lengths. Empty annotation frames
// of the right length are synthesized when none are supplied.
//
// Errors: ErrNoExtent, ErrNilAssay, ErrDuplicateName, ErrDimensionMismatch.
// Complexity: O(assays + annotation columns).
func New(opts ...Option) (*Container, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	// Resolve the extent: explicit shape wins, otherwise the first assay.
	nr, nc := b.nr, b.nc
	if !b.shapeSet {
		if len(b.mats) == 0 {
			return nil, ErrNoExtent
		}
		if b.mats[0] == nil {
			return nil, fmt.Errorf("rect: assay %q: %w", b.names[0], ErrNilAssay)
		}
		nr, nc = b.mats[0].Shape()
	}
	if nr < 0 || nc < 0 {
		return nil, fmt.Errorf("rect: shape %dx%d: %w", nr, nc, ErrDimensionMismatch)
	}

	c := &Container{
		nr:     nr,
		nc:     nc,
		assays: make(map[string]*matrix.Dense, len(b.mats)),
	}
	for k, name := range b.names {
		m := b.mats[k]
		if m == nil {
			return nil, fmt.Errorf("rect: assay %q: %w", name, ErrNilAssay)
		}
		if m.Rows() != nr || m.Cols() != nc {
			return nil, fmt.Errorf("rect: assay %q is %dx%d, container is %dx%d: %w",
				name, m.Rows(), m.Cols(), nr, nc, ErrDimensionMismatch)
		}
		if _, dup := c.assays[name]; dup {
			return nil, fmt.Errorf("rect: assay %q: %w", name, ErrDuplicateName)
		}
		c.assays[name] = m
		c.assayOrder = append(c.assayOrder, name)
	}

	// Annotation frames: validate supplied ones, synthesize empty otherwise.
	if b.rowDat != nil {
		if b.rowDat.NumRows() != nr {
			return nil, fmt.Errorf("rect: rowData has %d rows, container has %d: %w",
				b.rowDat.NumRows(), nr, ErrDimensionMismatch)
		}
		c.rowData = b.rowDat
	} else {
		c.rowData = frame.MustNew(nr)
	}
	if b.colDat != nil {
		if b.colDat.NumRows() != nc {
			return nil, fmt.Errorf("rect: colData has %d rows, container has %d columns: %w",
				b.colDat.NumRows(), nc, ErrDimensionMismatch)
		}
		c.colData = b.colDat
	} else {
		c.colData = frame.MustNew(nc)
	}

	if b.rowNm != nil && len(b.rowNm) != nr {
		return nil, fmt.Errorf("rect: %d row names for %d rows: %w",
			len(b.rowNm), nr, ErrDimensionMismatch)
	}
	if b.colNm != nil && len(b.colNm) != nc {
		return nil, fmt.Errorf("rect: %d col names for %d columns: %w",
			len(b.colNm), nc, ErrDimensionMismatch)
	}
	c.rowNames = b.rowNm
	c.colNames = b.colNm

	return c, nil
}
