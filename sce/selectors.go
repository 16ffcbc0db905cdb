// Package sce - axis selectors.
//
// A Selector picks rows or columns for Subset. Selectors resolve lazily
// against the axis they are applied to (length plus optional labels), so one
// value works for either axis. Resolution yields an index list in selection
// order; a nil list means "the full axis, in order" and lets the layers below
// skip copying entirely.

package sce

import "fmt"

// Selector picks entries of one axis (rows or columns).
type Selector interface {
	// resolve turns the selector into an index list against an axis of
	// length n with optional labels. nil means the full axis in order.
	resolve(n int, names []string) ([]int, error)
}

type allSel struct{}

type indexSel []int

type rangeSel struct{ lo, hi int }

type nameSel []string

type maskSel []bool

// All selects the entire axis in its current order.
func All() Selector { return allSel{} }

// ByIndex selects the given zero-based indices, in the given order.
// Indices may repeat.
func ByIndex(idx ...int) Selector { return indexSel(idx) }

// ByRange selects the half-open index interval [lo, hi).
func ByRange(lo, hi int) Selector { return rangeSel{lo: lo, hi: hi} }

// ByNames selects entries by their axis labels, in the given order.
func ByNames(names ...string) Selector { return nameSel(names) }

// ByMask selects entries whose mask value is true; the mask length must
// equal the axis length.
func ByMask(mask ...bool) Selector { return maskSel(mask) }

func (allSel) resolve(int, []string) ([]int, error) { return nil, nil }

func (s indexSel) resolve(n int, _ []string) ([]int, error) {
	out := make([]int, len(s))
	for k, i := range s {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("sce: selector index %d of %d: %w", i, n, ErrIndexOutOfRange)
		}
		out[k] = i
	}

	return out, nil
}

func (s rangeSel) resolve(n int, _ []string) ([]int, error) {
	if s.lo < 0 || s.hi > n || s.lo > s.hi {
		return nil, fmt.Errorf("sce: selector range [%d,%d) of %d: %w",
			s.lo, s.hi, n, ErrIndexOutOfRange)
	}
	out := make([]int, 0, s.hi-s.lo)
	for i := s.lo; i < s.hi; i++ {
		out = append(out, i)
	}

	return out, nil
}

func (s nameSel) resolve(n int, names []string) ([]int, error) {
	if names == nil {
		return nil, fmt.Errorf("sce: selecting by name on an unlabeled axis: %w", ErrNotFound)
	}
	// First match wins when labels repeat.
	lookup := make(map[string]int, n)
	for i := len(names) - 1; i >= 0; i-- {
		lookup[names[i]] = i
	}
	out := make([]int, len(s))
	for k, name := range s {
		i, ok := lookup[name]
		if !ok {
			return nil, fmt.Errorf("sce: selector name %q: %w", name, ErrNotFound)
		}
		out[k] = i
	}

	return out, nil
}

func (s maskSel) resolve(n int, _ []string) ([]int, error) {
	if len(s) != n {
		return nil, fmt.Errorf("sce: selector mask has %d entries for axis of %d: %w",
			len(s), n, ErrDimensionMismatch)
	}
	var out []int
	for i, keep := range s {
		if keep {
			out = append(out, i)
		}
	}
	if out == nil {
		out = []int{}
	}

	return out, nil
}
