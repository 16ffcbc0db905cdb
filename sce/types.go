// Package sce - central types: the Experiment, its ordered registries,
// reserved names and schema versions.
//
// Registries use the same map-plus-order storage as frame.Frame: a lookup map
// and an insertion-order slice, with overwrite preserving position. Registry
// clones share the stored values (matrices / nested experiments), which are
// immutable by convention — the copy-on-write discipline that keeps mutators
// affordable.

package sce

import (
	"github.com/cellscope/scex/frame"
	"github.com/cellscope/scex/matrix"
	"github.com/cellscope/scex/rect"
)

// Schema versions carried by serialized experiments. The validity checker
// skips the registry-existence checks for objects below CurrentVersion; this
// leniency is the sole compatibility mechanism at the serialization boundary.
const (
	// VersionLegacy tags objects persisted before the embedding and
	// alternative-experiment registries existed.
	VersionLegacy = 1

	// CurrentVersion is the schema version this package constructs.
	CurrentVersion = 2
)

// Reserved assay names resolved by the typed convention-layer accessors.
// They are pure aliases into the base assay list — no separate storage.
const (
	AssayCounts     = "counts"
	AssayNormcounts = "normcounts"
	AssayLogcounts  = "logcounts"
	AssayCPM        = "cpm"
	AssayTPM        = "tpm"
)

// Namespacing prefixes for legacy bookkeeping fields inside the internal
// metadata tables. The prefix keeps hidden fields from colliding with any
// user-chosen set name.
const (
	sizeFactorPrefix = "sizefactor."
	spikeInPrefix    = "spike."

	// DefaultSizeFactorSet is the reserved set name resolved by the
	// deprecated no-argument size-factor accessors.
	DefaultSizeFactorSet = "default"
)

// unnamedPrefix synthesizes positional names for registry entries supplied
// without one: "unnamed1", "unnamed2", ...
const unnamedPrefix = "unnamed"

// Experiment is the composite single-cell container. The zero value is not
// usable; construct with New or FromRect.
//
// Experiments are immutable by convention: every mutator returns a new
// instance and re-runs the validity checker before handing it back. Stored
// matrices, frames and nested experiments are shared between generations.
type Experiment struct {
	base *rect.Container // assays + user-visible annotation + dimnames

	// Hidden bookkeeping tables, deliberately distinct fields from the
	// user-visible rowData/colData so internal and user state can never be
	// merged or accidentally overwritten.
	rowInternal *frame.Frame // one row per feature
	colInternal *frame.Frame // one row per sample

	// The two reserved composite-valued members of the column-internal
	// metadata. nil on objects below CurrentVersion (legacy leniency);
	// initialized lazily by the first registry mutation.
	rdims   *rdRegistry // embedding name → per-sample coordinate matrix
	altexps *aeRegistry // sub-experiment name → nested Experiment

	// Declared legacy set names. Each spike-in name must have a Bools field
	// spike.<name> in rowInternal; each size-factor name a Floats field
	// sizefactor.<name> in colInternal. Checked at every schema version.
	spikeNames []string
	sfNames    []string

	version int // schema version tag
}

// rdRegistry is the ordered reduced-dimension registry.
type rdRegistry struct {
	m     map[string]*matrix.Dense
	order []string
}

// aeRegistry is the ordered alternative-experiment registry.
type aeRegistry struct {
	m     map[string]*Experiment
	order []string
}

func newRDRegistry() *rdRegistry {
	return &rdRegistry{m: make(map[string]*matrix.Dense)}
}

func newAERegistry() *aeRegistry {
	return &aeRegistry{m: make(map[string]*Experiment)}
}

// clone copies the registry header; stored matrices are shared.
// Complexity: O(entries).
func (r *rdRegistry) clone() *rdRegistry {
	if r == nil {
		return nil
	}
	out := &rdRegistry{
		m:     make(map[string]*matrix.Dense, len(r.m)),
		order: append([]string(nil), r.order...),
	}
	for name, m := range r.m {
		out.m[name] = m
	}

	return out
}

// clone copies the registry header; stored experiments are shared.
// Complexity: O(entries).
func (r *aeRegistry) clone() *aeRegistry {
	if r == nil {
		return nil
	}
	out := &aeRegistry{
		m:     make(map[string]*Experiment, len(r.m)),
		order: append([]string(nil), r.order...),
	}
	for name, e := range r.m {
		out.m[name] = e
	}

	return out
}

// set inserts or overwrites; overwrite keeps the original position.
func (r *rdRegistry) set(name string, m *matrix.Dense) {
	if _, exists := r.m[name]; !exists {
		r.order = append(r.order, name)
	}
	r.m[name] = m
}

// remove drops an entry and its order slot; absent names are a no-op.
func (r *rdRegistry) remove(name string) {
	if _, ok := r.m[name]; !ok {
		return
	}
	delete(r.m, name)
	r.order = dropName(r.order, name)
}

func (r *aeRegistry) set(name string, e *Experiment) {
	if _, exists := r.m[name]; !exists {
		r.order = append(r.order, name)
	}
	r.m[name] = e
}

func (r *aeRegistry) remove(name string) {
	if _, ok := r.m[name]; !ok {
		return
	}
	delete(r.m, name)
	r.order = dropName(r.order, name)
}

// dropName removes the first occurrence of name from an order slice.
// Complexity: O(len(order)).
func dropName(order []string, name string) []string {
	for k, n := range order {
		if n == name {
			return append(order[:k], order[k+1:]...)
		}
	}

	return order
}
