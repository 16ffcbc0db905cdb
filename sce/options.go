// Package sce - functional configuration.
//
// Two option families live here:
//   - Option configures construction (New): assays, annotation, dimnames,
//     initial embeddings and alternative experiments, schema version.
//   - AltExpOption configures the alternative-experiment accessors: whether
//     the parent's column annotation travels with the sub-experiment.

package sce

import (
	"github.com/cellscope/scex/frame"
	"github.com/cellscope/scex/matrix"
	"github.com/cellscope/scex/rect"
)

// Option configures construction of an Experiment.
type Option func(*builder)

// builder accumulates construction inputs before assembly and validation.
type builder struct {
	rectOpts []rect.Option

	rdNames []string
	rdMats  []*matrix.Dense

	aeNames []string
	aeSubs  []*Experiment

	version int
}

// WithShape fixes the container extent without supplying an assay.
func WithShape(rows, cols int) Option {
	return func(b *builder) { b.rectOpts = append(b.rectOpts, rect.WithShape(rows, cols)) }
}

// WithAssay appends a named assay matrix; the first assay (or WithShape)
// fixes the experiment's extent and every later assay must match it.
func WithAssay(name string, m *matrix.Dense) Option {
	return func(b *builder) { b.rectOpts = append(b.rectOpts, rect.WithAssay(name, m)) }
}

// WithRowData attaches the user-visible per-feature annotation frame.
func WithRowData(f *frame.Frame) Option {
	return func(b *builder) { b.rectOpts = append(b.rectOpts, rect.WithRowData(f)) }
}

// WithColData attaches the user-visible per-sample annotation frame.
func WithColData(f *frame.Frame) Option {
	return func(b *builder) { b.rectOpts = append(b.rectOpts, rect.WithColData(f)) }
}

// WithRowNames attaches feature labels.
func WithRowNames(names ...string) Option {
	return func(b *builder) { b.rectOpts = append(b.rectOpts, rect.WithRowNames(names...)) }
}

// WithColNames attaches sample labels.
func WithColNames(names ...string) Option {
	return func(b *builder) { b.rectOpts = append(b.rectOpts, rect.WithColNames(names...)) }
}

// WithReducedDim seeds the reduced-dimension registry at construction.
func WithReducedDim(name string, m *matrix.Dense) Option {
	return func(b *builder) {
		b.rdNames = append(b.rdNames, name)
		b.rdMats = append(b.rdMats, m)
	}
}

// WithAltExp seeds the alternative-experiment registry at construction.
// The sub-experiment's column annotation is stripped, as with SetAltExp.
func WithAltExp(name string, sub *Experiment) Option {
	return func(b *builder) {
		b.aeNames = append(b.aeNames, name)
		b.aeSubs = append(b.aeSubs, sub)
	}
}

// WithVersion tags the experiment with an explicit schema version. Versions
// below CurrentVersion build legacy-shaped objects whose registries are
// absent until lazily upgraded — the stand-in for deserializing old
// persisted instances.
func WithVersion(v int) Option {
	return func(b *builder) { b.version = v }
}

// AltExpOption configures AltExp/AltExpAt/SetAltExp/SetAltExps.
type AltExpOption func(*aeConfig)

type aeConfig struct {
	withColData bool
}

// KeepColData controls the compatibility mode for column annotation on the
// alternative-experiment boundary. On get, true copies the parent's colData
// onto the returned sub-experiment. On set, true stores the supplied sub's
// colData as-is; false (the default) strips it, so parent and sub annotation
// cannot drift apart.
func KeepColData(keep bool) AltExpOption {
	return func(c *aeConfig) { c.withColData = keep }
}

func gatherAEOptions(opts []AltExpOption) aeConfig {
	var cfg aeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
