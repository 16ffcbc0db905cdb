// Package sce implements the composite single-cell container: an Experiment
// wraps a base rect.Container (features × samples with named parallel assay
// matrices) and keeps four further per-axis structures mutually consistent:
//
//   - a reduced-dimension registry — named, ordered per-sample embedding
//     matrices (e.g. PCA coordinates), each with one row per sample;
//   - an alternative-experiment registry — named, ordered nested Experiments
//     holding a disjoint feature set over the identical sample columns;
//   - hidden internal metadata tables (one row per feature / per sample) for
//     structural bookkeeping, kept apart from the user-visible annotation;
//   - legacy size-factor and spike-in stores (deprecated, preserved
//     bit-for-bit for compatibility).
//
// The heart of the package is the validity checker (validate.go): a pure
// predicate over the whole object, invoked at construction and after every
// mutator. Mutators never touch the receiver — they assemble a candidate,
// validate it, and either return it or return the error with the original
// unchanged, so a corrupted Experiment is never observable.
//
// Subsetting, renaming and registry assignment all preserve the invariants:
//
//	sub, err := exp.Subset(sce.ByNames("ACTB"), sce.ByRange(0, 4))
//	// every assay, embedding, nested experiment and annotation table in sub
//	// is sliced consistently, and sub has passed the validity check.
//
// Deserialized objects carry a schema version tag; the checker tolerates
// objects below CurrentVersion by skipping the registry-existence checks
// (legacy leniency), while legacy spike-in/size-factor declarations are
// checked at every version.
//
// Errors are package-level sentinels matched via errors.Is; the aggregate
// *ValidityError (one message per violated invariant) unwraps to ErrInvalid.
package sce
