// Package sce_test: the legacy size-factor and spike-in stores.
package sce_test

import (
	"math/rand"
	"testing"

	"github.com/cellscope/scex/sce"
	"github.com/stretchr/testify/require"
)

// TestSizeFactorsScenario: set a per-column vector, read it back, clear all
// sets, and verify the store is empty and the getter fails.
func TestSizeFactorsScenario(t *testing.T) {
	e := newExperiment(t)

	rng := rand.New(rand.NewSource(61))
	vec := make([]float64, e.NumCols())
	for i := range vec {
		vec[i] = rng.Float64()
	}

	e2, err := e.SetSizeFactors(vec)
	require.NoError(t, err)

	got, err := e2.SizeFactors()
	require.NoError(t, err)
	require.Len(t, got, e.NumCols())
	require.Equal(t, vec, got)
	require.Equal(t, []string{sce.DefaultSizeFactorSet}, e2.SizeFactorNames())

	e3, err := e2.ClearSizeFactors()
	require.NoError(t, err)
	require.Empty(t, e3.SizeFactorNames())

	_, err = e3.SizeFactors()
	require.ErrorIs(t, err, sce.ErrNotFound)

	// The intermediate generation still holds its factors.
	_, err = e2.SizeFactors()
	require.NoError(t, err)
}

// TestSizeFactorsTyped covers named sets and their lookup errors.
func TestSizeFactorsTyped(t *testing.T) {
	e := newExperiment(t)

	e2, err := e.SetSizeFactorsFor("deconvolution", []float64{1, 1, 1, 1, 1, 2, 2, 2, 2, 2})
	require.NoError(t, err)

	got, err := e2.SizeFactorsFor("deconvolution")
	require.NoError(t, err)
	require.Equal(t, 2.0, got[9])

	_, err = e2.SizeFactorsFor("spikes")
	require.ErrorIs(t, err, sce.ErrNotFound)

	// The returned vector is a copy; writing it must not leak back.
	got[0] = 99
	again, err := e2.SizeFactorsFor("deconvolution")
	require.NoError(t, err)
	require.Equal(t, 1.0, again[0])
}

// TestSizeFactorsBestEffortFallback: with no default set but exactly one
// named set, the deprecated no-argument getter returns that set instead of
// failing. Two named sets are ambiguous and fail.
func TestSizeFactorsBestEffortFallback(t *testing.T) {
	e := newExperiment(t)

	one, err := e.SetSizeFactorsFor("only", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, err)

	got, err := one.SizeFactors() // falls back to the single declared set
	require.NoError(t, err)
	require.Equal(t, 10.0, got[9])

	two, err := one.SetSizeFactorsFor("other", make([]float64, 10))
	require.NoError(t, err)
	_, err = two.SizeFactors()
	require.ErrorIs(t, err, sce.ErrNotFound)
}

// TestSetSizeFactorsDimensionMismatch pins the length contract.
func TestSetSizeFactorsDimensionMismatch(t *testing.T) {
	e := newExperiment(t)

	_, err := e.SetSizeFactors([]float64{1, 2, 3})
	require.ErrorIs(t, err, sce.ErrDimensionMismatch)
	require.Empty(t, e.SizeFactorNames())
}

// TestSpikeInStore covers the row-side twin: set, read, clear, errors.
func TestSpikeInStore(t *testing.T) {
	e := newExperiment(t)

	flags := make([]bool, 10)
	flags[0], flags[1] = true, true

	e2, err := e.SetSpikeIn("ercc", flags)
	require.NoError(t, err)
	require.Equal(t, []string{"ercc"}, e2.SpikeInNames())

	got, err := e2.IsSpikeIn("ercc")
	require.NoError(t, err)
	require.Equal(t, flags, got)

	_, err = e2.IsSpikeIn("sirv")
	require.ErrorIs(t, err, sce.ErrNotFound)

	_, err = e.SetSpikeIn("bad", []bool{true}) // wrong length
	require.ErrorIs(t, err, sce.ErrDimensionMismatch)

	e3, err := e2.ClearSpikeIns()
	require.NoError(t, err)
	require.Empty(t, e3.SpikeInNames())
	_, err = e3.IsSpikeIn("ercc")
	require.ErrorIs(t, err, sce.ErrNotFound)
}
