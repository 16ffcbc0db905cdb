// Package sce_test - shared fixtures for the sce test suite.
package sce_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cellscope/scex/matrix"
	"github.com/cellscope/scex/sce"
	"github.com/stretchr/testify/require"
)

// poissonish fills an r×c matrix with small non-negative integers from a
// fixed-seed source, a stand-in for Poisson-distributed counts.
func poissonish(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(20))
		}
	}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// gaussians fills an r×c matrix with fixed-seed normal deviates (embedding
// coordinates).
func gaussians(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.NormFloat64()
		}
	}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// seqNames builds ["<prefix>01", ..., "<prefix>NN"].
func seqNames(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%02d", prefix, i+1)
	}

	return out
}

// newExperiment builds the canonical fixture: a 10×10 "counts" experiment
// with row names gene01..gene10 and column names cell01..cell10.
func newExperiment(t *testing.T) *sce.Experiment {
	t.Helper()
	e, err := sce.New(
		sce.WithAssay(sce.AssayCounts, poissonish(t, 10, 10, 42)),
		sce.WithRowNames(seqNames("gene", 10)...),
		sce.WithColNames(seqNames("cell", 10)...),
	)
	require.NoError(t, err)
	require.NoError(t, e.Validate())

	return e
}
