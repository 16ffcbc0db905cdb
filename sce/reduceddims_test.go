// Package sce_test: the reduced-dimension registry.
package sce_test

import (
	"testing"

	"github.com/cellscope/scex/matrix"
	"github.com/cellscope/scex/sce"
	"github.com/stretchr/testify/require"
)

// TestPCAScenario: set a 10×3 PCA embedding, read it back, then subset
// columns and check the embedding follows the column selection.
func TestPCAScenario(t *testing.T) {
	e := newExperiment(t)

	e2, err := e.SetReducedDims([]sce.RDEntry{{Name: "PCA", Mat: gaussians(t, 10, 3, 11)}})
	require.NoError(t, err)
	require.Equal(t, []string{"PCA"}, e2.ReducedDimNames())

	pca, err := e2.ReducedDim("PCA")
	require.NoError(t, err)
	require.Equal(t, 10, pca.Rows())
	require.Equal(t, 3, pca.Cols())

	sub, err := e2.Subset(sce.All(), sce.ByRange(0, 4)) // first four cells
	require.NoError(t, err)

	pca4, err := sub.ReducedDim("PCA")
	require.NoError(t, err)
	require.Equal(t, 4, pca4.Rows()) // embedding rows track selected columns
	require.Equal(t, 3, pca4.Cols()) // dimensionality untouched
}

// TestSetReducedDimDimensionMismatch pins the row-count contract and the
// receiver-unchanged guarantee.
func TestSetReducedDimDimensionMismatch(t *testing.T) {
	e := newExperiment(t)

	_, err := e.SetReducedDim("PCA", gaussians(t, 9, 3, 12)) // 9 rows, 10 columns
	require.ErrorIs(t, err, sce.ErrDimensionMismatch)
	require.Empty(t, e.ReducedDimNames()) // receiver untouched
}

// TestReducedDimLookupErrors covers missing names and bad indices.
func TestReducedDimLookupErrors(t *testing.T) {
	e := newExperiment(t)

	_, err := e.ReducedDim("TSNE")
	require.ErrorIs(t, err, sce.ErrNotFound)

	_, err = e.ReducedDimAt(0)
	require.ErrorIs(t, err, sce.ErrIndexOutOfRange)

	e2, err := e.SetReducedDim("PCA", gaussians(t, 10, 2, 13))
	require.NoError(t, err)

	m, err := e2.ReducedDimAt(0)
	require.NoError(t, err)
	require.Equal(t, 2, m.Cols())

	_, err = e2.ReducedDimAt(1)
	require.ErrorIs(t, err, sce.ErrIndexOutOfRange)
}

// TestReducedDimOverwriteKeepsPosition pins insertion-order stability.
func TestReducedDimOverwriteKeepsPosition(t *testing.T) {
	e := newExperiment(t)

	e, err := e.SetReducedDim("PCA", gaussians(t, 10, 3, 14))
	require.NoError(t, err)
	e, err = e.SetReducedDim("TSNE", gaussians(t, 10, 2, 15))
	require.NoError(t, err)
	e, err = e.SetReducedDim("PCA", gaussians(t, 10, 5, 16)) // overwrite first
	require.NoError(t, err)

	require.Equal(t, []string{"PCA", "TSNE"}, e.ReducedDimNames())

	pca, err := e.ReducedDim("PCA")
	require.NoError(t, err)
	require.Equal(t, 5, pca.Cols())
}

// TestRemoveReducedDim removes via the nil-set path.
func TestRemoveReducedDim(t *testing.T) {
	e := newExperiment(t)

	e2, err := e.SetReducedDim("PCA", gaussians(t, 10, 3, 17))
	require.NoError(t, err)

	e3, err := e2.SetReducedDim("PCA", nil)
	require.NoError(t, err)
	require.Empty(t, e3.ReducedDimNames())
	require.Equal(t, []string{"PCA"}, e2.ReducedDimNames()) // receiver untouched

	e4, err := e2.RemoveReducedDim("PCA")
	require.NoError(t, err)
	require.Empty(t, e4.ReducedDimNames())
}

// TestSetReducedDimsAtomic ensures bulk replacement applies all or nothing.
func TestSetReducedDimsAtomic(t *testing.T) {
	e := newExperiment(t)

	e2, err := e.SetReducedDim("PCA", gaussians(t, 10, 3, 18))
	require.NoError(t, err)

	// One good entry, one bad: nothing must change.
	_, err = e2.SetReducedDims([]sce.RDEntry{
		{Name: "UMAP", Mat: gaussians(t, 10, 2, 19)},
		{Name: "bad", Mat: gaussians(t, 7, 2, 20)}, // 7 rows for 10 columns
	})
	require.ErrorIs(t, err, sce.ErrDimensionMismatch)
	require.Equal(t, []string{"PCA"}, e2.ReducedDimNames())

	// All good entries: the registry is replaced wholesale, in entry order.
	e3, err := e2.SetReducedDims([]sce.RDEntry{
		{Name: "UMAP", Mat: gaussians(t, 10, 2, 21)},
		{Name: "TSNE", Mat: gaussians(t, 10, 2, 22)},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"UMAP", "TSNE"}, e3.ReducedDimNames())
}

// TestSetReducedDimsRoundTrip: reassigning a registry snapshot is a no-op.
func TestSetReducedDimsRoundTrip(t *testing.T) {
	e := newExperiment(t)

	e, err := e.SetReducedDim("PCA", gaussians(t, 10, 3, 23))
	require.NoError(t, err)
	e, err = e.SetReducedDim("TSNE", gaussians(t, 10, 2, 24))
	require.NoError(t, err)

	e2, err := e.SetReducedDims(e.ReducedDims())
	require.NoError(t, err)

	require.Equal(t, e.ReducedDimNames(), e2.ReducedDimNames())
	for i, ent := range e.ReducedDims() {
		got, err := e2.ReducedDimAt(i)
		require.NoError(t, err)
		require.True(t, matrix.Equal(ent.Mat, got))
	}
}

// TestSetReducedDimsSynthesizesNames covers the unnamed-entry pattern.
func TestSetReducedDimsSynthesizesNames(t *testing.T) {
	e := newExperiment(t)

	e2, err := e.SetReducedDims([]sce.RDEntry{
		{Mat: gaussians(t, 10, 2, 25)},              // no name
		{Name: "PCA", Mat: gaussians(t, 10, 3, 26)}, // explicit name
		{Mat: gaussians(t, 10, 4, 27)},              // no name
	})
	require.NoError(t, err)
	require.Equal(t, []string{"unnamed1", "PCA", "unnamed3"}, e2.ReducedDimNames())

	// Duplicate resolved names are rejected atomically.
	_, err = e.SetReducedDims([]sce.RDEntry{
		{Name: "PCA", Mat: gaussians(t, 10, 2, 28)},
		{Name: "PCA", Mat: gaussians(t, 10, 2, 29)},
	})
	require.ErrorIs(t, err, sce.ErrDuplicateName)
}
