// Package sce_test: runnable documentation examples.
package sce_test

import (
	"fmt"
	"math"

	"github.com/cellscope/scex/matrix"
	"github.com/cellscope/scex/sce"
)

// ExampleExperiment walks the core workflow: build a counts experiment,
// derive logcounts, attach an embedding, and subset the samples.
func ExampleExperiment() {
	// 1) A 3×4 counts matrix: three features over four cells.
	counts, _ := matrix.FromRows([][]float64{
		{1, 0, 3, 7},
		{0, 2, 2, 1},
		{5, 1, 0, 0},
	})
	exp, _ := sce.New(
		sce.WithAssay(sce.AssayCounts, counts),
		sce.WithRowNames("ACTB", "GAPDH", "MT-CO1"),
		sce.WithColNames("c1", "c2", "c3", "c4"),
	)

	// 2) Derive a log-transformed assay under its reserved name.
	exp, _ = exp.SetLogcounts(counts.Apply(func(_, _ int, v float64) float64 {
		return math.Log2(v + 1)
	}))
	fmt.Println("assays:", exp.AssayNames())

	// 3) Attach a 2-dimensional embedding: one row per cell.
	pca, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}})
	exp, _ = exp.SetReducedDim("PCA", pca)
	fmt.Println("embeddings:", exp.ReducedDimNames())

	// 4) Keep only the first two cells; every structure follows.
	sub, _ := exp.Subset(sce.All(), sce.ByRange(0, 2))
	subPCA, _ := sub.ReducedDim("PCA")
	fmt.Println("cells:", sub.ColNames())
	fmt.Println("embedding shape:", subPCA.Rows(), "x", subPCA.Cols())

	// Output:
	// assays: [counts logcounts]
	// embeddings: [PCA]
	// cells: [c1 c2]
	// embedding shape: 2 x 2
}

// ExampleExperiment_SplitAltExps separates spike-in features into a nested
// alternative experiment sharing the parent's columns.
func ExampleExperiment_SplitAltExps() {
	counts, _ := matrix.FromRows([][]float64{
		{1, 2}, // ERCC-1
		{3, 4}, // ACTB
		{5, 6}, // ERCC-2
	})
	exp, _ := sce.New(
		sce.WithAssay(sce.AssayCounts, counts),
		sce.WithRowNames("ERCC-1", "ACTB", "ERCC-2"),
		sce.WithColNames("c1", "c2"),
	)

	after, _ := exp.SplitAltExps([]string{"spike", "gene", "spike"}, "gene")
	spike, _ := after.AltExp("spike")

	fmt.Println("primary rows:", after.RowNames())
	fmt.Println("spike rows:", spike.RowNames())
	fmt.Println("spike columns:", spike.ColNames())

	// Output:
	// primary rows: [ACTB]
	// spike rows: [ERCC-1 ERCC-2]
	// spike columns: [c1 c2]
}
