package connectivity_test

import (
	"testing"

	"github.com/katalvlaran/atomcluster/connectivity"
)

// BenchmarkBuild_AllPairs measures the quadratic scan on 2000 atoms.
func BenchmarkBuild_AllPairs(b *testing.B) {
	pts := randomCloud(2000, 30, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = connectivity.Build(pts, connectivity.DefaultCutoff)
	}
}

// BenchmarkBuild_Parallel measures the row-split scan with 4 workers.
func BenchmarkBuild_Parallel(b *testing.B) {
	pts := randomCloud(2000, 30, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = connectivity.Build(pts, connectivity.DefaultCutoff, connectivity.WithWorkers(4))
	}
}

// BenchmarkBuild_CellList measures the cell-list scan on the same cloud.
func BenchmarkBuild_CellList(b *testing.B) {
	pts := randomCloud(2000, 30, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = connectivity.Build(pts, connectivity.DefaultCutoff, connectivity.WithMethod(connectivity.MethodCellList))
	}
}
