package partition_test

import (
	"testing"

	"github.com/katalvlaran/halfsum/partition"
)

// benchmarkMaxHalfSum runs MaxHalfSum on n elements cycling through 1..50.
func benchmarkMaxHalfSum(b *testing.B, n int, opts ...partition.Option) {
	elements := make([]int, n)
	for i := range elements {
		elements[i] = i%50 + 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := partition.MaxHalfSum(elements, opts...); err != nil {
			b.Fatalf("MaxHalfSum failed: %v", err)
		}
	}
}

// BenchmarkMaxHalfSum_FullTableSmall benchmarks the full grid on 50 elements.
func BenchmarkMaxHalfSum_FullTableSmall(b *testing.B) {
	benchmarkMaxHalfSum(b, 50)
}

// BenchmarkMaxHalfSum_FullTableMedium benchmarks the full grid on 200 elements.
func BenchmarkMaxHalfSum_FullTableMedium(b *testing.B) {
	benchmarkMaxHalfSum(b, 200)
}

// BenchmarkMaxHalfSum_RollingRowSmall benchmarks the single row on 50 elements.
func BenchmarkMaxHalfSum_RollingRowSmall(b *testing.B) {
	benchmarkMaxHalfSum(b, 50, partition.WithMemoryMode(partition.RollingRow))
}

// BenchmarkMaxHalfSum_RollingRowMedium benchmarks the single row on 200 elements.
func BenchmarkMaxHalfSum_RollingRowMedium(b *testing.B) {
	benchmarkMaxHalfSum(b, 200, partition.WithMemoryMode(partition.RollingRow))
}
