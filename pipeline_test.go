package jan

import (
	"sync/atomic"
	"testing"
)

func TestTask(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		size    int
	}{
		{"empty", 4, 0},
		{"single worker", 1, 100},
		{"more workers than data", 16, 3},
		{"uneven chunks", 3, 10},
		{"non-positive workers", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int, tt.size)
			for i := range data {
				data[i] = i
			}
			seen := make([]atomic.Int32, tt.size)
			var sum atomic.Int64

			task(tt.workers, data, func(i int) {
				seen[i].Add(1)
				sum.Add(int64(i))
			})

			for i := range seen {
				if seen[i].Load() != 1 {
					t.Errorf("element %d visited %d times", i, seen[i].Load())
				}
			}
			if expected := int64(tt.size * (tt.size - 1) / 2); sum.Load() != expected {
				t.Errorf("Expected sum %d, got %d", expected, sum.Load())
			}
		})
	}
}
