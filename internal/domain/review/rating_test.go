package review

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecompute(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    Aggregate
	}{
		{
			name:    "three reviews",
			ratings: []int{5, 4, 5},
			want:    Aggregate{Average: 4.7, Total: 3},
		},
		{
			name:    "after removing one",
			ratings: []int{5, 5},
			want:    Aggregate{Average: 5.0, Total: 2},
		},
		{
			name:    "rounds half up",
			ratings: []int{4, 5, 4, 4},
			want:    Aggregate{Average: 4.3, Total: 4},
		},
		{
			name:    "single review",
			ratings: []int{3},
			want:    Aggregate{Average: 3.0, Total: 1},
		},
		{
			name:    "no reviews resets to zero",
			ratings: nil,
			want:    Aggregate{Average: 0, Total: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recompute(tt.ratings)
			require.InDelta(t, tt.want.Average, got.Average, 0.001)
			require.Equal(t, tt.want.Total, got.Total)
		})
	}
}

func TestRecomputeKeepsOneDecimal(t *testing.T) {
	// 1+2+5 = 8/3 = 2.666... rounds to 2.7, never 2.67.
	got := Recompute([]int{1, 2, 5})
	require.InDelta(t, 2.7, got.Average, 0.001)
}
