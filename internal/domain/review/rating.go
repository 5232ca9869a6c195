package review

import "math"

// Aggregate mirrors the cached rating fields on the shop record.
type Aggregate struct {
	Average float64
	Total   int
}

// Recompute derives the shop aggregate from the full set of review
// ratings: arithmetic mean rounded half-up to one decimal, zeroes when no
// reviews remain. Callers pass the whole collection on every mutation;
// there is no incremental running sum.
func Recompute(ratings []int) Aggregate {
	if len(ratings) == 0 {
		return Aggregate{}
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	mean := float64(sum) / float64(len(ratings))

	return Aggregate{
		Average: math.Round(mean*10) / 10,
		Total:   len(ratings),
	}
}
