package dataprocessing

import (
	"sort"

	apperrors "asteroidcli/internal/errors"
)

// Mean returns the arithmetic mean of values. name identifies the statistic
// in the EMPTY_SAMPLE error returned for an empty slice.
func Mean(name string, values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, apperrors.NewEmptySampleError(name)
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Median returns the middle value of values, or the average of the two middle
// values for an even count. The input slice is not reordered.
func Median(name string, values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, apperrors.NewEmptySampleError(name)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}
	return sorted[n/2], nil
}
