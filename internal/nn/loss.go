package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MeanSquaredError returns Σ(predicted[i]-actual[i])² / len. Empty vectors
// have zero error.
func MeanSquaredError(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("predicted length %d != actual length %d: %w", len(predicted), len(actual), ErrLengthMismatch)
	}
	if len(actual) == 0 {
		return 0, nil
	}
	diff := make([]float64, len(actual))
	floats.SubTo(diff, predicted, actual)
	return floats.Dot(diff, diff) / float64(len(actual)), nil
}
