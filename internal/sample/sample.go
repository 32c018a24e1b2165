// Package sample builds ordered input/expected-output training sets and the
// summed mean-squared-error function both example drivers train against.
package sample

import (
	"fmt"

	"simplenn/internal/nn"
)

// Encoding used by the logic-gate sets.
const (
	True  = 1.0
	False = -1.0
)

type Sample struct {
	Input  []float64 `json:"input"`
	Output []float64 `json:"output"`
}

type Set []Sample

// Pair copies in and out into a Sample.
func Pair(in, out []float64) Sample {
	return Sample{
		Input:  append([]float64(nil), in...),
		Output: append([]float64(nil), out...),
	}
}

func Of(samples ...Sample) Set {
	return append(Set(nil), samples...)
}

// XOR is the two-input exclusive-or truth table encoded as ±1.
func XOR() Set {
	return Of(
		Pair([]float64{False, False}, []float64{False}),
		Pair([]float64{False, True}, []float64{True}),
		Pair([]float64{True, False}, []float64{True}),
		Pair([]float64{True, True}, []float64{False}),
	)
}

// Validate checks every sample against the given input and output widths.
func (s Set) Validate(inputs, outputs int) error {
	for i, sample := range s {
		if len(sample.Input) != inputs {
			return fmt.Errorf("sample %d: input length %d != %d: %w", i, len(sample.Input), inputs, nn.ErrLengthMismatch)
		}
		if len(sample.Output) != outputs {
			return fmt.Errorf("sample %d: output length %d != %d: %w", i, len(sample.Output), outputs, nn.ErrLengthMismatch)
		}
	}
	return nil
}

// Error sums the mean squared error of net over every sample.
func (s Set) Error(net *nn.Network) (float64, error) {
	total := 0.0
	for i, sample := range s {
		predicted, err := net.Evaluate(sample.Input)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		e, err := nn.MeanSquaredError(predicted, sample.Output)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		total += e
	}
	return total, nil
}

func (s Set) ErrorFunc() nn.ErrorFunc {
	return s.Error
}

// Prediction pairs a sample with what a network produced for it.
type Prediction struct {
	Sample
	Predicted []float64 `json:"predicted"`
}

func (s Set) Predict(net *nn.Network) ([]Prediction, error) {
	out := make([]Prediction, 0, len(s))
	for i, sample := range s {
		predicted, err := net.Evaluate(sample.Input)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out = append(out, Prediction{Sample: sample, Predicted: predicted})
	}
	return out, nil
}
