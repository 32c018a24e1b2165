package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Unit is a single tanh neuron: tanh(bias + weights·input).
type Unit struct {
	weights []float64
	bias    float64
}

func newUnit(inputs int) Unit {
	return Unit{weights: make([]float64, inputs)}
}

func (u Unit) Inputs() int {
	return len(u.weights)
}

func (u Unit) Bias() float64 {
	return u.bias
}

// Weights returns a copy of the unit's weights.
func (u Unit) Weights() []float64 {
	return append([]float64(nil), u.weights...)
}

func (u Unit) Evaluate(input []float64) (float64, error) {
	if len(input) != len(u.weights) {
		return 0, fmt.Errorf("unit: input length %d != weight length %d: %w", len(input), len(u.weights), ErrLengthMismatch)
	}
	return math.Tanh(u.bias + floats.Dot(u.weights, input)), nil
}

// Perturb adds multiplier*r to every weight and to the bias, with an
// independent r drawn uniformly from [-1, 1) for each parameter.
func (u *Unit) Perturb(src Float64Source, multiplier float64) {
	for i := range u.weights {
		u.weights[i] += multiplier * symmetric(src)
	}
	u.bias += multiplier * symmetric(src)
}

func (u Unit) clone() Unit {
	return Unit{weights: append([]float64(nil), u.weights...), bias: u.bias}
}
