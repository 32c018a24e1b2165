package nn

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestLayerEvaluateOrder(t *testing.T) {
	layer := Layer{
		inputs: 1,
		units: []Unit{
			{weights: []float64{1}},
			{weights: []float64{-1}},
			{weights: []float64{0}, bias: 0.5},
		},
	}

	out, err := layer.Evaluate([]float64{0.3})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	want := []float64{math.Tanh(0.3), math.Tanh(-0.3), math.Tanh(0.5)}
	if len(out) != len(want) {
		t.Fatalf("unexpected output length: got=%d want=%d", len(out), len(want))
	}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("output %d: got=%f want=%f", i, out[i], want[i])
		}
	}
}

func TestLayerEvaluateLengthMismatch(t *testing.T) {
	layer := newLayer(3, 2)
	if _, err := layer.Evaluate([]float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected length mismatch, got %v", err)
	}
}

func TestLayerPerturbTouchesEveryUnit(t *testing.T) {
	layer := newLayer(2, 4)
	layer.Perturb(rand.New(rand.NewSource(1)), 1)
	for i, unit := range layer.units {
		if unit.bias == 0 && unit.weights[0] == 0 && unit.weights[1] == 0 {
			t.Fatalf("unit %d was not perturbed", i)
		}
	}
}

func TestLayerPerturbSparse(t *testing.T) {
	tests := []struct {
		name        string
		draws       []float64
		probability float64
		touched     []bool
	}{
		{
			name:        "below-threshold",
			draws:       []float64{0.1, 0.9, 0.9, 0.9, 0.8},
			probability: 0.25,
			touched:     []bool{true, false, false},
		},
		{
			name:        "equal-threshold-perturbs",
			draws:       []float64{0.25, 0.9, 0.9, 0.9, 0.3},
			probability: 0.25,
			touched:     []bool{true, false, false},
		},
		{
			name:        "zero-probability",
			draws:       []float64{0.5, 0.5, 0.5},
			probability: 0,
			touched:     []bool{false, false, false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layer := newLayer(1, 3)
			src := fixedSource(tc.draws)
			layer.PerturbSparse(&src, 1, tc.probability)
			for i, unit := range layer.units {
				touched := unit.bias != 0 || unit.weights[0] != 0
				if touched != tc.touched[i] {
					t.Fatalf("unit %d: touched=%t want=%t", i, touched, tc.touched[i])
				}
			}
		})
	}
}

func TestLayerPerturbSparseFullProbability(t *testing.T) {
	layer := newLayer(2, 16)
	layer.PerturbSparse(rand.New(rand.NewSource(3)), 1, 1)
	for i, unit := range layer.units {
		if unit.bias == 0 {
			t.Fatalf("unit %d was not perturbed", i)
		}
	}
}
