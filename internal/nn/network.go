package nn

import (
	"fmt"
	"math/rand"
)

// Network is a chain of layers where each layer consumes the previous
// layer's output. Only weights and biases change after construction.
type Network struct {
	topology []int
	layers   []Layer
	rng      *lockedSource
}

// New builds a zero-initialised network for topology. topology[0] is the
// input width and topology[k] (k >= 1) is the width of layer k-1.
func New(topology []int) (*Network, error) {
	return NewWithRand(topology, nil)
}

// NewWithRand is New with an explicit random source for perturbation. A nil
// r seeds a source from the clock.
func NewWithRand(topology []int, r *rand.Rand) (*Network, error) {
	if len(topology) < 2 {
		return nil, fmt.Errorf("topology needs an input and an output size, got %d entries: %w", len(topology), ErrInvalidTopology)
	}
	for i, size := range topology {
		if size < 0 {
			return nil, fmt.Errorf("topology[%d] = %d is negative: %w", i, size, ErrInvalidTopology)
		}
	}

	layers := make([]Layer, 0, len(topology)-1)
	for k := 1; k < len(topology); k++ {
		layers = append(layers, newLayer(topology[k-1], topology[k]))
	}
	return &Network{
		topology: append([]int(nil), topology...),
		layers:   layers,
		rng:      newLockedSource(r),
	}, nil
}

func (n *Network) Topology() []int {
	return append([]int(nil), n.topology...)
}

func (n *Network) InputSize() int {
	return n.topology[0]
}

func (n *Network) OutputSize() int {
	return n.topology[len(n.topology)-1]
}

func (n *Network) Layers() int {
	return len(n.layers)
}

func (n *Network) Layer(i int) Layer {
	return n.layers[i].clone()
}

// ParameterCount is the number of weights plus biases.
func (n *Network) ParameterCount() int {
	total := 0
	for k := 1; k < len(n.topology); k++ {
		total += n.topology[k] * (n.topology[k-1] + 1)
	}
	return total
}

func (n *Network) Evaluate(input []float64) ([]float64, error) {
	if len(input) != n.topology[0] {
		return nil, fmt.Errorf("network: input length %d != input size %d: %w", len(input), n.topology[0], ErrLengthMismatch)
	}
	values := input
	for i, layer := range n.layers {
		out, err := layer.Evaluate(values)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		values = out
	}
	return values, nil
}

func (n *Network) Perturb(multiplier float64) {
	for i := range n.layers {
		n.layers[i].Perturb(n.rng, multiplier)
	}
}

func (n *Network) PerturbSparse(multiplier, probability float64) {
	for i := range n.layers {
		n.layers[i].PerturbSparse(n.rng, multiplier, probability)
	}
}

// Clone returns a deep copy. The copy shares the random source but no
// parameter storage.
func (n *Network) Clone() *Network {
	layers := make([]Layer, len(n.layers))
	for i, layer := range n.layers {
		layers[i] = layer.clone()
	}
	return &Network{
		topology: append([]int(nil), n.topology...),
		layers:   layers,
		rng:      n.rng,
	}
}
