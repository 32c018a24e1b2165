package nn

import "fmt"

// Layer is an ordered group of units that all read the same input vector.
type Layer struct {
	inputs int
	units  []Unit
}

func newLayer(inputs, size int) Layer {
	units := make([]Unit, size)
	for i := range units {
		units[i] = newUnit(inputs)
	}
	return Layer{inputs: inputs, units: units}
}

func (l Layer) Inputs() int {
	return l.inputs
}

func (l Layer) Size() int {
	return len(l.units)
}

func (l Layer) Unit(i int) Unit {
	return l.units[i].clone()
}

// Evaluate returns one output per unit, in unit order.
func (l Layer) Evaluate(input []float64) ([]float64, error) {
	if len(input) != l.inputs {
		return nil, fmt.Errorf("layer: input length %d != layer input size %d: %w", len(input), l.inputs, ErrLengthMismatch)
	}
	out := make([]float64, len(l.units))
	for i, unit := range l.units {
		value, err := unit.Evaluate(input)
		if err != nil {
			return nil, fmt.Errorf("unit %d: %w", i, err)
		}
		out[i] = value
	}
	return out, nil
}

func (l *Layer) Perturb(src Float64Source, multiplier float64) {
	for i := range l.units {
		l.units[i].Perturb(src, multiplier)
	}
}

// PerturbSparse perturbs each unit independently when a uniform draw in
// [0, 1) is <= probability. probability is not validated.
func (l *Layer) PerturbSparse(src Float64Source, multiplier, probability float64) {
	for i := range l.units {
		if src.Float64() <= probability {
			l.units[i].Perturb(src, multiplier)
		}
	}
}

func (l Layer) clone() Layer {
	units := make([]Unit, len(l.units))
	for i, unit := range l.units {
		units[i] = unit.clone()
	}
	return Layer{inputs: l.inputs, units: units}
}
