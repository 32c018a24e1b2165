package tuning

import "fmt"

const DefaultDecayDivisor = 1.05

// MultiplierPolicy decides the perturbation multiplier for each epoch.
type MultiplierPolicy interface {
	Name() string
	Multiplier(initial float64, epoch, totalEpochs int) float64
}

type ConstantPolicy struct{}

func (ConstantPolicy) Name() string { return "constant" }

func (ConstantPolicy) Multiplier(initial float64, _epoch, _totalEpochs int) float64 {
	return initial
}

// GeometricPolicy divides the multiplier by Divisor after every epoch.
type GeometricPolicy struct {
	Divisor float64
}

func (GeometricPolicy) Name() string { return "geometric" }

func (p GeometricPolicy) Multiplier(initial float64, epoch, _totalEpochs int) float64 {
	divisor := p.Divisor
	if divisor <= 0 {
		divisor = DefaultDecayDivisor
	}
	multiplier := initial
	for i := 0; i < epoch; i++ {
		multiplier /= divisor
	}
	return multiplier
}

type LinearDecayPolicy struct {
	Floor float64
}

func (LinearDecayPolicy) Name() string { return "linear_decay" }

func (p LinearDecayPolicy) Multiplier(initial float64, epoch, totalEpochs int) float64 {
	if totalEpochs <= 0 {
		return initial
	}
	remaining := totalEpochs - epoch
	if remaining < 1 {
		remaining = 1
	}
	multiplier := initial * float64(remaining) / float64(totalEpochs)
	if multiplier < p.Floor {
		multiplier = p.Floor
	}
	return multiplier
}

func PolicyFromConfig(name string, param float64) (MultiplierPolicy, error) {
	switch NormalizePolicyName(name) {
	case "geometric":
		divisor := param
		if divisor <= 0 {
			divisor = DefaultDecayDivisor
		}
		return GeometricPolicy{Divisor: divisor}, nil
	case "constant":
		return ConstantPolicy{}, nil
	case "linear_decay":
		floor := param
		if floor < 0 {
			floor = 0
		}
		return LinearDecayPolicy{Floor: floor}, nil
	default:
		return nil, fmt.Errorf("unsupported multiplier policy: %s", name)
	}
}

func NormalizePolicyName(name string) string {
	switch name {
	case "", "geometric", "decay":
		return "geometric"
	case "constant", "fixed", "const":
		return "constant"
	case "linear_decay", "linear":
		return "linear_decay"
	default:
		return name
	}
}
