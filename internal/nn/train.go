package nn

import (
	"context"
	"errors"
)

// SparseProbability is the per-unit chance that a training candidate has the
// unit perturbed.
const SparseProbability = 0.25

// ErrorFunc scores a network; lower is better. It must not retain or mutate
// the network it is given.
type ErrorFunc func(net *Network) (float64, error)

type StepReport struct {
	BaseError  float64 `json:"base_error"`
	Error      float64 `json:"error"`
	Candidates int     `json:"candidates"`
	Rejected   int     `json:"rejected"`
}

// TrainStep runs randomized hill climbing until a sparsely perturbed copy of
// the network scores strictly below the current error, adopts that copy and
// returns its error. There is no iteration cap: if no perturbation of the
// given multiplier can improve errFn the call never returns.
func (n *Network) TrainStep(multiplier float64, errFn ErrorFunc) (float64, error) {
	report, err := n.TrainStepContext(context.Background(), multiplier, 0, errFn)
	if err != nil {
		return 0, err
	}
	return report.Error, nil
}

// TrainStepContext is TrainStep with cancellation and an optional cap on the
// number of candidates. maxCandidates <= 0 means unbounded. When the cap is
// reached the network is left unchanged and ErrNoImprovement is returned.
func (n *Network) TrainStepContext(ctx context.Context, multiplier float64, maxCandidates int, errFn ErrorFunc) (StepReport, error) {
	if errFn == nil {
		return StepReport{}, errors.New("error function is required")
	}
	base, err := errFn(n)
	if err != nil {
		return StepReport{}, err
	}
	report := StepReport{BaseError: base, Error: base}

	for maxCandidates <= 0 || report.Candidates < maxCandidates {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		candidate := n.Clone()
		candidate.PerturbSparse(multiplier, SparseProbability)
		report.Candidates++

		candidateErr, err := errFn(candidate)
		if err != nil {
			return report, err
		}
		if candidateErr < base {
			n.layers = candidate.layers
			report.Error = candidateErr
			return report, nil
		}
		report.Rejected++
	}
	return report, ErrNoImprovement
}
