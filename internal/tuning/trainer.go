package tuning

import (
	"context"
	"errors"
	"fmt"

	"simplenn/internal/model"
	"simplenn/internal/nn"
)

// Trainer drives repeated hill-climbing steps over a network, one step per
// epoch, with the multiplier supplied by the schedule's policy.
type Trainer struct {
	Schedule Schedule
	OnEpoch  EpochObserver
}

func (t *Trainer) Name() string {
	return "hillclimb"
}

// Run trains net in place. On failure it returns the epochs completed so far
// together with the error.
func (t *Trainer) Run(ctx context.Context, net *nn.Network, errFn nn.ErrorFunc) ([]model.EpochRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if net == nil {
		return nil, errors.New("network is required")
	}
	if errFn == nil {
		return nil, errors.New("error function is required")
	}
	if err := t.Schedule.Validate(); err != nil {
		return nil, err
	}
	schedule := t.Schedule.withDefaults()
	policy, err := PolicyFromConfig(schedule.Policy, schedule.PolicyParam)
	if err != nil {
		return nil, err
	}

	records := make([]model.EpochRecord, 0, schedule.Epochs)
	for epoch := 0; epoch < schedule.Epochs; epoch++ {
		multiplier := policy.Multiplier(schedule.InitialMultiplier, epoch, schedule.Epochs)
		report, err := net.TrainStepContext(ctx, multiplier, schedule.MaxCandidates, errFn)
		if err != nil {
			return records, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		record := model.EpochRecord{
			Epoch:      epoch,
			BaseError:  report.BaseError,
			Error:      report.Error,
			Multiplier: multiplier,
			Candidates: report.Candidates,
		}
		records = append(records, record)
		if t.OnEpoch != nil {
			t.OnEpoch(record)
		}
	}
	return records, nil
}
