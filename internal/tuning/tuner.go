package tuning

import (
	"errors"

	"simplenn/internal/model"
)

const (
	DefaultEpochs            = 10
	DefaultInitialMultiplier = 1.0
)

// Schedule configures an epoch run. Zero values select the defaults: ten
// epochs starting at multiplier 1.0, divided by 1.05 after each epoch, with
// no cap on candidates per epoch.
type Schedule struct {
	Epochs            int
	InitialMultiplier float64
	Policy            string
	PolicyParam       float64
	MaxCandidates     int
}

func (s Schedule) Validate() error {
	if s.Epochs < 0 {
		return errors.New("epochs must be >= 0")
	}
	if s.InitialMultiplier < 0 {
		return errors.New("initial multiplier must be >= 0")
	}
	if s.MaxCandidates < 0 {
		return errors.New("max candidates must be >= 0")
	}
	_, err := PolicyFromConfig(s.Policy, s.PolicyParam)
	return err
}

func (s Schedule) withDefaults() Schedule {
	if s.Epochs == 0 {
		s.Epochs = DefaultEpochs
	}
	if s.InitialMultiplier == 0 {
		s.InitialMultiplier = DefaultInitialMultiplier
	}
	s.Policy = NormalizePolicyName(s.Policy)
	return s
}

// EpochObserver receives every accepted epoch as it completes.
type EpochObserver func(record model.EpochRecord)
