package tuning

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"simplenn/internal/model"
)

// Summarize reduces an epoch history to run statistics. Mean and standard
// deviation are over the accepted per-epoch errors; the deviation is the
// population one.
func Summarize(records []model.EpochRecord) model.RunStats {
	if len(records) == 0 {
		return model.RunStats{}
	}
	errs := make([]float64, len(records))
	candidates := 0
	for i, record := range records {
		errs[i] = record.Error
		candidates += record.Candidates
	}
	mean, std := stat.PopMeanStdDev(errs, nil)
	initial := records[0].BaseError
	final := records[len(records)-1].Error
	return model.RunStats{
		Epochs:       len(records),
		InitialError: initial,
		FinalError:   final,
		BestError:    floats.Min(errs),
		WorstError:   floats.Max(errs),
		MeanError:    mean,
		StdDevError:  std,
		Improvement:  initial - final,
		Candidates:   candidates,
	}
}
