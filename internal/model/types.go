package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// EpochRecord is the outcome of one accepted training step.
type EpochRecord struct {
	Epoch      int     `json:"epoch"`
	BaseError  float64 `json:"base_error"`
	Error      float64 `json:"error"`
	Multiplier float64 `json:"multiplier"`
	Candidates int     `json:"candidates"`
}

type RunStats struct {
	Epochs       int     `json:"epochs"`
	InitialError float64 `json:"initial_error"`
	FinalError   float64 `json:"final_error"`
	BestError    float64 `json:"best_error"`
	WorstError   float64 `json:"worst_error"`
	MeanError    float64 `json:"mean_error"`
	StdDevError  float64 `json:"stddev_error"`
	Improvement  float64 `json:"improvement"`
	Candidates   int     `json:"candidates"`
}

// TrainingRun is the error history of one training session. Network
// parameters are never part of it.
type TrainingRun struct {
	VersionedRecord
	ID           string        `json:"id"`
	CreatedAtUTC string        `json:"created_at_utc"`
	Label        string        `json:"label"`
	Topology     []int         `json:"topology"`
	Policy       string        `json:"policy"`
	Seed         int64         `json:"seed"`
	Epochs       []EpochRecord `json:"epochs"`
	Stats        RunStats      `json:"stats"`
}
