package nn

import "errors"

var (
	ErrLengthMismatch  = errors.New("length mismatch")
	ErrInvalidTopology = errors.New("invalid topology")
	// ErrNoImprovement is returned by a capped training step that ran out of
	// candidates before any of them beat the base error.
	ErrNoImprovement = errors.New("no improving candidate")
)
