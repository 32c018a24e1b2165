package storage

import (
	"context"

	"simplenn/internal/model"
)

// Store persists training-run histories.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.TrainingRun) error
	GetRun(ctx context.Context, id string) (model.TrainingRun, bool, error)
	// ListRuns returns runs newest first; limit <= 0 returns all of them.
	ListRuns(ctx context.Context, limit int) ([]model.TrainingRun, error)
	DeleteRun(ctx context.Context, id string) error
}
