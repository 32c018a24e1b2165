package storage

import (
	"context"
	"testing"

	"simplenn/internal/model"
)

func testRun(id, createdAt string) model.TrainingRun {
	return Stamp(model.TrainingRun{
		ID:           id,
		CreatedAtUTC: createdAt,
		Label:        "xor",
		Topology:     []int{2, 3, 1},
		Policy:       "geometric",
		Seed:         7,
		Epochs: []model.EpochRecord{
			{Epoch: 0, BaseError: 4, Error: 3.5, Multiplier: 1, Candidates: 3},
			{Epoch: 1, BaseError: 3.5, Error: 2.25, Multiplier: 1 / 1.05, Candidates: 1},
		},
		Stats: model.RunStats{Epochs: 2, InitialError: 4, FinalError: 2.25},
	})
}

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	older := testRun("run-a", "2026-01-01T00:00:00Z")
	newer := testRun("run-b", "2026-01-02T00:00:00Z")
	for _, run := range []model.TrainingRun{older, newer} {
		if err := store.SaveRun(ctx, run); err != nil {
			t.Fatalf("save run %s: %v", run.ID, err)
		}
	}

	loaded, ok, err := store.GetRun(ctx, older.ID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok {
		t.Fatalf("expected run %s", older.ID)
	}
	if loaded.Label != "xor" || len(loaded.Topology) != 3 || len(loaded.Epochs) != 2 {
		t.Fatalf("unexpected run loaded: %+v", loaded)
	}
	if loaded.Epochs[1].Error != 2.25 || loaded.Stats.FinalError != 2.25 {
		t.Fatalf("unexpected epoch history: %+v", loaded.Epochs)
	}

	if _, ok, err := store.GetRun(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing run: ok=%t err=%v", ok, err)
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != newer.ID || runs[1].ID != older.ID {
		t.Fatalf("unexpected run order: %+v", runs)
	}
	limited, err := store.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != newer.ID {
		t.Fatalf("unexpected limited runs: %+v", limited)
	}

	updated := older
	updated.Label = "xor-rerun"
	if err := store.SaveRun(ctx, updated); err != nil {
		t.Fatalf("overwrite run: %v", err)
	}
	loaded, _, err = store.GetRun(ctx, older.ID)
	if err != nil {
		t.Fatalf("get overwritten run: %v", err)
	}
	if loaded.Label != "xor-rerun" {
		t.Fatalf("expected overwrite, got label %q", loaded.Label)
	}

	if err := store.DeleteRun(ctx, older.ID); err != nil {
		t.Fatalf("delete run: %v", err)
	}
	if _, ok, err := store.GetRun(ctx, older.ID); err != nil || ok {
		t.Fatalf("expected deleted run: ok=%t err=%v", ok, err)
	}

	if err := store.SaveRun(ctx, model.TrainingRun{}); err == nil {
		t.Fatal("expected missing id error")
	}
}
