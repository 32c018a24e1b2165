package storage

import (
	"context"
	"testing"
)

func TestMemoryStoreRunRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	exerciseStore(t, store)
}

func TestMemoryStoreRequiresInit(t *testing.T) {
	store := NewMemoryStore()
	if err := store.SaveRun(context.Background(), testRun("r", "")); err == nil {
		t.Fatal("expected uninitialized store error")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	run := testRun("r", "2026-01-01T00:00:00Z")
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("save: %v", err)
	}
	run.Epochs[0].Error = 99

	loaded, _, err := store.GetRun(ctx, "r")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Epochs[0].Error != 3.5 {
		t.Fatal("store aliases caller epochs")
	}
	loaded.Topology[0] = 42
	again, _, _ := store.GetRun(ctx, "r")
	if again.Topology[0] != 2 {
		t.Fatal("store returned aliased topology")
	}
}
