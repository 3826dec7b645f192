package background

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestInMemoryTaskStoreLifecycle(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	result := &TaskResult{
		ProcessID: "proc-1",
		Type:      TaskTypeMatchAnalysis,
		Status:    TaskStatusAccepted,
		CreatedAt: time.Now(),
	}

	if err := store.Store(ctx, result); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	got, err := store.Get(ctx, "proc-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Status != TaskStatusAccepted {
		t.Fatalf("status = %s, want %s", got.Status, TaskStatusAccepted)
	}

	got.Status = TaskStatusSuccess
	if err := store.Update(ctx, got); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, err := store.Get(ctx, "proc-1")
	if err != nil {
		t.Fatalf("Get after update failed: %v", err)
	}
	if updated.Status != TaskStatusSuccess {
		t.Fatalf("status after update = %s", updated.Status)
	}

	if err := store.Delete(ctx, "proc-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "proc-1"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}
}

func TestInMemoryTaskStoreUnknownProcess(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("Get: expected ErrTaskNotFound, got %v", err)
	}
	if err := store.Update(ctx, &TaskResult{ProcessID: "missing"}); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("Update: expected ErrTaskNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("Delete: expected ErrTaskNotFound, got %v", err)
	}
}

func TestInMemoryTaskStoreCleanup(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	old := &TaskResult{
		ProcessID: "old",
		Type:      TaskTypeMatchAnalysis,
		Status:    TaskStatusSuccess,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	fresh := &TaskResult{
		ProcessID: "fresh",
		Type:      TaskTypeMatchAnalysis,
		Status:    TaskStatusProcessing,
		CreatedAt: time.Now(),
	}

	if err := store.Store(ctx, old); err != nil {
		t.Fatalf("Store old failed: %v", err)
	}
	if err := store.Store(ctx, fresh); err != nil {
		t.Fatalf("Store fresh failed: %v", err)
	}

	if err := store.Cleanup(ctx, 24*time.Hour); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}

	if _, err := store.Get(ctx, "old"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatal("expired task should have been removed")
	}
	if _, err := store.Get(ctx, "fresh"); err != nil {
		t.Fatalf("fresh task should survive cleanup: %v", err)
	}

	results, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 task after cleanup, got %d", len(results))
	}
}
