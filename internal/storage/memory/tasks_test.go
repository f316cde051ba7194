package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmynk/investcalc/internal/models"
	"github.com/mmynk/investcalc/internal/storage"
)

func TestTaskStore(t *testing.T) {
	store := NewTaskStore()
	defer store.Close()

	ctx := context.Background()

	t.Run("AddTask generates ID and CreatedAt", func(t *testing.T) {
		task, err := store.AddTask(ctx, "u1", models.NewTaskData{
			Title:   "Master Go",
			Summary: "Learn the basics and advanced features",
			DueDate: "2026-12-31",
		})
		if err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}

		if task.ID == "" {
			t.Error("Expected task ID to be generated")
		}
		if task.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if task.UserID != "u1" {
			t.Errorf("UserID mismatch: got %s, want u1", task.UserID)
		}
		if task.Title != "Master Go" {
			t.Errorf("Title mismatch: got %s", task.Title)
		}
	})

	t.Run("UserTasks lists newest first and filters by user", func(t *testing.T) {
		second, err := store.AddTask(ctx, "u1", models.NewTaskData{Title: "Build first prototype"})
		if err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
		if _, err := store.AddTask(ctx, "u2", models.NewTaskData{Title: "Someone else's task"}); err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}

		tasks, err := store.UserTasks(ctx, "u1")
		if err != nil {
			t.Fatalf("UserTasks failed: %v", err)
		}
		if len(tasks) != 2 {
			t.Fatalf("Expected 2 tasks for u1, got %d", len(tasks))
		}
		if tasks[0].ID != second.ID {
			t.Errorf("Expected newest task first, got %s", tasks[0].Title)
		}
		for _, task := range tasks {
			if task.UserID != "u1" {
				t.Errorf("Task %s belongs to %s", task.ID, task.UserID)
			}
		}
	})

	t.Run("UserTasks for unknown user is empty", func(t *testing.T) {
		tasks, err := store.UserTasks(ctx, "nobody")
		if err != nil {
			t.Fatalf("UserTasks failed: %v", err)
		}
		if tasks == nil || len(tasks) != 0 {
			t.Errorf("Expected empty non-nil slice, got %#v", tasks)
		}
	})

	t.Run("RemoveTask deletes only that task", func(t *testing.T) {
		before, _ := store.UserTasks(ctx, "u1")
		if err := store.RemoveTask(ctx, before[0].ID); err != nil {
			t.Fatalf("RemoveTask failed: %v", err)
		}

		after, _ := store.UserTasks(ctx, "u1")
		if len(after) != len(before)-1 {
			t.Fatalf("Expected %d tasks, got %d", len(before)-1, len(after))
		}
		for _, task := range after {
			if task.ID == before[0].ID {
				t.Error("Removed task is still listed")
			}
		}

		others, _ := store.UserTasks(ctx, "u2")
		if len(others) != 1 {
			t.Errorf("Expected u2 to keep 1 task, got %d", len(others))
		}
	})

	t.Run("RemoveTask returns ErrTaskNotFound for unknown ID", func(t *testing.T) {
		err := store.RemoveTask(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrTaskNotFound) {
			t.Errorf("Expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("returned tasks are copies", func(t *testing.T) {
		tasks, _ := store.UserTasks(ctx, "u2")
		tasks[0].Title = "changed"

		again, _ := store.UserTasks(ctx, "u2")
		if again[0].Title == "changed" {
			t.Error("Caller mutation leaked into store")
		}
	})
}

func TestTaskStoreCancelledContext(t *testing.T) {
	store := NewTaskStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.AddTask(ctx, "u1", models.NewTaskData{Title: "x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("AddTask: expected context.Canceled, got %v", err)
	}
	if _, err := store.UserTasks(ctx, "u1"); !errors.Is(err, context.Canceled) {
		t.Errorf("UserTasks: expected context.Canceled, got %v", err)
	}
	if err := store.RemoveTask(ctx, "id"); !errors.Is(err, context.Canceled) {
		t.Errorf("RemoveTask: expected context.Canceled, got %v", err)
	}
}

func TestTaskStoreCreatedAt(t *testing.T) {
	store := NewTaskStore()
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	task, err := store.AddTask(context.Background(), "u1", models.NewTaskData{Title: "x"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if task.CreatedAt != fixed.Unix() {
		t.Errorf("CreatedAt = %d, want %d", task.CreatedAt, fixed.Unix())
	}
}
