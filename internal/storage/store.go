// Package storage provides abstractions for holding application state.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/investcalc/internal/models"
)

// ErrTaskNotFound is returned when a task ID does not exist.
var ErrTaskNotFound = errors.New("task not found")

// ResultStore holds the most recent projection.
// The held result is replaced wholesale; readers never observe a partial update.
type ResultStore interface {
	// Get returns the current projection and whether one has been set.
	Get() ([]models.YearRecord, bool)

	// Replace swaps in a new projection and notifies subscribers.
	Replace(records []models.YearRecord)

	// Subscribe registers fn to be called after every Replace.
	// The returned function removes the subscription.
	Subscribe(fn func([]models.YearRecord)) (cancel func())
}

// TaskStore defines the operations on users' task lists.
// This abstraction allows swapping the backing store without changing the service layer.
type TaskStore interface {
	// AddTask creates a task for userID and returns it.
	// The task's ID and CreatedAt are populated by the store.
	AddTask(ctx context.Context, userID string, data models.NewTaskData) (*models.Task, error)

	// RemoveTask deletes a task by ID.
	// Returns ErrTaskNotFound if no such task exists.
	RemoveTask(ctx context.Context, taskID string) error

	// UserTasks lists a user's tasks, newest first.
	UserTasks(ctx context.Context, userID string) ([]*models.Task, error)

	// Close releases any resources held by the store.
	Close() error
}
