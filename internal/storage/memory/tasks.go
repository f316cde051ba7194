package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/investcalc/internal/models"
	"github.com/mmynk/investcalc/internal/storage"
)

// Ensure TaskStore implements storage.TaskStore
var _ storage.TaskStore = (*TaskStore)(nil)

// TaskStore keeps all users' tasks in a single newest-first list.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []*models.Task
	now   func() time.Time
}

// NewTaskStore creates an empty TaskStore.
func NewTaskStore() *TaskStore {
	return &TaskStore{now: time.Now}
}

// Close is a no-op; there is nothing to release.
func (s *TaskStore) Close() error {
	return nil
}

// AddTask prepends a new task for userID.
func (s *TaskStore) AddTask(ctx context.Context, userID string, data models.NewTaskData) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	task := &models.Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     data.Title,
		Summary:   data.Summary,
		DueDate:   data.DueDate,
		CreatedAt: s.now().Unix(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]*models.Task, 0, len(s.tasks)+1)
	tasks = append(tasks, task)
	s.tasks = append(tasks, s.tasks...)

	out := *task
	return &out, nil
}

// RemoveTask deletes a task by ID.
func (s *TaskStore) RemoveTask(ctx context.Context, taskID string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to remove task: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(s.tasks) {
		return fmt.Errorf("%w: %s", storage.ErrTaskNotFound, taskID)
	}
	s.tasks = kept
	return nil
}

// UserTasks returns copies of userID's tasks, newest first. The slice is
// never nil.
func (s *TaskStore) UserTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := []*models.Task{}
	for _, t := range s.tasks {
		if t.UserID == userID {
			out := *t
			tasks = append(tasks, &out)
		}
	}
	return tasks, nil
}
