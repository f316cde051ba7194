package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/investcalc/internal/metrics"
	"github.com/mmynk/investcalc/internal/models"
	"github.com/mmynk/investcalc/internal/storage"
	"github.com/mmynk/investcalc/pkg/api"
	"github.com/mmynk/investcalc/pkg/api/apiconnect"
)

var (
	errMissingUserID = errors.New("user_id is required")
	errMissingTaskID = errors.New("task_id is required")
)

// Ensure TaskService implements the Connect handler interface
var _ apiconnect.TaskServiceHandler = (*TaskService)(nil)

// TaskService implements the Connect TaskService
type TaskService struct {
	store   storage.TaskStore
	metrics *metrics.Metrics
}

// NewTaskService creates a new TaskService with the given storage backend.
func NewTaskService(store storage.TaskStore, m *metrics.Metrics) *TaskService {
	return &TaskService{store: store, metrics: m}
}

// AddTask creates a task for the requesting user.
func (s *TaskService) AddTask(ctx context.Context, req *connect.Request[api.AddTaskRequest]) (*connect.Response[api.AddTaskResponse], error) {
	slog.Info("AddTask request received",
		"user_id", req.Msg.UserID,
		"title", req.Msg.Title,
	)

	if req.Msg.UserID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingUserID)
	}

	task, err := s.store.AddTask(ctx, req.Msg.UserID, models.NewTaskData{
		Title:   req.Msg.Title,
		Summary: req.Msg.Summary,
		DueDate: req.Msg.DueDate,
	})
	if err != nil {
		slog.Error("AddTask failed", "user_id", req.Msg.UserID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.metrics.TaskAdded()

	slog.Info("Task created", "task_id", task.ID, "user_id", task.UserID)

	return connect.NewResponse(&api.AddTaskResponse{Task: task}), nil
}

// CompleteTask removes a finished task.
func (s *TaskService) CompleteTask(ctx context.Context, req *connect.Request[api.CompleteTaskRequest]) (*connect.Response[api.CompleteTaskResponse], error) {
	slog.Info("CompleteTask request received", "task_id", req.Msg.TaskID)

	if req.Msg.TaskID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingTaskID)
	}

	if err := s.store.RemoveTask(ctx, req.Msg.TaskID); err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			slog.Warn("CompleteTask: task not found", "task_id", req.Msg.TaskID)
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		slog.Error("CompleteTask failed", "task_id", req.Msg.TaskID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.metrics.TaskCompleted()

	slog.Info("Task completed", "task_id", req.Msg.TaskID)

	return connect.NewResponse(&api.CompleteTaskResponse{}), nil
}

// ListTasks returns a user's tasks, newest first.
func (s *TaskService) ListTasks(ctx context.Context, req *connect.Request[api.ListTasksRequest]) (*connect.Response[api.ListTasksResponse], error) {
	slog.Info("ListTasks request received", "user_id", req.Msg.UserID)

	if req.Msg.UserID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errMissingUserID)
	}

	tasks, err := s.store.UserTasks(ctx, req.Msg.UserID)
	if err != nil {
		slog.Error("ListTasks failed", "user_id", req.Msg.UserID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("ListTasks successful", "user_id", req.Msg.UserID, "count", len(tasks))

	return connect.NewResponse(&api.ListTasksResponse{Tasks: tasks}), nil
}
