package models

// Task is one entry in a user's task list.
type Task struct {
	// ID is the unique identifier for the task (UUID format).
	ID string `json:"id"`

	// UserID is the owner of the task.
	UserID string `json:"user_id"`

	// Title is the short name of the task.
	Title string `json:"title"`

	// Summary is a free-form description.
	Summary string `json:"summary"`

	// DueDate is the date as entered by the user (usually YYYY-MM-DD).
	// It is kept as text; no date validation is performed.
	DueDate string `json:"due_date"`

	// CreatedAt is the Unix timestamp when the task was added.
	CreatedAt int64 `json:"created_at"`
}

// NewTaskData is what a user enters when creating a task.
type NewTaskData struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	DueDate string `json:"due_date"`
}
