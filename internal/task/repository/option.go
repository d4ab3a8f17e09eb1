package repository

import (
	"time"

	"voice-task-management/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title       string
	Description *string
	Status      model.TaskStatus
	Priority    model.TaskPriority
	DueDate     *time.Time
	Source      model.CaptureSource
	Transcript  string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID              string
	CalendarEventID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	Status   model.TaskStatus
	Priority model.TaskPriority
	Search   string     // case-insensitive substring of title or description
	DueFrom  *time.Time // inclusive
	DueTo    *time.Time // inclusive
	Limit    int
	Offset   int
	OrderBy  string
}

// UpdateTaskOptions replaces every mutable column of an existing Task.
type UpdateTaskOptions struct {
	ID              string
	Title           string
	Description     *string
	Status          model.TaskStatus
	Priority        model.TaskPriority
	DueDate         *time.Time
	CalendarEventID string
	CalendarLink    string
}
