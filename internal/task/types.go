package task

import (
	"time"

	"voice-task-management/internal/model"
)

// Pagination bounds for List.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// MaxTitleLength is the longest title, in characters, a task may carry.
const MaxTitleLength = 255

// --- UseCase Inputs ---

// CreateInput holds the fields of a new task. Empty Status and Priority
// fall back to To Do and Medium.
type CreateInput struct {
	Title       string
	Description *string
	Status      model.TaskStatus
	Priority    model.TaskPriority
	DueDate     *time.Time
	Source      model.CaptureSource
	Transcript  string
}

// ListInput filters and paginates tasks. Due accepts YYYY-MM-DD or a relative
// phrase such as "today", "tomorrow", "in 3 days" or "next friday".
type ListInput struct {
	Status   model.TaskStatus
	Priority model.TaskPriority
	Search   string
	Due      string
	Limit    int
	Offset   int
}

// UpdateInput is a partial update: nil fields are left alone.
// ClearDescription and ClearDueDate set the field to null.
type UpdateInput struct {
	ID               string
	Title            *string
	Description      *string
	ClearDescription bool
	Status           *model.TaskStatus
	Priority         *model.TaskPriority
	DueDate          *time.Time
	ClearDueDate     bool
}

// Empty reports whether the update carries no changes at all.
func (in UpdateInput) Empty() bool {
	return in.Title == nil && in.Description == nil && !in.ClearDescription &&
		in.Status == nil && in.Priority == nil && in.DueDate == nil && !in.ClearDueDate
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}
