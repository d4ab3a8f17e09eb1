package model

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

// TaskPriority ranks how urgent a task is.
type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "Low"
	TaskPriorityMedium   TaskPriority = "Medium"
	TaskPriorityHigh     TaskPriority = "High"
	TaskPriorityCritical TaskPriority = "Critical"
)

// Task represents a stored task.
type Task struct {
	ID              string        // UUID
	Title           string        // Never empty
	Description     *string       // Optional free text
	Status          TaskStatus    // Defaults to To Do
	Priority        TaskPriority  // Defaults to Medium
	DueDate         *time.Time    // UTC, nil when the task has no deadline
	Source          CaptureSource // Channel the task came from
	Transcript      string        // Spoken input the task was built from, if any
	CalendarEventID string        // Google Calendar event ID when synced
	CalendarLink    string        // Deep link to the calendar event
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasDueDate reports whether the task has a deadline.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil && !t.DueDate.IsZero()
}
