package voiceparser

import (
	"encoding/json"
	"time"
)

// Status is the workflow state of a task.
type Status string

const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// UntitledTask is the title used when nothing usable is left of the transcript.
const UntitledTask = "Untitled Task"

// TimestampFormat is the wire format of DueDate: ISO-8601, UTC, milliseconds.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// InterpretedTask is the structured draft produced from one transcript.
// Description is always nil; the engine never fills it in.
type InterpretedTask struct {
	Title       string
	Description *string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	Transcript  string
}

// MarshalJSON renders the draft in its wire shape, with a null dueDate when unset.
func (t InterpretedTask) MarshalJSON() ([]byte, error) {
	var due *string
	if t.DueDate != nil {
		s := FormatTimestamp(*t.DueDate)
		due = &s
	}

	return json.Marshal(struct {
		Title       string   `json:"title"`
		Description *string  `json:"description"`
		Status      Status   `json:"status"`
		Priority    Priority `json:"priority"`
		DueDate     *string  `json:"dueDate"`
		Transcript  string   `json:"transcript"`
	}{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     due,
		Transcript:  t.Transcript,
	})
}

// FormatTimestamp formats t as TimestampFormat in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// utterance is the pair every extractor receives: the transcript as spoken
// and a lowercased copy for vocabulary matching.
type utterance struct {
	original string
	lower    string
}
