package http

import (
	"errors"
	"fmt"
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	"voice-task-management/pkg/response"
)

// Accepted dueDate layouts, most precise first. Values without a zone are UTC.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDueDate(s string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("dueDate: %q is not an ISO-8601 date", s)
}

// --- Request DTOs ---

type createReq struct {
	Title       string  `json:"title"       binding:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`

	due *time.Time
}

func (r *createReq) validate() error {
	if r.DueDate == nil || *r.DueDate == "" {
		return nil
	}
	due, err := parseDueDate(*r.DueDate)
	if err != nil {
		return err
	}
	r.due = &due
	return nil
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      model.TaskStatus(r.Status),
		Priority:    model.TaskPriority(r.Priority),
		DueDate:     r.due,
		Source:      model.SourceAPI,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Search   string `form:"search"`
	DueDate  string `form:"dueDate"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) validate() error {
	if r.Limit < 0 || r.Offset < 0 {
		return errors.New("limit and offset must not be negative")
	}
	return nil
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status:   model.TaskStatus(r.Status),
		Priority: model.TaskPriority(r.Priority),
		Search:   r.Search,
		Due:      r.DueDate,
		Limit:    r.Limit,
		Offset:   r.Offset,
	}
}

// ---

// updateReq is built from the raw JSON object so that an explicit null
// (clear the field) can be told apart from an absent key (leave it alone).
type updateReq struct {
	ID string

	input task.UpdateInput
}

func (r updateReq) toInput() task.UpdateInput {
	in := r.input
	in.ID = r.ID
	return in
}

// --- Response DTOs ---

// TaskResp is the JSON shape of a task.
type TaskResp struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  *string             `json:"description"`
	Status       string              `json:"status"`
	Priority     string              `json:"priority"`
	DueDate      *response.Timestamp `json:"dueDate"`
	Source       string              `json:"source,omitempty"`
	Transcript   string              `json:"transcript,omitempty"`
	CalendarLink string              `json:"calendarLink,omitempty"`
	CreatedAt    response.Timestamp  `json:"createdAt"`
	UpdatedAt    response.Timestamp  `json:"updatedAt"`
}

// NewTaskResp renders a task for API responses; other delivery layers reuse it.
func NewTaskResp(t model.Task) TaskResp {
	return TaskResp{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		DueDate:      response.NewTimestamp(t.DueDate),
		Source:       string(t.Source),
		Transcript:   t.Transcript,
		CalendarLink: t.CalendarLink,
		CreatedAt:    response.Timestamp(t.CreatedAt),
		UpdatedAt:    response.Timestamp(t.UpdatedAt),
	}
}

type createResp struct {
	Task TaskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: NewTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []TaskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]TaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = NewTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task TaskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: NewTaskResp(out.Task)}
}

type updateResp struct {
	Task TaskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: NewTaskResp(out.Task)}
}
