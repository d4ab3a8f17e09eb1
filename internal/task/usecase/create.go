package usecase

import (
	"context"
	"strings"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
)

// Create stores a new task, applying the To Do / Medium defaults, and mirrors
// its due date to the calendar when sync is enabled.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	fields := taskFields{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
	}
	if fields.Status == "" {
		fields.Status = model.TaskStatusToDo
	}
	if fields.Priority == "" {
		fields.Priority = model.TaskPriorityMedium
	}
	if err := uc.check(fields); err != nil {
		return task.CreateOutput{}, err
	}

	source := input.Source
	if source == "" {
		source = model.SourceManual
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:       fields.Title,
		Description: fields.Description,
		Status:      fields.Status,
		Priority:    fields.Priority,
		DueDate:     utcPtr(input.DueDate),
		Source:      source,
		Transcript:  input.Transcript,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	if t.HasDueDate() {
		t = uc.syncCalendar(ctx, t)
	}

	uc.l.Infof(ctx, "uc.Create: created task id=%s source=%s", t.ID, t.Source)
	return task.CreateOutput{Task: t}, nil
}
