package usecase

import (
	"context"
	"strings"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailOutput, error) {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update. Returns ErrNoFieldsToUpdate for an empty
// update and ErrTaskNotFound when the task does not exist.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	if input.Empty() {
		return task.UpdateOutput{}, task.ErrNoFieldsToUpdate
	}

	existing, err := uc.getTask(ctx, input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	fields := taskFields{
		Title:       existing.Title,
		Description: existing.Description,
		Status:      existing.Status,
		Priority:    existing.Priority,
	}
	if input.Title != nil {
		fields.Title = strings.TrimSpace(*input.Title)
	}
	if input.ClearDescription {
		fields.Description = nil
	} else if input.Description != nil {
		fields.Description = input.Description
	}
	if input.Status != nil {
		fields.Status = *input.Status
	}
	if input.Priority != nil {
		fields.Priority = *input.Priority
	}
	if err := uc.check(fields); err != nil {
		return task.UpdateOutput{}, err
	}

	due := existing.DueDate
	if input.ClearDueDate {
		due = nil
	} else if input.DueDate != nil {
		due = utcPtr(input.DueDate)
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              existing.ID,
		Title:           fields.Title,
		Description:     fields.Description,
		Status:          fields.Status,
		Priority:        fields.Priority,
		DueDate:         due,
		CalendarEventID: existing.CalendarEventID,
		CalendarLink:    existing.CalendarLink,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	if t.ID == "" {
		return task.UpdateOutput{}, task.ErrTaskNotFound
	}

	if dueChanged(existing.DueDate, t.DueDate) || (t.Title != existing.Title && t.CalendarEventID != "") {
		t = uc.syncCalendar(ctx, t)
	}

	return task.UpdateOutput{Task: t}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.getTask(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}

	if existing.CalendarEventID != "" {
		uc.removeCalendarEvent(ctx, existing)
	}
	return nil
}

func (uc *implUseCase) getTask(ctx context.Context, id string) (model.Task, error) {
	if strings.TrimSpace(id) == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getTask GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
