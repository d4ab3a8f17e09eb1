package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-task-management/internal/task"
	repo "voice-task-management/internal/task/repository"
)

// List returns a filtered, paginated list of tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	if input.Limit < 0 || input.Offset < 0 {
		return task.ListOutput{}, task.ErrInvalidPagination
	}
	limit := input.Limit
	if limit == 0 {
		limit = task.DefaultListLimit
	}
	if limit > task.MaxListLimit {
		limit = task.MaxListLimit
	}

	if input.Status != "" && !validStatuses[input.Status] {
		return task.ListOutput{}, fmt.Errorf("%w: unknown status %q", task.ErrInvalidInput, input.Status)
	}
	if input.Priority != "" && !validPriorities[input.Priority] {
		return task.ListOutput{}, fmt.Errorf("%w: unknown priority %q", task.ErrInvalidInput, input.Priority)
	}

	opt := repo.ListTasksOptions{
		Status:   input.Status,
		Priority: input.Priority,
		Search:   input.Search,
		Limit:    limit,
		Offset:   input.Offset,
	}

	if due := strings.TrimSpace(input.Due); due != "" {
		start, end, err := uc.dateMath.DayWindow(due, uc.now())
		if err != nil {
			return task.ListOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidDueFilter, due)
		}
		opt.DueFrom, opt.DueTo = &start, &end
	}

	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: input.Offset,
	}, nil
}
