package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
)

var (
	validStatuses = map[model.TaskStatus]bool{
		model.TaskStatusToDo:       true,
		model.TaskStatusInProgress: true,
		model.TaskStatusDone:       true,
	}
	validPriorities = map[model.TaskPriority]bool{
		model.TaskPriorityLow:      true,
		model.TaskPriorityMedium:   true,
		model.TaskPriorityHigh:     true,
		model.TaskPriorityCritical: true,
	}
)

// taskFields is the validated shape shared by create and update.
type taskFields struct {
	Title       string             `validate:"required,max=255"`
	Description *string            `validate:"omitempty,max=2000"`
	Status      model.TaskStatus   `validate:"task_status"`
	Priority    model.TaskPriority `validate:"task_priority"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("task_status", func(fl validator.FieldLevel) bool {
		return validStatuses[model.TaskStatus(fl.Field().String())]
	})
	_ = v.RegisterValidation("task_priority", func(fl validator.FieldLevel) bool {
		return validPriorities[model.TaskPriority(fl.Field().String())]
	})
	return v
}

// check validates f and wraps failures in task.ErrInvalidInput.
func (uc *implUseCase) check(f taskFields) error {
	err := uc.validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", task.ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", task.ErrInvalidInput, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "task_status":
		return fmt.Sprintf("status must be one of %q, %q, %q",
			model.TaskStatusToDo, model.TaskStatusInProgress, model.TaskStatusDone)
	case "task_priority":
		return fmt.Sprintf("priority must be one of %q, %q, %q, %q",
			model.TaskPriorityLow, model.TaskPriorityMedium, model.TaskPriorityHigh, model.TaskPriorityCritical)
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
