package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrInvalidInput      = errors.New("invalid task input")
	ErrInvalidDueFilter  = errors.New("invalid due date filter")
	ErrInvalidPagination = errors.New("invalid pagination")
)
