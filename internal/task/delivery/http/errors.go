package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/task"
	pkgErrors "voice-task-management/pkg/errors"
	"voice-task-management/pkg/response"
)

var (
	errTaskNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
	errNoFieldsToUpdate = pkgErrors.NewHTTPError(http.StatusBadRequest, "No fields to update")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// It returns nil for errors the client did not cause.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, task.ErrNoFieldsToUpdate):
		return errNoFieldsToUpdate
	case errors.Is(err, task.ErrInvalidInput),
		errors.Is(err, task.ErrInvalidDueFilter),
		errors.Is(err, task.ErrInvalidPagination):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return nil
	}
}

// respondError writes the mapped error, or a 500 for anything unexpected.
func (h *handler) respondError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped)
		return
	}
	h.l.Errorf(c.Request.Context(), "task.delivery.http: unexpected error: %v", err)
	response.InternalError(c, err)
}
