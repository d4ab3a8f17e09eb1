package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/task"
	"voice-task-management/internal/voice"
	pkgErrors "voice-task-management/pkg/errors"
	"voice-task-management/pkg/response"
)

var (
	errTranscriptRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Transcript is required")
	errWrongBody          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voice.ErrEmptyTranscript):
		return errTranscriptRequired
	case errors.Is(err, task.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return nil
	}
}

func (h *handler) respondError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped)
		return
	}
	h.l.Errorf(c.Request.Context(), "voice.delivery.http: unexpected error: %v", err)
	response.InternalError(c, err)
}
