package telegram

import (
	"net/http"

	pkgErrors "voice-task-management/pkg/errors"
)

var (
	errWrongSecret = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid webhook secret")
	errWrongUpdate = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid update payload")
)
