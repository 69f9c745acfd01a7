package http

import (
	"errors"
	"net/http"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error to its HTTP status: closed ordering
// windows are 403, duplicate active orders and unique collisions 409, missing
// objects 404, storage contention that outlived its retries 503, rejected
// input 400, everything else 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrActionIsForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrTransient):
		status = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
