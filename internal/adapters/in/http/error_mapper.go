package http

import (
	"errors"
	"net/http"

	"sendit/internal/core/application/usecases/commands"
	"sendit/internal/core/domain/model/auth"
	"sendit/internal/core/domain/model/delivery"
	"sendit/internal/core/domain/model/pricing"
	"sendit/internal/core/domain/services"
	"sendit/internal/generated/servers"
	"sendit/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCodeFor maps domain and application errors to HTTP status codes.
// Order matters: ownership errors must stay 403 even though the transport
// could also treat them as conflicts.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, delivery.ErrNotOwner),
		errors.Is(err, delivery.ErrForbiddenTransition),
		errors.Is(err, auth.ErrForbiddenRole):
		return http.StatusForbidden

	case errors.Is(err, delivery.ErrIllegalTransition),
		errors.Is(err, delivery.ErrNotModifiable),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, commands.ErrEmailAlreadyRegistered):
		return http.StatusConflict

	case errors.Is(err, pricing.ErrInvalidMeasurement),
		errors.Is(err, pricing.ErrRateTableUnconfigured),
		errors.Is(err, services.ErrInvalidAssignee),
		errors.Is(err, commands.ErrNothingToCorrect),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// renderError writes the JSON error body for err. Internal errors are not
// echoed back to the client.
func renderError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}
