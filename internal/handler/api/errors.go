package api

import (
	"net/http"

	"glamping-api/internal/handler/httperr"
	"glamping-api/internal/handler/validation"
	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/usecase/commands"
	"glamping-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidData     = "The given data was invalid."
	msgInvalidFormat   = "Invalid request format"
	msgInternal        = "Internal server error"
	msgPackageNotFound = "Package not found"
)

// abortWithBindError answers a failed ShouldBind call.
func abortWithBindError(c *gin.Context, err error) {
	if fields, ok := validation.FieldErrors(err); ok {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msgInvalidData, fields)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidFormat, nil)
}

// abortWithUsecaseError maps the usecase error taxonomy onto HTTP statuses.
// notFound is the message used when the error is marked errs.ErrNotFound.
func abortWithUsecaseError(c *gin.Context, err error, notFound string) {
	if fields, ok := shared.AsValidationError(err); ok {
		msg := msgInvalidData
		switch {
		case errs.Is(err, errs.ErrCapacityExceeded):
			msg = firstMessage(fields)
		case errs.Is(err, errs.ErrDatesUnavailable):
			msg = commands.MsgDatesUnavailable
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msg, fields)
		return
	}

	switch {
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notFound, nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, conflictMessage(err), nil)
	case errs.Is(err, errs.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthenticated.", nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}

func conflictMessage(err error) string {
	switch {
	case errs.Is(err, commands.ErrPackageHasReservations):
		return "Cannot delete package with existing reservations."
	case errs.Is(err, commands.ErrLocationHasPackages):
		return "Cannot delete location with existing packages."
	}
	return "Conflict"
}

func firstMessage(fields shared.FieldErrors) string {
	for _, msgs := range fields {
		if len(msgs) > 0 {
			return msgs[0]
		}
	}
	return msgInvalidData
}
