package commands

import (
	"errors"
	"fmt"
	"strings"

	"glamping-api/internal/domain/catalog"
	"glamping-api/internal/domain/reservation"
	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/usecase/shared"
)

const (
	MsgDatesUnavailable = "Selected dates are not available. Please choose different dates."
	MsgInvalidPackage   = "The selected package id is invalid."
	MsgInvalidLocation  = "The selected location id is invalid."
)

// fieldMessage renders a domain rule violation the way API clients expect to read it.
func fieldMessage(field string, err error) string {
	label := strings.ReplaceAll(field, "_", " ")
	switch {
	case errors.Is(err, reservation.ErrInvalidPackage):
		return MsgInvalidPackage
	case errors.Is(err, reservation.ErrInvalidDate):
		return fmt.Sprintf("The %s field must be a valid date.", label)
	case errors.Is(err, reservation.ErrCheckInBeforeToday):
		return fmt.Sprintf("The %s field must be a date after or equal to today.", label)
	case errors.Is(err, reservation.ErrCheckOutNotAfterCheckIn):
		return fmt.Sprintf("The %s field must be a date after check in date.", label)
	case errors.Is(err, reservation.ErrGuestNameRequired),
		errors.Is(err, reservation.ErrGuestPhoneRequired),
		errors.Is(err, catalog.ErrNameRequired):
		return fmt.Sprintf("The %s field is required.", label)
	case errors.Is(err, reservation.ErrGuestNameTooLong),
		errors.Is(err, reservation.ErrGuestEmailTooLong),
		errors.Is(err, catalog.ErrNameTooLong):
		return fmt.Sprintf("The %s field must not be greater than 255 characters.", label)
	case errors.Is(err, reservation.ErrGuestPhoneTooLong):
		return fmt.Sprintf("The %s field must not be greater than 20 characters.", label)
	case errors.Is(err, catalog.ErrShortDescriptionTooLong):
		return fmt.Sprintf("The %s field must not be greater than %d characters.", label, catalog.MaxShortDescriptionLength)
	case errors.Is(err, reservation.ErrGuestEmailInvalid):
		return fmt.Sprintf("The %s field must be a valid email address.", label)
	case errors.Is(err, reservation.ErrInvalidGuestsCount), errors.Is(err, catalog.ErrInvalidCapacity):
		return fmt.Sprintf("The %s field must be at least 1.", label)
	case errors.Is(err, catalog.ErrNegativePrice):
		return fmt.Sprintf("The %s field must be at least 0.", label)
	case errors.Is(err, catalog.ErrLocationRequired):
		return MsgInvalidLocation
	case errors.Is(err, catalog.ErrInvalidSlug):
		return fmt.Sprintf("The %s field must contain at least one letter or number.", label)
	}
	return err.Error()
}

// asValidationError converts domain field maps into a marked validation error.
// Any other error is returned unchanged.
func asValidationError(err error) error {
	var fields map[string]error
	var resFields reservation.InvalidFields
	var catFields catalog.InvalidFields
	switch {
	case errors.As(err, &resFields):
		fields = resFields
	case errors.As(err, &catFields):
		fields = catFields
	default:
		return err
	}

	out := shared.FieldErrors{}
	for field, fieldErr := range fields {
		out.Add(field, fieldMessage(field, fieldErr))
	}
	return shared.NewValidationError(out)
}

func capacityExceeded(err error) error {
	var ce *reservation.CapacityExceededError
	if !errors.As(err, &ce) {
		return err
	}
	return errs.Mark(
		shared.NewValidationError(shared.FieldErrors{reservation.FieldGuestsCount: {ce.Error()}}),
		errs.ErrCapacityExceeded,
	)
}

func datesUnavailable() error {
	return errs.Mark(
		shared.NewValidationError(shared.FieldErrors{reservation.FieldCheckInDate: {MsgDatesUnavailable}}),
		errs.ErrDatesUnavailable,
	)
}
