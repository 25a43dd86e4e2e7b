package errs

// Error taxonomy shared by the usecase and handler layers.
// Concrete errors are attached to these with Mark so callers can branch with Is.
var (
	ErrValidationFailed        = New("validation failed")
	ErrCapacityExceeded        = New("capacity exceeded")
	ErrDatesUnavailable        = New("dates unavailable")
	ErrNotFound                = New("not found")
	ErrCodeGenerationExhausted = New("booking code generation exhausted")

	ErrConflict     = New("conflict")
	ErrUnauthorized = New("unauthorized")
	ErrForbidden    = New("forbidden")
)
