package scheduling

import (
	"errors"
	"fmt"
)

// Domain errors surfaced to the HTTP boundary, which maps them to status
// codes: validation -> 400, not found -> 404, ownership -> 403,
// slot conflict -> 409.
var (
	ErrServiceNotFound   = errors.New("service not found or inactive")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrNotOwner          = errors.New("booking belongs to another photographer")
	ErrSlotConflict      = errors.New("slot no longer available")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// ValidationError signals missing or malformed request fields.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

func validationf(format string, args ...any) error {
	return ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
