package services

import "errors"

// Error taxonomy for the exchange operations. Every failed precondition is
// checked before any mutation, so an error always leaves state untouched.
var (
	ErrMarketNotFound    = errors.New("market not found")
	ErrMarketNotActive   = errors.New("market is not active")
	ErrInvalidAmount     = errors.New("amount must be greater than 0")
	ErrInvalidTransition = errors.New("invalid market status transition")
	ErrAlreadyResolved   = errors.New("market already resolved")
)

// ValidationError reports caller-correctable input problems (empty or
// oversized fields). It is returned as a value, never raised.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
