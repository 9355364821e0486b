package domain

import "errors"

// Error kinds reported by the lifecycle engine. Callers inspect these with
// errors.Is; every failure leaves the request record unchanged.
var (
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("actor not permitted for this operation")
	ErrInvalidTransition = errors.New("current status does not permit this operation")
	ErrCodeMismatch      = errors.New("confirmation code does not match")
	ErrValidation        = errors.New("invalid input")
)
