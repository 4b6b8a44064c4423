package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrForbidden               = errors.New("forbidden")
	ErrNotFound                = errors.New("not_found")
	ErrInvalidStatusTransition = errors.New("invalid_status_transition")
)
