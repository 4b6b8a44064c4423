package rating

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not_found")
	ErrBookingNotRatable = errors.New("booking not ratable")
	ErrAlreadyRated      = errors.New("booking already rated")
)
