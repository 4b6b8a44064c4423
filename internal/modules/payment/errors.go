package payment

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not_found")
	ErrNotPayable       = errors.New("booking not payable")
	ErrInvalidSignature = errors.New("invalid callback signature")
	ErrAmountMismatch   = errors.New("callback amount mismatch")
)
