package profile

import "errors"

var (
	ErrNotFound = errors.New("not_found")
)
