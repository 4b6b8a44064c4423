package chat

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrNotParticipant = errors.New("not a participant")
	ErrNotFound       = errors.New("not_found")
)
