package upload

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not_found")
	ErrFileTooLarge  = errors.New("file too large")
	ErrBadFileType   = errors.New("unsupported file type")
	ErrPortfolioFull = errors.New("portfolio full")
)
