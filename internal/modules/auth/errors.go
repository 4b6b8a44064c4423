package auth

import "errors"

var (
	ErrEmailTaken              = errors.New("email already registered")
	ErrInvalidRole             = errors.New("invalid role")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrEmailNotVerified        = errors.New("email not verified")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrInvalidRefreshToken     = errors.New("invalid refresh token")
)
