// Package common defines shared constants and sentinel errors used across
// the layers of merchkeeper. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Signup/login errors.
	ErrLoginAlreadyExists   = errors.New("login already exists")
	ErrInvalidLoginPassword = errors.New("invalid login/password")

	// Hashing errors (entropy failure, malformed digest).
	ErrHashing = errors.New("hashing error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
