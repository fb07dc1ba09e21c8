// Package common defines shared constants and sentinel errors used across
// client and server layers of GratiLog. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Journal rules.
	ErrorEntryNotFound       = errors.New("entry not found")
	ErrorAlreadyAppreciated  = errors.New("you have already appreciated this entry")
	ErrorSelfAppreciation    = errors.New("cannot appreciate your own entry")
	ErrorLoginAlreadyExists  = errors.New("username already taken")
	ErrorInvalidLoginFormat  = errors.New("username must not be empty")
	ErrorExportNotConfigured = errors.New("export storage is not configured")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
