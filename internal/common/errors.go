// Package common defines shared constants and sentinel errors used across
// the accounts backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal  = errors.New("internal error")
	ErrorForbidden = errors.New("forbidden")

	// Account lifecycle errors. Each one is a business-error kind that the
	// GraphQL boundary renders inside an {ok:false, error} payload.
	ErrDuplicateEmail          = errors.New("duplicate email")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidPassword         = errors.New("invalid password")
	ErrEmailUnchanged          = errors.New("email unchanged")
	ErrEmailInUse              = errors.New("email in use")
	ErrPasswordUnchanged       = errors.New("password unchanged")
	ErrInvalidVerificationCode = errors.New("invalid verification code")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors. Tokens only expire when a validity duration
	// is configured; by default they are non-expiring.
	ErrTokenExpired = errors.New("token expired")
)
