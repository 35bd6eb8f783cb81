// Package common defines shared constants and sentinel errors used across
// HealthGuard components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Authentication outcomes. Both are recoverable: the user may retry at once.
	ErrUnknownUser     = errors.New("username not found")
	ErrInvalidPassword = errors.New("invalid password")

	// ErrAlreadyAuthenticated is returned by a login attempted while a session
	// exists. Changing identity or role requires a logout first.
	ErrAlreadyAuthenticated = errors.New("already authenticated")

	// ErrCorruptSession marks a persisted session snapshot that could not be
	// decoded. It is logged and the snapshot is discarded; it never reaches the user.
	ErrCorruptSession = errors.New("corrupt session snapshot")

	// ErrRoleMismatch is reported when a view requires a role the current
	// session does not hold. Only a new login can resolve it.
	ErrRoleMismatch = errors.New("role mismatch")

	// Validation errors for submitted vital-sign forms.
	ErrMissingReading = errors.New("missing reading")
	ErrInvalidReading = errors.New("invalid reading")
)
