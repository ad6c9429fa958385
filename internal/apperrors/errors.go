// Package apperrors defines the error taxonomy shared by the service and
// handler layers. Services translate store-level errors into these
// sentinels; handlers map them onto HTTP status codes.
package apperrors

import "errors"

var (
	// ErrNotFound means the referenced entity has no row.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the authorization policy denied the action.
	ErrUnauthorized = errors.New("not allowed")

	// ErrDuplicateEmail means registration hit an email already in use.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrConstraintViolation is a store-level uniqueness breach that no
	// higher-level case claimed.
	ErrConstraintViolation = errors.New("conflicts with existing data")
)
