package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// History errors
var (
	ErrEmptyUserID  = errors.New("user id is required")
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)
