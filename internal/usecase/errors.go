package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflicting operation in progress")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrValidation            = errors.New("data validation failed")
)
