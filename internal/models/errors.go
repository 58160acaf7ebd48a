package models

import "errors"

// Sentinel errors used across services and repositories. Handlers map them
// to HTTP status codes with errors.Is, so lower layers should wrap these
// with fmt.Errorf("...: %w", ...) rather than invent their own strings.
var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInsufficientStock = errors.New("insufficient stock")
)
