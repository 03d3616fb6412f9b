package model

import "errors"

// Domain errors. Handlers map these onto HTTP statuses; everything else
// is a 500.
var (
	ErrValidation       = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrNotOwner         = errors.New("not authorized")
	ErrAlreadyCompleted = errors.New("habit already completed today")
	ErrDuplicate        = errors.New("already exists")
)
