package appointment

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrNotOwner          = errors.New("appointment belongs to another doctor")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrStatusChanged     = errors.New("appointment status changed concurrently")
)
