package profile

import "errors"

var (
	ErrProfileNotFound     = errors.New("doctor profile not found")
	ErrInvalidFee          = errors.New("fee must not be negative")
	ErrInvalidAvailability = errors.New("invalid availability slot")
)
