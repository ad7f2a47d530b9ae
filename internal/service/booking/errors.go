package booking

import "errors"

var (
	ErrDoctorNotFound = errors.New("doctor not found or not bookable")
	ErrPastDate       = errors.New("date is in the past")
	ErrEmptySymptoms  = errors.New("symptoms must not be empty")
	ErrDayFull        = errors.New("no tokens left for this day")
	ErrContention     = errors.New("could not allocate a token, try again")
)
