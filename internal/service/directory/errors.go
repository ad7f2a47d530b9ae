package directory

import "errors"

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)
