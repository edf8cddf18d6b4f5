package registry

import "errors"

// Booking failures are recoverable conditions the caller branches on,
// distinguishable with errors.Is.
var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrDoctorNotFound  = errors.New("doctor not found")
)
