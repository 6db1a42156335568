// File: services/doctor/errors.go
package doctor

import "errors"

var (
	// ErrDoctorNotFound indicates no doctor matches the lookup.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrEmailTaken indicates the registration email is already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
