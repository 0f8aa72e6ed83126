package reservation

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrSalonNotFound = errors.New("salon not found")
	ErrNotFound      = errors.New("reservation not found")
	ErrConflict      = errors.New("time slot already booked")
)
