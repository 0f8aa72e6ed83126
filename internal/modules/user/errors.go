package user

import "errors"

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already in use")
	ErrForbidden  = errors.New("operation not allowed")
)
