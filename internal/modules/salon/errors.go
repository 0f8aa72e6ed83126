package salon

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("salon not found")
	ErrDuplicateName = errors.New("salon name already exists")
)
