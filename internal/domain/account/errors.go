package account

import "errors"

var (
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrFieldTooLong   = errors.New("field too long")
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email address already exists")
	ErrSessionClosed  = errors.New("session is closed")
)
