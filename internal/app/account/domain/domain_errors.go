package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserConflict       = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmptyName          = errors.New("user name cannot be empty")
	ErrEmptyEmail         = errors.New("user email cannot be empty")
	ErrEmptyPassword      = errors.New("user password cannot be empty")
)
