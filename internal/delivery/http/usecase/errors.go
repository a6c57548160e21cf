package usecase

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrCannotDeleteSelf   = errors.New("cannot delete yourself")
	ErrForbidden          = errors.New("access denied")
	ErrAttemptNotFound    = errors.New("attempt not found")
)
