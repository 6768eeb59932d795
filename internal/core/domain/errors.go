package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("a user with that email already exists")
	ErrNameTaken          = errors.New("a record with that name already exists")
	ErrSelfDelete         = errors.New("cannot delete your own account")
	ErrForbidden          = errors.New("access forbidden")
)

// ValidationError marks user-correctable input problems (blank required
// fields, unknown role names). The message is safe to return to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalidf builds a ValidationError with a formatted message.
func Invalidf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
