package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotImplemented         = errors.New("E0000: not implemented")
	ErrUsernameRequired       = errors.New("E0001: username is required")
	ErrEmailRequired          = errors.New("E0002: email is required")
	ErrPasswordRequired       = errors.New("E0003: password is required")
	ErrDatabase               = errors.New("E0004: database error")
	ErrCryptographic          = errors.New("E0005: cryptographic failure")
	ErrJWT                    = errors.New("E0006: JWT failure")
	ErrEmailAddressFormat     = errors.New("E0007: email address format incorrect")
	ErrInvalidUserType        = errors.New("E0008: invalid user type")
	ErrAlreadyExists          = errors.New("E0009: user already registered")
	ErrInvalidEmailOrPassword = errors.New("E0010: invalid username or password")
	ErrTokenExpired           = errors.New("E0011: token expired")
	ErrUnauthorized           = errors.New("E0012: unauthorized")
	ErrNotFound               = errors.New("E0013: not found")
	ErrInvalidID              = errors.New("E0014: invalid ID")
	ErrQueue                  = errors.New("E0015: queue error")
	ErrMail                   = errors.New("E0016: error sending email")
)

// IsValidation reports whether err is one of the pre-write payload
// validation failures. These never leave records behind.
func IsValidation(err error) bool {
	return errors.Is(err, ErrUsernameRequired) ||
		errors.Is(err, ErrEmailRequired) ||
		errors.Is(err, ErrPasswordRequired) ||
		errors.Is(err, ErrEmailAddressFormat) ||
		errors.Is(err, ErrInvalidUserType)
}

// CreationError marks a failed write inside the onboarding sequence after at
// least the user record was attempted. Step names the write that failed; the
// wrapped error is the store's original failure.
type CreationError struct {
	Step string
	Err  error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("E0017: creation failed at %s: %v", e.Step, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}
