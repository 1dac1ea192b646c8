package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIncorrectPassword  = errors.New("old password is incorrect")
	ErrUnauthorized       = errors.New("not authorized, please login")

	ErrInvalidResetToken = errors.New("invalid or expired token")

	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("user not allowed to access this product")

	ErrEmailDelivery = errors.New("email not sent, please try again")
	ErrUpload        = errors.New("image could not be uploaded")
	ErrRateLimited   = errors.New("too many requests")

	// ErrValidation is the kind shared by all input validation failures.
	// Use Invalid to build one carrying a client-facing message.
	ErrValidation = errors.New("invalid input")
)

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }

// Invalid returns an error that matches ErrValidation and reports msg to the client.
func Invalid(msg string) error {
	return &validationError{msg: msg}
}
