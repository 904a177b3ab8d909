package apperr

import "errors"

// ErrInvalid is returned when the input fails validation before submission.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized indicates a missing or rejected session token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrBusiness indicates a business-rule failure signaled by the backend
// despite transport success (valid:false or a populated carrier error).
var ErrBusiness = errors.New("business failure")

// BusinessError carries the backend's message alongside ErrBusiness so
// callers can surface it to the user.
type BusinessError struct {
	Message string
}

// Business wraps the backend message into a BusinessError.
func Business(message string) error {
	return &BusinessError{Message: message}
}

func (e *BusinessError) Error() string {
	if e.Message == "" {
		return ErrBusiness.Error()
	}
	return ErrBusiness.Error() + ": " + e.Message
}

// Is reports ErrBusiness identity for errors.Is.
func (e *BusinessError) Is(target error) bool { return target == ErrBusiness }

// BusinessMessage extracts the backend message from err, if err is (or wraps)
// a BusinessError.
func BusinessMessage(err error) (string, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Message, true
	}
	return "", false
}
