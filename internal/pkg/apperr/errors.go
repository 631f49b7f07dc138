package apperr

import (
	"errors"
	"fmt"
)

// ValidationError covers requests we refuse before touching the remote
// service: empty query, missing credential, no active store, bad input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// RemoteError is a rejection from the remote service: bad credential,
// invalid store name, quota, or any non-2xx status.
type RemoteError struct {
	StatusCode int    // HTTP status returned by the remote, 0 if transport failed
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("remote service error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote service error: %s", e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Unauthorized reports whether the remote rejected the credential itself.
func (e *RemoteError) Unauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

func NewRemote(statusCode int, message string) *RemoteError {
	return &RemoteError{StatusCode: statusCode, Message: message}
}

func WrapRemote(err error, message string) *RemoteError {
	return &RemoteError{Message: message, Err: err}
}

// TimeoutError means a bounded wait (file indexing poll) elapsed without
// the remote reaching a terminal state.
type TimeoutError struct {
	Message string
}

func (e *TimeoutError) Error() string {
	return e.Message
}

func NewTimeout(format string, args ...interface{}) *TimeoutError {
	return &TimeoutError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsRemote(err error) bool {
	var r *RemoteError
	return errors.As(err, &r)
}

func IsTimeout(err error) bool {
	var t *TimeoutError
	return errors.As(err, &t)
}
