package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classifying failures with errors.Is.
// Each constructor below wraps exactly one of these.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsRequired   = errors.New("value is required")
	ErrActionIsForbidden = errors.New("action is forbidden")
	ErrConflict          = errors.New("conflict")
	ErrTransient         = errors.New("transient failure")
)

// sanitize strips newlines from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates a required value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ActionIsForbiddenError indicates the caller is not permitted to perform
// an action right now: closed ordering eligibility, missing delivery
// capability, and similar guard failures.
type ActionIsForbiddenError struct {
	Action string
	Cause  error
}

// NewActionIsForbiddenError creates an ActionIsForbiddenError without a cause.
func NewActionIsForbiddenError(action string) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Action: action}
}

// NewActionIsForbiddenErrorWithCause creates an ActionIsForbiddenError wrapping an underlying cause.
func NewActionIsForbiddenErrorWithCause(action string, cause error) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Action: action, Cause: cause}
}

func (e *ActionIsForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrActionIsForbidden, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrActionIsForbidden, e.Action))
}

func (e *ActionIsForbiddenError) Unwrap() error {
	return ErrActionIsForbidden
}

// ConflictError indicates the request collides with existing state,
// e.g. a second active order for the same user.
type ConflictError struct {
	ParamName string
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.ParamName))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// TransientError indicates a storage-level contention or timeout failure.
// Callers may retry a bounded number of times; the failure is not a
// verdict on the request itself.
type TransientError struct {
	Op    string
	Cause error
}

// NewTransientError creates a TransientError without a cause.
func NewTransientError(op string) *TransientError {
	return &TransientError{Op: op}
}

// NewTransientErrorWithCause creates a TransientError wrapping an underlying cause.
func NewTransientErrorWithCause(op string, cause error) *TransientError {
	return &TransientError{Op: op, Cause: cause}
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrTransient, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrTransient, e.Op))
}

func (e *TransientError) Unwrap() error {
	return ErrTransient
}
