package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindAuthentication ErrorKind = "AUTHENTICATION"
	KindAuthorization  ErrorKind = "AUTHORIZATION"
	KindNotFound       ErrorKind = "NOT_FOUND"
	KindState          ErrorKind = "STATE"
	KindValidation     ErrorKind = "VALIDATION"
	KindConflict       ErrorKind = "CONFLICT"
	KindDependency     ErrorKind = "DEPENDENCY"
)

// Error is the stable error surface of the core: a kind plus a human-readable
// message. Raw internal errors stay wrapped and never cross the boundary.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StateError names both sides of an illegal transition or an operation
// attempted from the wrong state.
type StateError struct {
	Current   JobStatus
	Attempted JobStatus
	Operation string
}

func (e *StateError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("STATE: %s is not allowed while job is %s", e.Operation, e.Current)
	}
	return fmt.Sprintf("STATE: illegal transition %s -> %s", e.Current, e.Attempted)
}

func NewAuthenticationError(msg string) error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

func NewAuthorizationError(msg string) error {
	return &Error{Kind: KindAuthorization, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewValidationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NewConflictError(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

func NewDependencyError(msg string, err error) error {
	return &Error{Kind: KindDependency, Message: msg, Err: err}
}

func NewStateError(current, attempted JobStatus) error {
	return &StateError{Current: current, Attempted: attempted}
}

func NewOperationStateError(operation string, current JobStatus) error {
	return &StateError{Current: current, Operation: operation}
}

func IsKind(err error, kind ErrorKind) bool {
	if kind == KindState {
		var se *StateError
		return errors.As(err, &se)
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func ErrorKindOf(err error) ErrorKind {
	var se *StateError
	if errors.As(err, &se) {
		return KindState
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
