package group

import (
	"errors"
	"fmt"
)

// ErrorClass classifies an error for caller-side handling.
type ErrorClass string

const (
	// ClassInvalidArgument indicates a violated entry-point precondition,
	// such as a composite number passed where a prime is required.
	ClassInvalidArgument ErrorClass = "invalid_argument"

	// ClassUnsatisfiable indicates that the requested object cannot exist,
	// such as a subgroup order that does not divide the group order.
	ClassUnsatisfiable ErrorClass = "unsatisfiable"

	// ClassInternal indicates a violated algebraic invariant. These are
	// implementation defects, never recoverable conditions.
	ClassInternal ErrorClass = "internal"
)

// Error is a classified error with algebraic context.
type Error struct {
	// Class is the error classification.
	Class ErrorClass

	// Message is the human-readable error message.
	Message string

	// Code is an optional code for programmatic handling.
	Code string

	// Group is the name of the group involved, if applicable.
	Group string

	// Operation is the operation being performed when the error occurred.
	Operation string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Class, e.Message)
	if e.Group != "" {
		msg += fmt.Sprintf(" (group=%s)", e.Group)
	}
	if e.Operation != "" {
		msg += fmt.Sprintf(" (operation=%s)", e.Operation)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error equality checking for errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Class == t.Class && e.Code == t.Code
}

// NewInvalidArgument creates a new invalid-argument error.
func NewInvalidArgument(message string) *Error {
	return &Error{Class: ClassInvalidArgument, Message: message}
}

// NewUnsatisfiable creates a new unsatisfiable error.
func NewUnsatisfiable(message string) *Error {
	return &Error{Class: ClassUnsatisfiable, Message: message}
}

// NewInternal creates a new internal invariant-violation error.
func NewInternal(message string) *Error {
	return &Error{Class: ClassInternal, Message: message}
}

// WithGroup adds group context to an error.
func (e *Error) WithGroup(name string) *Error {
	e.Group = name
	return e
}

// WithOperation adds operation context to an error.
func (e *Error) WithOperation(operation string) *Error {
	e.Operation = operation
	return e
}

// WithCode adds an error code to an error.
func (e *Error) WithCode(code string) *Error {
	e.Code = code
	return e
}

// WithErr attaches an underlying error.
func (e *Error) WithErr(err error) *Error {
	e.Err = err
	return e
}

// IsInvalidArgument reports whether err is classified as invalid-argument.
func IsInvalidArgument(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Class == ClassInvalidArgument
	}
	return false
}

// IsUnsatisfiable reports whether err is classified as unsatisfiable.
func IsUnsatisfiable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Class == ClassUnsatisfiable
	}
	return false
}

// IsInternal reports whether err is classified as an internal invariant
// violation.
func IsInternal(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Class == ClassInternal
	}
	return false
}

// Common error codes.
const (
	ErrCodeNotPrime     = "NOT_PRIME"
	ErrCodeNotDivisible = "NOT_DIVISIBLE"
	ErrCodeAxiom        = "AXIOM_VIOLATION"
	ErrCodeNotSubgroup  = "NOT_SUBGROUP"
	ErrCodeNotNormal    = "NOT_NORMAL"
	ErrCodeInvariant    = "INVARIANT_VIOLATION"
	ErrCodeTooLarge     = "TOO_LARGE"
	ErrCodeBadTable     = "BAD_TABLE"
)
