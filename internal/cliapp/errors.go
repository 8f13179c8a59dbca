// errors.go: the exit-code taxonomy for render, check and stats failures.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cliapp

import (
	"fmt"

	"github.com/agilira/go-errors"
)

// Exit-code taxonomy for the transclude front-end. A command failure is
// always one of these five classes; ExitCode maps them onto process exit
// codes (validation, execution and not-found share 1) so scripts driving
// `transclude check` can branch on it.
const (
	// ErrCodeValidation covers bad flags, malformed --var pairs, or any
	// input the user supplied that the front-end rejected before an
	// operation ran.
	ErrCodeValidation errors.ErrorCode = "CLI1000"

	// ErrCodeExecution covers a render/check/stats run that started but
	// recorded at least one unresolved reference in strict mode, or
	// failed outright while reading or writing a document.
	ErrCodeExecution errors.ErrorCode = "CLI1001"

	// ErrCodeNotFound covers an unknown operation name or a missing
	// input file.
	ErrCodeNotFound errors.ErrorCode = "CLI1002"

	// ErrCodeDenied covers a run that recorded a security-classified
	// reference error (path traversal, absolute path, escape of the
	// containment root) — distinguished from a plain execution failure
	// so a caller can tell "nothing resolved" apart from "something was
	// refused".
	ErrCodeDenied errors.ErrorCode = "CLI1004"

	// ErrCodeInternal covers a bug in the front-end itself rather than
	// anything the user supplied. An operation with no handler is reported
	// as ErrCodeExecution, not as this code.
	ErrCodeInternal errors.ErrorCode = "CLI1003"
)

// CLIError is the error type every cliapp-built command returns. It pairs
// a go-errors code with the name of the operation that produced it, so a
// caller that only has an `error` can still recover both an exit code and
// which of render/check/stats/completion was responsible.
type CLIError struct {
	goError   *errors.Error
	Operation string
}

// NewCLIError builds a CLIError for the named operation.
func NewCLIError(code errors.ErrorCode, operation, message string) *CLIError {
	err := errors.New(code, message).
		WithContext("operation", operation).
		WithSeverity("error")

	return &CLIError{
		goError:   err,
		Operation: operation,
	}
}

// Error renders "operation 'render': <message>", or just the message when
// no operation is attached (flag parsing failures before dispatch, say).
func (e *CLIError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("operation '%s': %s", e.Operation, e.goError.Error())
	}
	return e.goError.Error()
}

// ErrorCode returns the go-errors code underlying this CLIError.
func (e *CLIError) ErrorCode() errors.ErrorCode {
	return e.goError.ErrorCode()
}

// ExitCode maps the error's class onto a process exit status: 1 for a
// validation, execution, or not-found failure, 2 for an internal bug, 3
// for a run that was refused on security grounds.
func (e *CLIError) ExitCode() int {
	switch e.ErrorCode() {
	case ErrCodeDenied:
		return 3
	case ErrCodeInternal:
		return 2
	default:
		return 1
	}
}

// IsValidationError reports whether this is a bad-input failure.
func (e *CLIError) IsValidationError() bool {
	return e.ErrorCode() == ErrCodeValidation
}

// IsExecutionError reports whether this is a failed-run failure.
func (e *CLIError) IsExecutionError() bool {
	return e.ErrorCode() == ErrCodeExecution
}

// IsNotFoundError reports whether this is an unknown-operation or
// missing-input failure.
func (e *CLIError) IsNotFoundError() bool {
	return e.ErrorCode() == ErrCodeNotFound
}

// IsDeniedError reports whether this run was refused on security grounds.
func (e *CLIError) IsDeniedError() bool {
	return e.ErrorCode() == ErrCodeDenied
}

// UserMessage returns the user-facing summary attached to the error.
func (e *CLIError) UserMessage() string {
	return e.goError.UserMessage()
}

// IsRetryable reports whether the underlying go-errors value is marked
// retryable.
func (e *CLIError) IsRetryable() bool {
	return e.goError.IsRetryable()
}

// WithUserMessage overrides the user-facing summary and returns the
// receiver for chaining.
func (e *CLIError) WithUserMessage(msg string) *CLIError {
	e.goError.WithUserMessage(msg)
	return e
}

// WithContext attaches a key/value pair to the underlying error and
// returns the receiver for chaining.
func (e *CLIError) WithContext(key string, value interface{}) *CLIError {
	e.goError.WithContext(key, value)
	return e
}

// AsRetryable marks the error retryable and returns the receiver for
// chaining.
func (e *CLIError) AsRetryable() *CLIError {
	e.goError.AsRetryable()
	return e
}

// WithSeverity sets the go-errors severity and returns the receiver for
// chaining.
func (e *CLIError) WithSeverity(severity string) *CLIError {
	e.goError.WithSeverity(severity)
	return e
}

// Unwrap exposes the underlying go-errors value for errors.Is/As.
func (e *CLIError) Unwrap() error {
	return e.goError
}

// ValidationError reports bad input to the named operation: an
// unparseable flag, a malformed --var pair, an unsupported shell name.
func ValidationError(operation, message string) *CLIError {
	return NewCLIError(ErrCodeValidation, operation, message).
		WithUserMessage("invalid input or missing required arguments").
		WithSeverity("warning")
}

// ExecutionError reports that the named operation started but did not
// complete cleanly: an unreadable input document, an unwritable output
// path, or unresolved references surfaced under --strict.
func ExecutionError(operation, message string) *CLIError {
	return NewCLIError(ErrCodeExecution, operation, message).
		WithUserMessage("the operation did not complete").
		WithSeverity("error")
}

// NotFoundError reports an unknown operation name or a missing input
// file.
func NotFoundError(operation, message string) *CLIError {
	return NewCLIError(ErrCodeNotFound, operation, message).
		WithUserMessage("operation or file not found").
		WithSeverity("warning")
}

// DeniedError reports that the named operation recorded a security-
// classified reference error — a traversal attempt, an absolute path, or
// a reference resolved outside the containment root.
func DeniedError(operation, message string) *CLIError {
	return NewCLIError(ErrCodeDenied, operation, message).
		WithUserMessage("a reference was refused on security grounds").
		WithSeverity("error")
}

// InternalError reports a bug in the front-end itself rather than
// anything the user did.
func InternalError(message string) *CLIError {
	return NewCLIError(ErrCodeInternal, "", message).
		WithUserMessage("an internal error occurred").
		WithSeverity("critical")
}
