// errors.go: structured error taxonomy for the transclusion engine
//

package transclude

import (
	"fmt"

	goerrors "github.com/agilira/go-errors"
)

// Code identifies a stable transclusion error kind, independent of the
// go-errors wrapping used to carry context.
type Code string

// Security codes — raised by the path-security validator before any
// file-system call is made.
const (
	CodeNullByte       Code = "NULL_BYTE"
	CodeAbsolutePath   Code = "ABSOLUTE_PATH"
	CodePathTraversal  Code = "PATH_TRAVERSAL"
	CodeOutsideBase    Code = "OUTSIDE_BASE"
)

// Resolution codes — raised while searching for a candidate file.
const (
	CodeFileNotFound Code = "FILE_NOT_FOUND"
)

// File-read codes — raised once a candidate path has been opened.
const (
	CodeNotAFile     Code = "NOT_A_FILE"
	CodeBinaryFile   Code = "BINARY_FILE"
	CodeFileTooLarge Code = "FILE_TOO_LARGE"
	CodeReadError    Code = "READ_ERROR"
)

// Expansion codes — raised by the recursive expansion machinery.
const (
	CodeCircularReference  Code = "CIRCULAR_REFERENCE"
	CodeMaxDepthExceeded   Code = "MAX_DEPTH_EXCEEDED"
	CodeHeadingNotFound    Code = "HEADING_NOT_FOUND"
)

// Substitution codes — raised only in strict variable mode.
const (
	CodeUndefinedVariable Code = "UNDEFINED_VARIABLE"
)

// go-errors codes, one stable range per taxonomy family, mirroring the
// teacher's ORF1xxx/ORF2xxx split between framework and storage errors.
const (
	errCodeSecurity     goerrors.ErrorCode = "TRX1000"
	errCodeResolution   goerrors.ErrorCode = "TRX2000"
	errCodeRead         goerrors.ErrorCode = "TRX2001"
	errCodeExpansion    goerrors.ErrorCode = "TRX3000"
	errCodeSubstitution goerrors.ErrorCode = "TRX4000"
)

// TransclusionError is a single recorded failure for one reference token.
// It implements the standard error interface and wraps a go-errors.Error
// for structured context (path, line, chain) the way CLIError wraps one
// for command context.
type TransclusionError struct {
	goErr *goerrors.Error

	// Code is the stable taxonomy identifier from §7 of the specification.
	Code Code

	// Message is the human-readable failure description, used verbatim in
	// the inline "<!-- Error: ... -->" marker.
	Message string

	// Path is the reference path as written in the source, or the resolved
	// absolute path once known.
	Path string

	// Line is the 1-based input line number the error was recorded at, or
	// zero if not applicable (e.g. engine-level errors).
	Line int
}

func newTransclusionError(goCode goerrors.ErrorCode, code Code, path, message string) *TransclusionError {
	return &TransclusionError{
		goErr: goerrors.New(goCode, message).
			WithContext("code", string(code)).
			WithContext("path", path).
			WithSeverity("error"),
		Code:    code,
		Message: message,
		Path:    path,
	}
}

// Error implements the error interface.
func (e *TransclusionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// ErrorCode returns the underlying go-errors code for errors.As-style dispatch.
func (e *TransclusionError) ErrorCode() goerrors.ErrorCode {
	return e.goErr.ErrorCode()
}

// WithLine annotates the error with a 1-based input line number and returns
// it for chaining.
func (e *TransclusionError) WithLine(line int) *TransclusionError {
	e.Line = line
	e.goErr.WithContext("line", line)
	return e
}

// Unwrap exposes the underlying go-errors.Error for error-chain compatibility.
func (e *TransclusionError) Unwrap() error {
	return e.goErr
}

// SecurityError builds a path-security taxonomy error (NULL_BYTE,
// ABSOLUTE_PATH, PATH_TRAVERSAL, OUTSIDE_BASE).
func SecurityError(code Code, path, message string) *TransclusionError {
	return newTransclusionError(errCodeSecurity, code, path, message)
}

// ResolutionError builds a FILE_NOT_FOUND taxonomy error.
func ResolutionError(path, message string) *TransclusionError {
	return newTransclusionError(errCodeResolution, CodeFileNotFound, path, message)
}

// ReadError builds a file-reader taxonomy error (NOT_A_FILE, BINARY_FILE,
// FILE_TOO_LARGE, READ_ERROR).
func ReadError(code Code, path, message string) *TransclusionError {
	return newTransclusionError(errCodeRead, code, path, message)
}

// ExpansionError builds an expansion-machinery taxonomy error
// (CIRCULAR_REFERENCE, MAX_DEPTH_EXCEEDED, HEADING_NOT_FOUND).
func ExpansionError(code Code, path, message string) *TransclusionError {
	return newTransclusionError(errCodeExpansion, code, path, message)
}

// SubstitutionError builds an UNDEFINED_VARIABLE taxonomy error.
func SubstitutionError(path, message string) *TransclusionError {
	return newTransclusionError(errCodeSubstitution, CodeUndefinedVariable, path, message)
}
