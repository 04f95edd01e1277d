package sharpgen

import (
	"errors"
	"fmt"
)

// ErrorCode represents a machine-readable configuration error code.
type ErrorCode string

const (
	// CodeArgumentInvalid reports a setter that received a missing or
	// unusable argument. The violation is recorded at the call site and
	// surfaced as the outcome of Build.
	CodeArgumentInvalid ErrorCode = "argument_invalid"

	// CodeMissingRequiredSetting reports a required attribute (name,
	// type) that was never configured before Build.
	CodeMissingRequiredSetting ErrorCode = "missing_required_setting"

	// CodeInvalidSyntaxCombination reports configuration that is valid
	// piece by piece but would produce illegal source text, such as a
	// static class with two constructors.
	CodeInvalidSyntaxCombination ErrorCode = "invalid_syntax_combination"
)

// Error is the standard configuration error envelope.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError creates a new configuration error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new configuration error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// IsCode reports whether err is (or wraps) a configuration Error with
// the given code.
func IsCode(err error, code ErrorCode) bool {
	var cfgErr *Error
	return errors.As(err, &cfgErr) && cfgErr.Code == code
}
