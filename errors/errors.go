package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is of the same type
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCodef wraps an error with a specific code and formatted message
func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// Constructor functions for common error types

// InvalidLength creates an invalid length error
func InvalidLength(message string) *Error {
	return New(CodeInvalidLength, message)
}

// InvalidLengthf creates an invalid length error with formatted message
func InvalidLengthf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidLength, format, args...)
}

// InvalidType creates an invalid type error
func InvalidType(message string) *Error {
	return New(CodeInvalidType, message)
}

// InvalidTypef creates an invalid type error with formatted message
func InvalidTypef(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidType, format, args...)
}

// InvalidProfession creates an invalid profession error
func InvalidProfession(message string) *Error {
	return New(CodeInvalidProfession, message)
}

// InvalidProfessionf creates an invalid profession error with formatted message
func InvalidProfessionf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidProfession, format, args...)
}

// Base64DecodeFailed creates a base64 decode error wrapping the cause
func Base64DecodeFailed(cause error, message string) *Error {
	return WrapWithCode(cause, CodeBase64DecodeFailed, message)
}

// PaletteLookupFailed creates a palette lookup error wrapping the cause
func PaletteLookupFailed(cause error, message string) *Error {
	return WrapWithCode(cause, CodePaletteLookupFailed, message)
}

// PaletteLookupFailedf creates a palette lookup error with formatted message
func PaletteLookupFailedf(cause error, format string, args ...interface{}) *Error {
	return WrapWithCodef(cause, CodePaletteLookupFailed, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}
