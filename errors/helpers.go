package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsInvalidLength checks if an error is an invalid length error
func IsInvalidLength(err error) bool {
	return GetCode(err) == CodeInvalidLength
}

// IsInvalidType checks if an error is an invalid type error
func IsInvalidType(err error) bool {
	return GetCode(err) == CodeInvalidType
}

// IsInvalidProfession checks if an error is an invalid profession error
func IsInvalidProfession(err error) bool {
	return GetCode(err) == CodeInvalidProfession
}

// IsBase64DecodeFailed checks if an error is a base64 decode error
func IsBase64DecodeFailed(err error) bool {
	return GetCode(err) == CodeBase64DecodeFailed
}

// IsPaletteLookupFailed checks if an error is a palette lookup error
func IsPaletteLookupFailed(err error) bool {
	return GetCode(err) == CodePaletteLookupFailed
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}
