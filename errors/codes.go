package errors

// Code represents an error code
type Code string

// Codec error codes. These are the fatal decode/encode failures; the
// validator's non-fatal findings live in the validate package.
const (
	// CodeInvalidLength means the decoded buffer is shorter than the
	// fixed 44-byte base region.
	CodeInvalidLength Code = "INVALID_LENGTH"

	// CodeInvalidType means byte 0 is not the build-template indicator.
	CodeInvalidType Code = "INVALID_TYPE"

	// CodeInvalidProfession means the profession byte is outside 1-9.
	CodeInvalidProfession Code = "INVALID_PROFESSION"

	// CodeBase64DecodeFailed means the chat link body is not valid base64.
	CodeBase64DecodeFailed Code = "BASE64_DECODE_FAILED"

	// CodePaletteLookupFailed means the palette mapper rejected or failed
	// a lookup for a non-zero palette index or skill ID.
	CodePaletteLookupFailed Code = "PALETTE_LOOKUP_FAILED"
)

// General error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
