package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError carries a stable error code alongside a human-readable message,
// so callers can route on the failure class without string matching.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// wraps an error with a code and message
func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// CodeOf returns the code of the outermost AppError in err's chain, or an
// empty string when there is none.
func CodeOf(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Error code constants
const (
	CodeInvalidInput     = "INVALID_INPUT"          // malformed request content, e.g. an unparseable video URL
	CodeConfiguration    = "CONFIGURATION_ERROR"    // missing provider credentials
	CodeUpstreamNotFound = "UPSTREAM_NOT_FOUND"     // provider answered but had no matching resource
	CodeUpstream         = "UPSTREAM_ERROR"         // transport or HTTP-level provider failure
	CodeGeneration       = "GENERATION_FAILED"      // text generation produced no usable output
	CodeGenerationParse  = "GENERATION_PARSE_ERROR" // generation output lacked the expected structured fragment
)
