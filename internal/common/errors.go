package common

import (
	"errors"
	"fmt"
)

// AppError carries a stable code alongside a human message and the wrapped cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// Error taxonomy. Per-file failures (format, extraction, remote parse) never
// abort a batch; validation failures reject an upload atomically.
var (
	// ErrUnsupportedFormat marks legacy DOC or any media type we cannot extract.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrExtraction marks a decoding or archive-parsing failure.
	ErrExtraction = errors.New("text extraction failed")
	// ErrRemoteParse marks remote parser failure after retry exhaustion.
	ErrRemoteParse = errors.New("remote parse failed")
	// ErrValidation marks a cap violation; nothing from the upload is admitted.
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("resource not found")
)

// UnsupportedFormatError builds the per-file error for a rejected media type.
func UnsupportedFormatError(mediaType string) error {
	return NewAppError("UNSUPPORTED_FORMAT", fmt.Sprintf("media type %q", mediaType), ErrUnsupportedFormat)
}

// ExtractionError wraps the underlying decode failure for a file.
func ExtractionError(filename string, cause error) error {
	return NewAppError("EXTRACTION_FAILED", filename, fmt.Errorf("%w: %w", ErrExtraction, cause))
}

// CapExceededError names the cap and the current/attempted counts, as surfaced
// to the uploader when an entire batch is rejected.
func CapExceededError(what string, cap, current, attempted int) error {
	return NewAppError("CAP_EXCEEDED",
		fmt.Sprintf("a maximum of %d %s is allowed; you currently have %d and are trying to add %d more", cap, what, current, attempted),
		ErrValidation)
}
