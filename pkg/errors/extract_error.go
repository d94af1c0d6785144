package errors

import "fmt"

type ExtractError struct {
	Code    string
	Message string
	Err     error
}

func (e *ExtractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidFileExtension = func(err error) *ExtractError {
		return &ExtractError{Code: "invalid_file_extension", Message: "Input file is not a .har capture", Err: err}
	}
	ErrMalformedInput = func(err error) *ExtractError {
		return &ExtractError{Code: "malformed_input", Message: "Input is not valid HAR JSON", Err: err}
	}
	ErrSessionNotFound = func(err error) *ExtractError {
		return &ExtractError{Code: "session_not_found", Message: "Extraction session not found or expired", Err: err}
	}
	ErrMediaNotFound = func(err error) *ExtractError {
		return &ExtractError{Code: "media_not_found", Message: "Media item not found in session", Err: err}
	}
	ErrDecode = func(err error) *ExtractError {
		return &ExtractError{Code: "decode_error", Message: "Stored content failed to decode as declared", Err: err}
	}
	ErrArchive = func(err error) *ExtractError {
		return &ExtractError{Code: "archive_error", Message: "Archive could not be built", Err: err}
	}
	ErrStorage = func(err error) *ExtractError {
		return &ExtractError{Code: "storage_error", Message: "Archive could not be stored", Err: err}
	}
	ErrInternal = func(err error) *ExtractError {
		return &ExtractError{Code: "internal_error", Message: "Internal server error", Err: err}
	}
)
