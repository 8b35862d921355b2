package domain

import "fmt"

// InvalidFileError is the file-level error tier: the whole input is
// rejected and no ValidationResult exists. Row-level problems never use
// this type; they are collected into ValidationResult.Errors instead.
type InvalidFileError struct {
	Reason string
	Err    error // underlying cause, e.g. an I/O failure; may be nil
}

func NewInvalidFileError(reason string) *InvalidFileError {
	return &InvalidFileError{Reason: reason}
}

func WrapInvalidFileError(reason string, err error) *InvalidFileError {
	return &InvalidFileError{Reason: reason, Err: err}
}

func (e *InvalidFileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *InvalidFileError) Unwrap() error {
	return e.Err
}
