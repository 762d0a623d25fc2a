package parser

import (
	"fmt"
)

// NotIntegerError is returned when a token is not a decimal integer or is
// outside the accepted range.
type NotIntegerError struct {
	Input  string
	Reason string
}

func (e *NotIntegerError) Error() string {
	return fmt.Sprintf("%q is not an integer: %s", e.Input, e.Reason)
}

// NotNumberError is returned when a token is not a finite decimal number.
type NotNumberError struct {
	Input  string
	Reason string
}

func (e *NotNumberError) Error() string {
	return fmt.Sprintf("%q is not a number: %s", e.Input, e.Reason)
}

// FileAccessError is returned when a path does not name a readable regular file.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("file %q is not accessible: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
