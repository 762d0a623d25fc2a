package cmdline

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by Parse after a help screen has been written.
// It is not a failure; ExitCode maps it to success.
var ErrHelp = errors.New("help requested")

// Error types for proper error handling with errors.Is/As
type (
	// UnknownOptionError is returned when an option name is not registered.
	UnknownOptionError struct {
		Name string
	}

	// MissingValueError is returned when a registered option is the last token.
	MissingValueError struct {
		Name string
	}

	// MalformedValueError is returned when the option's parser rejects its value.
	// Err is the parser error, e.g. *parser.NotIntegerError or *parser.FileAccessError.
	MalformedValueError struct {
		Name  string
		Value string
		Err   error
	}

	// UnexpectedArgumentError is returned for a token that does not start
	// with the introducer where an option was expected.
	UnexpectedArgumentError struct {
		Arg string
	}

	// DuplicateOptionError is returned when a name is registered twice.
	DuplicateOptionError struct {
		Name string
	}

	// InvalidOptionError is returned when a registration is malformed.
	InvalidOptionError struct {
		Name   string
		Reason string
	}
)

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s", e.Name)
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option %s requires a value", e.Name)
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("invalid value for option %s: %v", e.Name, e.Err)
}

func (e *MalformedValueError) Unwrap() error {
	return e.Err
}

func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("unexpected argument: %q", e.Arg)
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("option %s already registered", e.Name)
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %q: %s", e.Name, e.Reason)
}

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

// ExitCode returns the process exit status for a Parse result.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelp) {
		return exitCodeSuccess
	}
	return exitCodeError
}
