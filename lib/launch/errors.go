package launch

import (
	"errors"
	"fmt"
)

var (
	// ErrHelp is returned by Resolve when help was requested
	ErrHelp = errors.New("help requested")

	// ErrMissingImage is returned when no image path was given
	ErrMissingImage = errors.New("missing image path")

	// ErrMissingValue is returned when a value-bearing flag has no value
	ErrMissingValue = errors.New("flag needs a value")

	// ErrUnknownFlag is returned for flags that are not defined
	ErrUnknownFlag = errors.New("unknown flag")

	// ErrUnexpectedArg is returned for positional arguments after the image path
	ErrUnexpectedArg = errors.New("unexpected argument")

	// ErrInvalidValue is returned when a flag value fails validation
	ErrInvalidValue = errors.New("invalid value")

	// ErrLaunchFailed is returned when the emulator process cannot be started
	ErrLaunchFailed = errors.New("launch failed")
)

// UsageError reports malformed command-line input. Usage holds the generated
// help text so callers can show it next to the message.
type UsageError struct {
	Token string
	Err   error
	Usage string
}

func (e *UsageError) Error() string {
	if e.Token == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Token, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// LaunchError reports that the emulator could not be started at all.
type LaunchError struct {
	Program string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("%v: start %s: %v", ErrLaunchFailed, e.Program, e.Err)
}

func (e *LaunchError) Unwrap() []error {
	return []error{ErrLaunchFailed, e.Err}
}
