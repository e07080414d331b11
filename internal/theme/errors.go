package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a theme config source cannot be opened.
	ErrNotFound = errors.New("theme config not found")

	// ErrMalformed is returned for config text that cannot be parsed.
	ErrMalformed = errors.New("malformed theme config")

	// ErrCapacity is returned when a collection or theme exceeds its limits.
	ErrCapacity = errors.New("theme capacity exceeded")

	// ErrUnknownTheme is returned by lookups that match no theme.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrListRequested signals that the caller asked for the theme list
	// instead of a theme. It is not a failure.
	ErrListRequested = errors.New("theme list requested")
)

// ParseError describes a problem at a specific line of a theme config.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func malformed(line int, format string, args ...any) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...), Err: ErrMalformed}
}
