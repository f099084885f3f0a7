package oerror

import "fmt"

// Error is returned when tunables or other setup-time input cannot be used as-is.
type Error struct {
	Err string
}

// New formats a new Error.
func New(format string, args ...any) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
