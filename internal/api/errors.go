package api

import "fmt"

// Error is a rejection from the riddle service: a non-2xx response whose body
// carried a human-readable detail string. The Controller shows Detail as-is.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("riddle service rejected request (%d): %s", e.StatusCode, e.Detail)
}

// ErrUnreachable wraps transport-level failures (connection refused, timeout,
// unreadable body). Callers that only need a display string should not parse
// this; it exists so tests can distinguish rejection from transport failure.
type ErrUnreachable struct {
	Err error
}

func (e *ErrUnreachable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("riddle service unreachable: %v", e.Err)
	}
	return "riddle service unreachable"
}

func (e *ErrUnreachable) Unwrap() error { return e.Err }
