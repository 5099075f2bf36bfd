package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNetwork           = errors.New("network error")
	ErrMalformedResponse = errors.New("malformed response")
)

// ServerError is a rejection reported by the API with a structured body.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
}

// Message renders err as a single human-readable line. Server rejections
// show the server's own message verbatim.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var se *ServerError
	switch {
	case errors.As(err, &se):
		return se.Message
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"
	case errors.Is(err, ErrNetwork):
		return "Network error: " + unwrapCause(err, ErrNetwork)
	case errors.Is(err, ErrMalformedResponse):
		return "Failed to parse server response: " + unwrapCause(err, ErrMalformedResponse)
	default:
		return err.Error()
	}
}

// unwrapCause returns what wrap attached after the sentinel, dropping any
// context callers prefixed on the way up.
func unwrapCause(err error, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

func wrap(sentinel error, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}
