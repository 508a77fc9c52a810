package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBaseURL is returned when the client is created without a base URL.
	ErrEmptyBaseURL = errors.New("empty API base URL")
	// ErrRequestFailed is returned when the request cannot reach the server.
	ErrRequestFailed = errors.New("request failed")
	// ErrDecodeResponse is returned when a response body cannot be decoded.
	ErrDecodeResponse = errors.New("failed to decode response")
)

// Error is a non-2xx API response with the server-provided message.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return e.Message
}

// UserMessage returns the server-provided message, safe to show to the
// user. Satisfies the stores' user-facing error contract.
func (e *Error) UserMessage() string {
	return e.Message
}
