package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized matches any 401 response via errors.Is. The session
// manager uses it to tell "session expired" apart from other failures.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNonJSON reports a 2xx response whose body was not valid JSON.
var ErrNonJSON = errors.New("non-JSON response")

// ErrRejected reports a 2xx response whose body carried success=false.
var ErrRejected = errors.New("server rejected request")

// StatusError is a non-2xx response. Message is taken from the response
// body when the server supplied one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// Is lets errors.Is(err, ErrUnauthorized) match a 401 StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

func newStatusError(code int, body []byte) *StatusError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}
	return &StatusError{StatusCode: code, Message: msg}
}

// rejected builds the error for a success=false body.
func rejected(message string) error {
	if message == "" {
		return ErrRejected
	}
	return fmt.Errorf("%w: %s", ErrRejected, message)
}
