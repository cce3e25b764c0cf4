package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable error codes surfaced to callers. They distinguish "retry the turn"
// (malformed_model_output, service_unavailable) from "re-authenticate"
// (unauthenticated) from "data may not have been saved" (persistence_failure).
const (
	CodeInvalidPhase         = "invalid_phase"
	CodeUnauthenticated      = "unauthenticated"
	CodeMalformedModelOutput = "malformed_model_output"
	CodeServiceUnavailable   = "service_unavailable"
	CodePersistenceFailure   = "persistence_failure"
	CodeSessionComplete      = "session_complete"
	CodeInvalidRequest       = "invalid_request"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func InvalidPhase(phase int) *Error {
	return New(http.StatusInternalServerError, CodeInvalidPhase, fmt.Errorf("invalid phase %d", phase))
}

func Unauthenticated(err error) *Error {
	return New(http.StatusUnauthorized, CodeUnauthenticated, err)
}

func MalformedModelOutput(err error) *Error {
	return New(http.StatusBadGateway, CodeMalformedModelOutput, err)
}

func ServiceUnavailable(err error) *Error {
	return New(http.StatusServiceUnavailable, CodeServiceUnavailable, err)
}

func PersistenceFailure(err error) *Error {
	return New(http.StatusInternalServerError, CodePersistenceFailure, err)
}

// Code extracts the stable code from err, or "" when err carries none.
func Code(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// Is reports whether err carries the given stable code.
func Is(err error, code string) bool {
	return Code(err) == code
}
