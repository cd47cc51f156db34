package sdk

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for the failure taxonomy. Wire-level failures wrap one of
// these, so callers classify with errors.Is regardless of the wrapping detail.
var (
	// ErrUnauthenticated means no local session exists; no request was made.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidCredentials is a rejected login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized means the backend rejected the session or the action.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is a missing record (404).
	ErrNotFound = errors.New("not found")
	// ErrConflict is a duplicate username or email (409).
	ErrConflict = errors.New("conflict")
	// ErrDuplicateUsername is a registration conflict on the username.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrDuplicateEmail is a registration conflict on the email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrValidation is a client-side input rejection; no request was made.
	ErrValidation = errors.New("validation failed")
	// ErrUnexpectedShape means a response matched no recognized collection shape.
	ErrUnexpectedShape = errors.New("unexpected response shape")
	// ErrNetwork is a transport-level failure.
	ErrNetwork = errors.New("network unavailable")
	// ErrServer is a 5xx or otherwise unclassified backend failure.
	ErrServer = errors.New("server error")
)

// APIError is a non-2xx backend response, keeping the status code and the
// server's message while wrapping the matching sentinel.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (HTTP %d): %s", e.kind.Error(), e.Status, e.Message)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.kind.Error(), e.Status)
}

func (e *APIError) Unwrap() error { return e.kind }

// statusError maps an HTTP status to the taxonomy and preserves the
// server-provided message.
func statusError(status int, message string) error {
	var kind error
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = ErrUnauthorized
	case status == http.StatusNotFound:
		kind = ErrNotFound
	case status == http.StatusConflict:
		kind = ErrConflict
	default:
		kind = ErrServer
	}
	return &APIError{Status: status, Message: message, kind: kind}
}

// registerConflict discriminates duplicate-username from duplicate-email on
// registration. Backend revisions disagree on the status code (one maps a
// duplicate email to 401), so the message text is the discriminator.
func registerConflict(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	msg := strings.ToLower(apiErr.Message)
	switch {
	case strings.Contains(msg, "username"):
		return fmt.Errorf("%w: %s", ErrDuplicateUsername, apiErr.Message)
	case strings.Contains(msg, "email") || strings.Contains(msg, "correo"):
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, apiErr.Message)
	}
	return err
}
