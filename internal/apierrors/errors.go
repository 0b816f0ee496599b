// Package apierrors defines errors that carry an HTTP status alongside a
// client-facing message.
package apierrors

import "net/http"

// APIError is an error with an HTTP status code and a message safe to return
// to clients.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func New(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// NewErrEmailIsTaken reports a registration attempt for an email that is
// already bound to a user.
func NewErrEmailIsTaken() *APIError {
	return New(http.StatusBadRequest, "Email already exists.")
}

// NewErrInvalidCredentials reports a login rejected by the identity provider.
func NewErrInvalidCredentials() *APIError {
	return New(http.StatusBadRequest, "Invalid login credentials")
}

// NewErrUserNotFound reports a valid external identity with no local user.
func NewErrUserNotFound() *APIError {
	return New(http.StatusBadRequest, "User not found in database")
}

// NewErrSessionNotFound reports a logout for an unknown session id.
func NewErrSessionNotFound() *APIError {
	return New(http.StatusBadRequest, "Session not found")
}

// NewErrUnauthorized is the single opaque response for every gate failure.
func NewErrUnauthorized() *APIError {
	return New(http.StatusUnauthorized, "Unauthorized")
}
