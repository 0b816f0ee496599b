package model

import "errors"

// ErrNotFound is returned by stores when a row does not exist.
var ErrNotFound = errors.New("not found")

// Gate failures. All of them collapse to an opaque 401 at the HTTP edge;
// the distinction exists for logging and tests only.
var (
	ErrMissingToken    = errors.New("missing bearer token")
	ErrInvalidToken    = errors.New("invalid bearer token")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoActiveSession = errors.New("no active session")
)

// Workflow failures surfaced to clients with a message.
var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
)
