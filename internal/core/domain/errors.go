package domain

import "errors"

var (
	// ErrNotConfigured means the API base address is missing; no network
	// operation can be attempted.
	ErrNotConfigured = errors.New("api base url not configured")

	// ErrNotAuthenticated means the operation needs a live session and
	// none is present.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired means the server rejected the current credential;
	// the caller must re-authenticate.
	ErrSessionExpired = errors.New("session expired, log in again")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrNotFound           = errors.New("resource not found")
)
