package ports

import (
	"context"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
)

// Session is a point-in-time snapshot of the authentication state. Copies
// are handed out; mutating a snapshot has no effect on the live session.
type Session struct {
	User          *domain.User
	Token         string
	Authenticated bool
	Loading       bool
}

// RegisterResult is the server's response to a registration. Token and User
// are populated only for self-activating roles (customers are logged in
// immediately); staff-type roles get a bare creation result pending
// activation.
type RegisterResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"data,omitempty"`
}

// SessionService owns the process-wide session lifecycle: bootstrap, login,
// registration, logout and token refresh. State-mutating operations are
// serialized; at most one authentication transition is in flight at a time.
type SessionService interface {
	// Bootstrap restores a session from the persisted credential. It never
	// returns an error: a rejected or absent token simply yields an
	// unauthenticated snapshot.
	Bootstrap(ctx context.Context) Session

	// Login authenticates a credential pair. roleContext selects the
	// endpoint variant: "customer" routes to the storefront login, any
	// other value to the back-office login. A failed login leaves a
	// previously-established session untouched.
	Login(ctx context.Context, email, password, roleContext string) (Session, error)

	// Register creates an account. Customer registrations that return a
	// token are treated as a successful login.
	Register(ctx context.Context, reg domain.Registration) (*RegisterResult, error)

	// Logout clears all local authentication state. Purely local,
	// idempotent, never fails.
	Logout()

	// RefreshToken rotates the current token in place. Without a token, or
	// on rejection, it behaves as Logout and reports that the caller must
	// re-authenticate.
	RefreshToken(ctx context.Context) error

	// UpdateUser merges a partial profile edit into the session user
	// without a network call. No-op when unauthenticated.
	UpdateUser(update domain.UserUpdate)

	// Session returns the current snapshot.
	Session() Session
}
