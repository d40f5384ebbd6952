package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
	"github.com/damilolajohn6/trendora-admin/internal/core/ports"
	"github.com/damilolajohn6/trendora-admin/internal/infrastructure/api"
)

// sessionClient is the transport surface the session manager drives: it
// issues requests through it and tells it which credential to attach.
type sessionClient interface {
	ports.Requester
	ports.TokenAttacher
}

// SessionManager owns the process-wide session: current user, token,
// authenticated and loading flags, and every transition between them.
// Construct it once and pass it by reference to consumers.
//
// All state-mutating operations (Bootstrap, Login, Register, Logout,
// RefreshToken) are serialized behind one mutex, so at most one
// authentication transition is in flight at a time and completion order
// matches call order. Session() reads a consistent snapshot without waiting
// on in-flight transitions.
type SessionManager struct {
	client   sessionClient
	creds    ports.CredentialStore
	validate *validator.Validate
	log      zerolog.Logger

	opMu sync.Mutex // serializes authentication transitions

	stateMu       sync.RWMutex
	user          *domain.User
	token         string
	authenticated bool
	loading       bool
	bootstrapped  bool
}

// NewSessionManager builds a SessionManager over the shared client and
// credential store.
func NewSessionManager(client sessionClient, creds ports.CredentialStore, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		client:   client,
		creds:    creds,
		validate: validator.New(),
		log:      log,
	}
}

type profileResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

type authResponse struct {
	Token string       `json:"token"`
	Data  *domain.User `json:"data"`
}

// Bootstrap restores a session from the persisted credential. It runs the
// full sequence at most once per process; later calls return the current
// snapshot. It never returns an error: an absent or rejected token simply
// yields an unauthenticated session.
func (m *SessionManager) Bootstrap(ctx context.Context) ports.Session {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if m.alreadyBootstrapped() {
		return m.Session()
	}
	m.setLoading(true)

	token, err := m.creds.Read()
	if err != nil {
		m.log.Warn().Err(err).Msg("credential store unreadable, starting unauthenticated")
		token = ""
	}
	if token == "" {
		// No stored token: no profile request is issued.
		m.resetState()
		return m.Session()
	}

	m.client.AttachToken(token)

	var resp profileResponse
	if err := m.client.Get(ctx, "/auth/profile", nil, &resp); err != nil {
		if api.IsUnauthorized(err) {
			// Expired or tampered token; expected and benign.
			m.log.Info().Msg("stored session expired, log in again")
		} else {
			m.log.Warn().Err(err).Msg("session restore failed")
		}
		m.discardCredential()
		m.resetState()
		return m.Session()
	}
	if !resp.Success || resp.User == nil {
		m.log.Warn().Msg("profile endpoint returned no user, starting unauthenticated")
		m.discardCredential()
		m.resetState()
		return m.Session()
	}

	m.setAuthenticated(resp.User, token)
	m.log.Debug().Str("user", resp.User.Email).Str("role", resp.User.Role).Msg("session restored")
	return m.Session()
}

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates a credential pair. roleContext selects the endpoint
// variant the server exposes: "customer" routes to the storefront login,
// anything else to the back-office login. On failure a previously
// established session is left fully intact — token, profile, persisted
// credential and attached header all keep their prior values.
func (m *SessionManager) Login(ctx context.Context, email, password, roleContext string) (ports.Session, error) {
	payload := loginPayload{Email: email, Password: password}
	if err := m.validate.Struct(payload); err != nil {
		return m.Session(), domain.ErrInvalidCredentials
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	// Loading is reset before any snapshot is taken, so the caller never
	// observes an in-flight flag on a finished attempt.
	m.setLoading(true)

	endpoint := "/auth/login"
	if roleContext == domain.RoleCustomer {
		endpoint = "/customers/login"
	}

	var resp authResponse
	if err := m.client.Post(ctx, endpoint, payload, &resp); err != nil {
		m.log.Debug().Err(err).Str("endpoint", endpoint).Msg("login failed")
		m.restorePriorSession()
		m.setLoading(false)
		return m.Session(), err
	}
	if resp.Token == "" || resp.Data == nil {
		m.setLoading(false)
		return m.Session(), &api.APIError{Kind: api.FailureUnknown, Message: "login response missing token or profile"}
	}

	m.persistCredential(resp.Token)
	m.client.AttachToken(resp.Token)
	m.setAuthenticated(resp.Data, resp.Token)
	m.log.Info().Str("user", resp.Data.Email).Str("role", resp.Data.Role).Msg("logged in")
	return m.Session(), nil
}

// Register creates an account through the role-specific endpoint. Customer
// registrations are self-activating: the server returns a token and the
// result is treated exactly like a successful login. Staff-type roles need
// separate activation, so session state is untouched and the server's
// response is returned for display.
func (m *SessionManager) Register(ctx context.Context, reg domain.Registration) (*ports.RegisterResult, error) {
	if err := m.validate.Struct(reg); err != nil {
		return nil, err
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.setLoading(true)
	defer m.setLoading(false)

	endpoint := "/auth/register"
	if reg.Role == domain.RoleCustomer {
		endpoint = "/customers/register"
	}

	var result ports.RegisterResult
	if err := m.client.Post(ctx, endpoint, reg, &result); err != nil {
		m.log.Debug().Err(err).Str("endpoint", endpoint).Msg("registration failed")
		m.restorePriorSession()
		return nil, err
	}

	if reg.Role == domain.RoleCustomer && result.Token != "" && result.User != nil {
		m.persistCredential(result.Token)
		m.client.AttachToken(result.Token)
		m.setAuthenticated(result.User, result.Token)
		m.log.Info().Str("user", result.User.Email).Msg("registered and logged in")
	}
	return &result, nil
}

// Logout clears all local authentication state: persisted credential,
// attached header, and the in-memory session. Purely local, idempotent,
// never fails, never contacts the server.
func (m *SessionManager) Logout() {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.clearSession()
}

// RefreshToken rotates the current token. With no token present there is
// nothing to refresh: the session is cleared and the caller is told to
// re-authenticate. On rejection the session is cleared the same way. On
// success only the token changes; the user identity is untouched.
func (m *SessionManager) RefreshToken(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	current := m.Session().Token
	if current == "" {
		m.clearSession()
		return domain.ErrNotAuthenticated
	}

	m.setLoading(true)
	defer m.setLoading(false)

	var resp struct {
		Token string `json:"token"`
	}
	body := map[string]string{"token": current}
	if err := m.client.Post(ctx, "/auth/refresh-token", body, &resp); err != nil {
		m.log.Warn().Err(err).Msg("token refresh rejected, session cleared")
		m.clearSession()
		return errors.Join(domain.ErrSessionExpired, err)
	}
	if resp.Token == "" {
		m.clearSession()
		return errors.Join(domain.ErrSessionExpired, errors.New("refresh response missing token"))
	}

	m.persistCredential(resp.Token)
	m.client.AttachToken(resp.Token)

	m.stateMu.Lock()
	m.token = resp.Token
	m.stateMu.Unlock()

	m.log.Debug().Msg("token rotated")
	return nil
}

// UpdateUser merges a partial profile edit into the session user without a
// network call, after an out-of-band profile update. No-op when no user is
// authenticated.
func (m *SessionManager) UpdateUser(update domain.UserUpdate) {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	if m.user == nil {
		return
	}
	if update.Username != nil {
		m.user.Username = *update.Username
	}
	if update.Email != nil {
		m.user.Email = *update.Email
	}
	if update.FullName != nil {
		m.user.FullName = *update.FullName
	}
	if update.PhoneNumber != nil {
		m.user.PhoneNumber = *update.PhoneNumber
	}
	if update.Avatar != nil {
		m.user.Avatar = update.Avatar
	}
}

// Session returns a point-in-time snapshot. The user is copied so callers
// cannot mutate session state through it.
func (m *SessionManager) Session() ports.Session {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()

	var user *domain.User
	if m.user != nil {
		clone := *m.user
		user = &clone
	}
	return ports.Session{
		User:          user,
		Token:         m.token,
		Authenticated: m.authenticated,
		Loading:       m.loading,
	}
}

// TokenExpiry reports the current token's expiry claim without verifying
// the signature (the client holds no signing secret). ok is false when no
// token is attached or it carries no expiry.
func (m *SessionManager) TokenExpiry() (time.Time, bool) {
	token := m.Session().Token
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (m *SessionManager) alreadyBootstrapped() bool {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	if m.bootstrapped {
		return true
	}
	m.bootstrapped = true
	return false
}

func (m *SessionManager) setLoading(v bool) {
	m.stateMu.Lock()
	m.loading = v
	m.stateMu.Unlock()
}

func (m *SessionManager) setAuthenticated(user *domain.User, token string) {
	m.stateMu.Lock()
	m.user = user
	m.token = token
	m.authenticated = true
	m.loading = false
	m.stateMu.Unlock()
}

func (m *SessionManager) resetState() {
	m.stateMu.Lock()
	m.user = nil
	m.token = ""
	m.authenticated = false
	m.loading = false
	m.stateMu.Unlock()
}

// clearSession is the full local teardown: credential store, attached
// header, in-memory state.
func (m *SessionManager) clearSession() {
	m.discardCredential()
	m.resetState()
}

func (m *SessionManager) discardCredential() {
	m.client.DetachToken()
	if err := m.creds.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("failed to clear stored credential")
	}
}

// restorePriorSession re-establishes an existing valid session after a
// failed login or registration attempt. The attempt may have returned 401,
// which makes the transport clear the persisted credential even though the
// attached session token is still good; a new attempt failing must never log
// out the session that was already there.
func (m *SessionManager) restorePriorSession() {
	prior := m.Session()
	if !prior.Authenticated {
		return
	}
	m.persistCredential(prior.Token)
	m.client.AttachToken(prior.Token)
}

func (m *SessionManager) persistCredential(token string) {
	// A write failure degrades to an in-memory-only session; the login
	// itself still succeeds.
	if err := m.creds.Write(token); err != nil {
		m.log.Warn().Err(err).Msg("failed to persist credential, session will not survive restart")
	}
}

var _ ports.SessionService = (*SessionManager)(nil)
