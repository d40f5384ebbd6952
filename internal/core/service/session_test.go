package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/damilolajohn6/trendora-admin/internal/apitest"
	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
	"github.com/damilolajohn6/trendora-admin/internal/core/ports"
	"github.com/damilolajohn6/trendora-admin/internal/infrastructure/api"
	"github.com/damilolajohn6/trendora-admin/internal/infrastructure/credstore"
)

type harness struct {
	srv     *apitest.Server
	client  *api.Client
	creds   *credstore.MemoryStore
	session *SessionManager
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := apitest.New()
	t.Cleanup(srv.Close)

	creds := credstore.NewMemoryStore()
	client, err := api.New(api.Options{
		BaseURL:     srv.URL(),
		Credentials: creds,
		Logger:      zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return &harness{
		srv:     srv,
		client:  client,
		creds:   creds,
		session: NewSessionManager(client, creds, zerolog.Nop()),
	}
}

func TestBootstrap_NoStoredToken(t *testing.T) {
	h := newHarness(t)

	s := h.session.Bootstrap(context.Background())

	if s.Authenticated {
		t.Fatalf("expected unauthenticated")
	}
	if s.User != nil {
		t.Fatalf("expected no user, got %+v", s.User)
	}
	if s.Loading {
		t.Fatalf("loading should be false after bootstrap")
	}
	if h.srv.ProfileRequests != 0 {
		t.Fatalf("no profile request should be issued without a token, got %d", h.srv.ProfileRequests)
	}
}

func TestBootstrap_ValidStoredToken(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("ada@trendora.dev", "pw-longenough", domain.RoleAdmin)
	token := h.srv.IssueToken("ada@trendora.dev")
	_ = h.creds.Write(token)

	s := h.session.Bootstrap(context.Background())

	if !s.Authenticated {
		t.Fatalf("expected authenticated session")
	}
	if s.User == nil || s.User.Email != "ada@trendora.dev" {
		t.Fatalf("unexpected user: %+v", s.User)
	}
	if s.Token != token {
		t.Fatalf("expected stored token reused")
	}

	// The exact token must ride on the next arbitrary request.
	customers := NewCustomerService(h.client, zerolog.Nop())
	if _, _, err := customers.List(context.Background(), ports.CustomerListParams{}); err != nil {
		t.Fatalf("authenticated request failed: %v", err)
	}
}

func TestBootstrap_ExpiredStoredToken(t *testing.T) {
	h := newHarness(t)
	_ = h.creds.Write("tampered-or-expired")

	s := h.session.Bootstrap(context.Background())

	if s.Authenticated {
		t.Fatalf("expected unauthenticated after rejected token")
	}
	token, _ := h.creds.Read()
	if token != "" {
		t.Fatalf("expected credential cleared, still holds %q", token)
	}
	if s.Loading {
		t.Fatalf("loading should be false")
	}
}

func TestBootstrap_RunsOnce(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("ada@trendora.dev", "pw-longenough", domain.RoleAdmin)
	_ = h.creds.Write(h.srv.IssueToken("ada@trendora.dev"))

	h.session.Bootstrap(context.Background())
	first := h.srv.ProfileRequests

	h.session.Bootstrap(context.Background())
	if h.srv.ProfileRequests != first {
		t.Fatalf("second bootstrap must not re-run the sequence")
	}
}

func TestLogin_Success(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("staff@trendora.dev", "pw-longenough", domain.RoleStaff)

	s, err := h.session.Login(context.Background(), "staff@trendora.dev", "pw-longenough", domain.RoleStaff)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !s.Authenticated || s.Token == "" {
		t.Fatalf("expected authenticated session with token")
	}
	if s.User == nil || s.User.Role != domain.RoleStaff {
		t.Fatalf("unexpected user: %+v", s.User)
	}

	stored, _ := h.creds.Read()
	if stored != s.Token {
		t.Fatalf("persisted credential %q does not match session token", stored)
	}
}

func TestLogin_CustomerEndpointRouting(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("shopper@example.com", "pw-longenough", domain.RoleCustomer)

	// The staff endpoint must reject a customer account.
	if _, err := h.session.Login(context.Background(), "shopper@example.com", "pw-longenough", domain.RoleStaff); err == nil {
		t.Fatalf("expected staff endpoint to reject customer account")
	}

	s, err := h.session.Login(context.Background(), "shopper@example.com", "pw-longenough", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("customer login failed: %v", err)
	}
	if !s.Authenticated {
		t.Fatalf("expected authenticated")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("staff@trendora.dev", "pw-longenough", domain.RoleStaff)

	s, err := h.session.Login(context.Background(), "staff@trendora.dev", "wrong", domain.RoleStaff)
	if !api.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if s.Authenticated || s.Loading {
		t.Fatalf("failed login must leave an unauthenticated, non-loading session")
	}
}

func TestLogin_FailureLeavesPriorSessionIntact(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("staff@trendora.dev", "pw-longenough", domain.RoleStaff)

	first, err := h.session.Login(context.Background(), "staff@trendora.dev", "pw-longenough", domain.RoleStaff)
	if err != nil {
		t.Fatalf("initial login failed: %v", err)
	}

	if _, err := h.session.Login(context.Background(), "staff@trendora.dev", "wrong", domain.RoleStaff); err == nil {
		t.Fatalf("expected second login to fail")
	}

	s := h.session.Session()
	if !s.Authenticated || s.Token != first.Token {
		t.Fatalf("failed login attempt must not log out the existing session")
	}
	if s.Loading {
		t.Fatalf("loading must be reset once the attempt has finished")
	}
	stored, _ := h.creds.Read()
	if stored != first.Token {
		t.Fatalf("persisted credential must be restored after failed attempt, got %q", stored)
	}

	// And the original session still works against the server.
	customers := NewCustomerService(h.client, zerolog.Nop())
	if _, _, err := customers.List(context.Background(), ports.CustomerListParams{}); err != nil {
		t.Fatalf("prior session no longer usable: %v", err)
	}
}

func TestMidSession401_ClearsCredential(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("staff@trendora.dev", "pw-longenough", domain.RoleStaff)
	if _, err := h.session.Login(context.Background(), "staff@trendora.dev", "pw-longenough", domain.RoleStaff); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Simulate server-side invalidation: the attached token goes stale.
	h.client.AttachToken("revoked")

	customers := NewCustomerService(h.client, zerolog.Nop())
	_, _, err := customers.List(context.Background(), ports.CustomerListParams{})
	if !api.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	stored, _ := h.creds.Read()
	if stored != "" {
		t.Fatalf("credential must be cleared before the error reaches the caller, got %q", stored)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("staff@trendora.dev", "pw-longenough", domain.RoleStaff)
	if _, err := h.session.Login(context.Background(), "staff@trendora.dev", "pw-longenough", domain.RoleStaff); err != nil {
		t.Fatalf("login: %v", err)
	}

	h.session.Logout()
	h.session.Logout()

	s := h.session.Session()
	if s.Authenticated || s.Token != "" || s.User != nil || s.Loading {
		t.Fatalf("expected empty session after logout, got %+v", s)
	}
	stored, _ := h.creds.Read()
	if stored != "" {
		t.Fatalf("credential must be cleared on logout")
	}

	// The immediately following request must carry no Authorization header;
	// the server answers 401 for headerless requests.
	customers := NewCustomerService(h.client, zerolog.Nop())
	_, _, err := customers.List(context.Background(), ports.CustomerListParams{})
	var ae *api.APIError
	if !errors.As(err, &ae) || ae.Message != "missing authorization header" {
		t.Fatalf("expected headerless request after logout, got %v", err)
	}
}

func TestRefreshToken_RotatesTokenOnly(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("staff@trendora.dev", "pw-longenough", domain.RoleStaff)
	first, err := h.session.Login(context.Background(), "staff@trendora.dev", "pw-longenough", domain.RoleStaff)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := h.session.RefreshToken(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	s := h.session.Session()
	if !s.Authenticated {
		t.Fatalf("refresh success must not change authentication state")
	}
	if s.Token == first.Token {
		t.Fatalf("expected a rotated token")
	}
	if s.User == nil || s.User.Email != first.User.Email {
		t.Fatalf("user identity must be unchanged")
	}
	stored, _ := h.creds.Read()
	if stored != s.Token {
		t.Fatalf("rotated token must be persisted")
	}
}

func TestRefreshToken_NoToken(t *testing.T) {
	h := newHarness(t)

	err := h.session.RefreshToken(context.Background())
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if h.srv.RefreshRequests != 0 {
		t.Fatalf("no refresh request should be issued without a token")
	}
}

func TestRefreshToken_RejectionClearsSession(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("staff@trendora.dev", "pw-longenough", domain.RoleStaff)
	if _, err := h.session.Login(context.Background(), "staff@trendora.dev", "pw-longenough", domain.RoleStaff); err != nil {
		t.Fatalf("login: %v", err)
	}
	h.srv.SetFailRefresh(true)

	err := h.session.RefreshToken(context.Background())
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	s := h.session.Session()
	if s.Authenticated || s.Token != "" {
		t.Fatalf("refresh rejection must clear the session")
	}
	stored, _ := h.creds.Read()
	if stored != "" {
		t.Fatalf("refresh rejection must clear the persisted credential")
	}
}

func TestRegister_CustomerSelfActivates(t *testing.T) {
	h := newHarness(t)

	result, err := h.session.Register(context.Background(), domain.Registration{
		Username:    "shopper",
		Email:       "shopper@example.com",
		Password:    "pw-longenough",
		Role:        domain.RoleCustomer,
		FullName:    "New Shopper",
		PhoneNumber: "+15550100",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("customer registration should return a token")
	}

	s := h.session.Session()
	if !s.Authenticated || s.User == nil || s.User.Email != "shopper@example.com" {
		t.Fatalf("customer registration should log in immediately, got %+v", s)
	}
	stored, _ := h.creds.Read()
	if stored != s.Token {
		t.Fatalf("token from registration must be persisted")
	}
}

func TestRegister_StaffDoesNotAuthenticate(t *testing.T) {
	h := newHarness(t)

	result, err := h.session.Register(context.Background(), domain.Registration{
		Username:    "newstaff",
		Email:       "newstaff@trendora.dev",
		Password:    "pw-longenough",
		Role:        domain.RoleStaff,
		FullName:    "New Staff",
		PhoneNumber: "+15550101",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected creation result, got %+v", result)
	}
	if result.Token != "" {
		t.Fatalf("staff registration must not grant a session")
	}
	if h.session.Session().Authenticated {
		t.Fatalf("staff registration must not mutate authentication state")
	}
}

func TestRegister_ValidationRejectsBeforeSending(t *testing.T) {
	h := newHarness(t)

	_, err := h.session.Register(context.Background(), domain.Registration{
		Username: "x", // too short, and everything else missing
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestUpdateUser_MergesPartialProfile(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("staff@trendora.dev", "pw-longenough", domain.RoleStaff)
	if _, err := h.session.Login(context.Background(), "staff@trendora.dev", "pw-longenough", domain.RoleStaff); err != nil {
		t.Fatalf("login: %v", err)
	}

	name := "Grace Hopper"
	h.session.UpdateUser(domain.UserUpdate{FullName: &name})

	s := h.session.Session()
	if s.User.FullName != "Grace Hopper" {
		t.Fatalf("expected merged name, got %q", s.User.FullName)
	}
	if s.User.Email != "staff@trendora.dev" {
		t.Fatalf("untouched fields must survive the merge")
	}
}

func TestUpdateUser_NoopWhenUnauthenticated(t *testing.T) {
	h := newHarness(t)

	name := "Nobody"
	h.session.UpdateUser(domain.UserUpdate{FullName: &name})

	if h.session.Session().User != nil {
		t.Fatalf("update on empty session must be a no-op")
	}
}

func TestTokenExpiry(t *testing.T) {
	h := newHarness(t)
	h.srv.SeedUser("staff@trendora.dev", "pw-longenough", domain.RoleStaff)

	if _, ok := h.session.TokenExpiry(); ok {
		t.Fatalf("no expiry expected without a token")
	}

	if _, err := h.session.Login(context.Background(), "staff@trendora.dev", "pw-longenough", domain.RoleStaff); err != nil {
		t.Fatalf("login: %v", err)
	}

	exp, ok := h.session.TokenExpiry()
	if !ok {
		t.Fatalf("expected an expiry claim")
	}
	if until := time.Until(exp); until < 30*time.Minute || until > 2*time.Hour {
		t.Fatalf("implausible expiry: %v", exp)
	}
}
