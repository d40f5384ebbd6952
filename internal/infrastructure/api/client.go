// Package api implements the shared HTTP dispatcher every service calls
// through: a base-addressed JSON client that attaches the current bearer
// credential to outgoing requests and observes responses for authentication
// failures. It is an interception layer, not a business-logic layer — every
// error is re-surfaced to the caller after its side effects run.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/damilolajohn6/trendora-admin/internal/core/domain"
	"github.com/damilolajohn6/trendora-admin/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Options configures a Client.
type Options struct {
	// BaseURL is the fixed base address of the API. Required.
	BaseURL string
	// Timeout bounds each request when HTTPClient is not supplied.
	Timeout time.Duration
	// HTTPClient overrides the underlying transport. Optional.
	HTTPClient *http.Client
	// Credentials is cleared whenever a response signals an authentication
	// failure, so a known-bad token is never replayed on the next start.
	// Optional.
	Credentials ports.CredentialStore
	// OnAuthRejected runs after the credential is cleared on a 401. The
	// client itself never redirects or mutates session state; navigation
	// is the observing caller's decision. Optional.
	OnAuthRejected func()
	Logger         zerolog.Logger
}

// Client is the single shared request dispatcher. The attached token lives
// in memory and is replaced only through AttachToken/DetachToken — it is not
// re-read from persisted storage on every call.
type Client struct {
	base           *url.URL
	http           *http.Client
	creds          ports.CredentialStore
	onAuthRejected func()
	log            zerolog.Logger

	mu    sync.RWMutex
	token string
}

// New builds a Client. A missing base address is a configuration error; it
// is surfaced here, before any call can be attempted.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, domain.ErrNotConfigured
	}
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid base url: %w", err)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		base:           base,
		http:           hc,
		creds:          opts.Credentials,
		onAuthRejected: opts.OnAuthRejected,
		log:            opts.Logger,
	}, nil
}

// AttachToken sets the bearer credential attached to subsequent requests.
func (c *Client) AttachToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// DetachToken removes the bearer credential; subsequent requests are sent
// without an Authorization header.
func (c *Client) DetachToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorBody is the server's error envelope. Both shapes occur in the wild;
// whichever field is present wins.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Do issues a request and decodes the JSON response into out when out is
// non-nil. On HTTP 401 the persisted credential is cleared and OnAuthRejected
// fires before the error is returned; all other statuses pass through as
// classified failures with no side effects.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any, header http.Header) error {
	u := c.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(method, "transport_error").Inc()
		return &APIError{Kind: FailureTransport, Err: err}
	}
	defer resp.Body.Close()

	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: FailureTransport, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleAuthRejection(method, path)
	}

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		msg := eb.Message
		if msg == "" {
			msg = eb.Error
		}
		return &APIError{
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: msg,
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &APIError{Kind: FailureUnknown, Status: resp.StatusCode, Message: "malformed response", Err: err}
		}
	}
	return nil
}

// handleAuthRejection clears the persisted credential so the known-bad token
// is not replayed, then notifies the subscriber. Session state is untouched;
// that transition belongs to the session manager.
func (c *Client) handleAuthRejection(method, path string) {
	authRejectionsTotal.Inc()
	c.log.Info().Str("method", method).Str("path", path).Msg("authentication rejected, clearing stored credential")

	if c.creds != nil {
		if err := c.creds.Clear(); err != nil {
			c.log.Warn().Err(err).Msg("failed to clear stored credential")
		}
	}
	if c.onAuthRejected != nil {
		c.onAuthRejected()
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out, nil)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out, nil)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out, nil)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil, nil)
}
