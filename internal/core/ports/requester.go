package ports

import (
	"context"
	"net/http"
	"net/url"
)

// Requester is the shared request dispatcher every service calls through.
// Implementations attach the current bearer credential to outgoing requests
// and observe responses for authentication failures; they never swallow an
// error and never redirect.
type Requester interface {
	// Do issues a request and decodes a JSON response body into out when
	// out is non-nil. Extra headers may be nil.
	Do(ctx context.Context, method, path string, query url.Values, body, out any, header http.Header) error

	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// TokenAttacher is the client configuration surface the session manager
// drives. Attaching replaces the credential used for subsequent requests;
// detaching removes the Authorization header entirely (it is never sent
// empty).
type TokenAttacher interface {
	AttachToken(token string)
	DetachToken()
}
