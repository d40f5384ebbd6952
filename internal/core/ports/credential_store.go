package ports

// CredentialStore persists the bearer token between process runs. It is the
// only durable client-side authentication state; the profile is always
// re-fetched from the server.
type CredentialStore interface {
	// Read returns the stored token, or "" when none is stored. Absence is
	// a valid, expected outcome, not an error.
	Read() (string, error)
	// Write durably stores the token, overwriting any prior value.
	Write(token string) error
	// Clear removes any stored token. Clearing an empty store is not an error.
	Clear() error
}
