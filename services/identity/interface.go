package identity

import (
	"context"
	"errors"
)

// Identity is the classification of an authenticated caller, computed fresh
// on every request from a verified credential. The admin flag is derived,
// never persisted.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

// ErrUnauthenticated covers missing, malformed, expired, and rejected
// credentials. Identity-provider outages also map here; there is no safe
// fallback for identity.
var ErrUnauthenticated = errors.New("unauthenticated")

// Verifier resolves a bearer credential to an Identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
