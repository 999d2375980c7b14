package ports

import "context"

// TokenClaims is the identity carried by an access token.
type TokenClaims struct {
	UserID string
	Role   string
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	Issue(claims TokenClaims) (string, error)
	Verify(token string) (*TokenClaims, error)
}

// PasswordHasher one-way hashes secrets and checks them against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// IdempotencyStore remembers which resource a client-supplied key created.
type IdempotencyStore interface {
	Lookup(ctx context.Context, scope, key string) (id string, found bool, err error)
	Remember(ctx context.Context, scope, key, id string) error
}
