package model

import (
	"context"

	"github.com/google/uuid"
)

// Claims are the identity facts carried by access and refresh tokens.
type Claims struct {
	AccountID uuid.UUID
	Email     string
}

// TokenPair is an access token with its refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenManager generates and validates access/refresh tokens.
type TokenManager interface {
	GenerateAccessToken(claims Claims) (string, error)
	GenerateRefreshToken(claims Claims) (string, error)
	ParseAccessToken(token string) (Claims, error)
	ParseRefreshToken(token string) (Claims, error)
}

// PasswordHasher derives and checks password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches encoded. Malformed input yields false.
	Verify(password, encoded string) bool
}

// IdentityProvider exchanges an authorization code for a verified external identity.
type IdentityProvider interface {
	// AuthCodeURL returns the provider login URL carrying state.
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (ExternalIdentity, error)
}
