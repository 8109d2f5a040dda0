package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RegistrationMethod tells how an account was first created or last linked.
type RegistrationMethod string

const (
	// RegistrationMethodPassword is an account created with email and password.
	RegistrationMethodPassword RegistrationMethod = "password"
	// RegistrationMethodExternal is an account created or linked through an external identity provider.
	RegistrationMethodExternal RegistrationMethod = "external"
)

// AccountStore defines persistence operations for accounts.
// Every method is a single atomic statement against one account row.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	Create(ctx context.Context, account Account) (Account, error)
	// SetRefreshToken overwrites the stored refresh token digest and expiry.
	SetRefreshToken(ctx context.Context, id uuid.UUID, tokenHash []byte, expiresAt time.Time) error
	// ClearRefreshToken clears the session of whichever account holds tokenHash.
	// Zero affected accounts is not an error.
	ClearRefreshToken(ctx context.Context, tokenHash []byte) error
	// UpdatePassword replaces the password hash and ends the active session.
	UpdatePassword(ctx context.Context, email string, passwordHash string) error
	LinkExternalIdentity(ctx context.Context, id uuid.UUID, subject string) error
}

// Account represents a stored account with its session state.
type Account struct {
	ID                    uuid.UUID
	Email                 string
	Username              string
	PasswordHash          string
	ExternalSubject       *string
	RegistrationMethod    RegistrationMethod
	RefreshTokenHash      []byte
	RefreshTokenExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasActiveSession reports whether a refresh token digest is stored and not expired at now.
func (a Account) HasActiveSession(now time.Time) bool {
	if len(a.RefreshTokenHash) == 0 || a.RefreshTokenExpiresAt == nil {
		return false
	}
	return now.Before(*a.RefreshTokenExpiresAt)
}

// View returns the public projection of the account.
func (a Account) View() AccountView {
	return AccountView{
		ID:       a.ID,
		Email:    a.Email,
		Username: a.Username,
	}
}

// AccountView is the account data safe to return to callers.
type AccountView struct {
	ID       uuid.UUID
	Email    string
	Username string
}

// SignUpParams contains parameters to register a password account.
type SignUpParams struct {
	Email    string
	Password string
	Username string
}

// ExternalIdentity is an identity asserted by an external provider.
type ExternalIdentity struct {
	Email       string
	Subject     string
	DisplayName string
}

// AuthResult is returned by flows that start a session.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	Account      AccountView
	Message      string
}
