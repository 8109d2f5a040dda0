package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/auth-service/internal/logger"
	"github.com/dtroode/auth-service/internal/metrics"
	"github.com/dtroode/auth-service/internal/model"
	"github.com/dtroode/auth-service/internal/password"
)

// MessageExternalLogin is returned on a successful external identity login.
const MessageExternalLogin = "External authentication successful"

type Auth struct {
	accounts model.AccountStore
	hasher   model.PasswordHasher
	tokens   *TokenService
	provider model.IdentityProvider
	metrics  *metrics.Metrics
	logger   *logger.Logger
	now      func() time.Time
}

// NewAuth creates the auth flow controller. provider may be nil when external
// login is not configured.
func NewAuth(
	accounts model.AccountStore,
	hasher model.PasswordHasher,
	tokens *TokenService,
	provider model.IdentityProvider,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		provider: provider,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// SignUp registers a password account and starts its first session.
func (a *Auth) SignUp(ctx context.Context, params model.SignUpParams) (result model.AuthResult, err error) {
	defer func() { err = a.finish(ctx, metrics.OpSignUp, err) }()

	email := normalizeEmail(params.Email)
	a.logger.Debug("Auth service: starting sign up", "email", email)

	_, err = a.accounts.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: account already exists", "email", email)
		return model.AuthResult{}, model.ErrAccountAlreadyExists
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	username := params.Username
	if username == "" {
		username = defaultUsername(email)
	}

	now := a.now()
	account, err := a.accounts.Create(ctx, model.Account{
		ID:                 uuid.New(),
		Email:              email,
		Username:           username,
		PasswordHash:       hash,
		RegistrationMethod: model.RegistrationMethodPassword,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.AuthResult{}, model.ErrAccountAlreadyExists
	}
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to create account: %w", err)
	}

	result, err = a.startSession(ctx, account)
	if err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Info("Auth service: sign up completed", "email", email, "account_id", account.ID.String())
	return result, nil
}

// LogIn checks credentials and starts a new session, superseding any previous one.
func (a *Auth) LogIn(ctx context.Context, email, pass string) (result model.AuthResult, err error) {
	defer func() { err = a.finish(ctx, metrics.OpLogIn, err) }()

	email = normalizeEmail(email)
	a.logger.Debug("Auth service: starting log in", "email", email)

	account, err := a.accounts.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.AuthResult{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if !a.hasher.Verify(pass, account.PasswordHash) {
		a.logger.Info("Auth service: invalid credentials", "email", email)
		return model.AuthResult{}, model.ErrInvalidCredentials
	}

	result, err = a.startSession(ctx, account)
	if err != nil {
		return model.AuthResult{}, err
	}

	a.logger.Info("Auth service: log in completed", "account_id", account.ID.String())
	return result, nil
}

// Refresh rotates the presented refresh token into a new pair. The presented
// token is invalidated as a separate step after the new pair is stored.
func (a *Auth) Refresh(ctx context.Context, presented string) (pair model.TokenPair, err error) {
	defer func() { err = a.finish(ctx, metrics.OpRefresh, err) }()

	claims, err := a.tokens.VerifyRefreshToken(ctx, presented)
	if err != nil {
		return model.TokenPair{}, err
	}

	pair, err = a.tokens.IssuePair(ctx, claims)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue token pair: %w", err)
	}

	if err := a.tokens.InvalidateRefreshToken(ctx, presented); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to invalidate presented token: %w", err)
	}

	a.logger.Info("Auth service: tokens refreshed", "account_id", claims.AccountID.String())
	return pair, nil
}

// LogOut ends the session holding presented. It succeeds for unknown tokens.
func (a *Auth) LogOut(ctx context.Context, presented string) (err error) {
	defer func() { err = a.finish(ctx, metrics.OpLogOut, err) }()

	if err := a.tokens.InvalidateRefreshToken(ctx, presented); err != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	a.logger.Debug("Auth service: logged out")
	return nil
}

// LoginWithExternalIdentity signs in, creating the account on first use, and
// records the external subject on the account.
func (a *Auth) LoginWithExternalIdentity(ctx context.Context, identity model.ExternalIdentity) (result model.AuthResult, err error) {
	defer func() { err = a.finish(ctx, metrics.OpExternalLogIn, err) }()

	email := normalizeEmail(identity.Email)
	if email == "" || identity.Subject == "" {
		return model.AuthResult{}, model.ErrExternalIdentity
	}

	account, err := a.findOrCreateExternal(ctx, email, identity)
	if err != nil {
		return model.AuthResult{}, err
	}

	result, err = a.startSession(ctx, account)
	if err != nil {
		return model.AuthResult{}, err
	}

	if err := a.accounts.LinkExternalIdentity(ctx, account.ID, identity.Subject); err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to link external identity: %w", err)
	}

	a.logger.Info("Auth service: external log in completed", "account_id", account.ID.String())
	result.Message = MessageExternalLogin
	return result, nil
}

// LoginWithExternalCode exchanges an authorization code with the configured
// provider and signs in with the resulting identity.
func (a *Auth) LoginWithExternalCode(ctx context.Context, code string) (model.AuthResult, error) {
	if a.provider == nil {
		a.logger.Warn("Auth service: external login requested but no provider configured")
		return model.AuthResult{}, a.finish(ctx, metrics.OpExternalLogIn, model.ErrExternalIdentity)
	}

	identity, err := a.provider.Exchange(ctx, code)
	if err != nil {
		a.logger.Info("Auth service: external code exchange failed", "error", err.Error())
		return model.AuthResult{}, a.finish(ctx, metrics.OpExternalLogIn, model.ErrExternalIdentity)
	}

	return a.LoginWithExternalIdentity(ctx, identity)
}

// ExternalLoginURL returns the provider URL that starts an external login.
func (a *Auth) ExternalLoginURL(_ context.Context, state string) (string, error) {
	if a.provider == nil {
		return "", model.ErrExternalIdentity
	}
	return a.provider.AuthCodeURL(state), nil
}

// WhoAmI returns the public view of the account.
func (a *Auth) WhoAmI(ctx context.Context, accountID uuid.UUID) (model.AccountView, error) {
	account, err := a.accounts.GetByID(ctx, accountID)
	if errors.Is(err, model.ErrNotFound) {
		return model.AccountView{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.AccountView{}, boundary(a.logger, "Auth service", "who am i", err)
	}
	return account.View(), nil
}

func (a *Auth) findOrCreateExternal(ctx context.Context, email string, identity model.ExternalIdentity) (model.Account, error) {
	account, err := a.accounts.GetByEmail(ctx, email)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	username := identity.DisplayName
	if username == "" {
		username = defaultUsername(email)
	}
	subject := identity.Subject

	now := a.now()
	account, err = a.accounts.Create(ctx, model.Account{
		ID:                 uuid.New(),
		Email:              email,
		Username:           username,
		PasswordHash:       password.ExternalPlaceholder(subject),
		ExternalSubject:    &subject,
		RegistrationMethod: model.RegistrationMethodExternal,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		// Lost a race with a concurrent first login.
		return a.accounts.GetByEmail(ctx, email)
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	a.logger.Info("Auth service: created account for external identity", "email", email)
	return account, nil
}

func (a *Auth) startSession(ctx context.Context, account model.Account) (model.AuthResult, error) {
	pair, err := a.tokens.IssuePair(ctx, model.Claims{AccountID: account.ID, Email: account.Email})
	if err != nil {
		return model.AuthResult{}, fmt.Errorf("failed to issue token pair: %w", err)
	}

	return model.AuthResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Account:      account.View(),
	}, nil
}

func (a *Auth) finish(ctx context.Context, op string, err error) error {
	a.metrics.Record(ctx, op, err)
	return boundary(a.logger, "Auth service", op, err)
}
