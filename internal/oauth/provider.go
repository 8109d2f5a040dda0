// Package oauth exchanges OpenID Connect authorization codes for verified identities.
package oauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.IdentityProvider = (*Provider)(nil)

var (
	ErrNoIDToken          = errors.New("no id_token in token response")
	ErrEmailNotVerified   = errors.New("email is not verified by provider")
	ErrIncompleteIdentity = errors.New("identity has no email or subject")
)

type Config struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Provider is an OIDC relying party for the authorization code flow.
type Provider struct {
	oauth    *oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// New discovers the issuer's endpoints and keys.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.Issuer == "" || cfg.ClientID == "" {
		return nil, errors.New("oauth issuer and client id are required")
	}

	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover oidc provider: %w", err)
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}

	return NewWithVerifier(oauthCfg, provider.Verifier(&oidc.Config{ClientID: cfg.ClientID})), nil
}

// NewWithVerifier builds a Provider from preconfigured parts.
func NewWithVerifier(cfg *oauth2.Config, verifier *oidc.IDTokenVerifier) *Provider {
	return &Provider{oauth: cfg, verifier: verifier}
}

// AuthCodeURL returns the provider URL a client should be sent to.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// Exchange redeems code and returns the identity from the verified ID token.
func (p *Provider) Exchange(ctx context.Context, code string) (model.ExternalIdentity, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return model.ExternalIdentity{}, fmt.Errorf("failed to exchange code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return model.ExternalIdentity{}, ErrNoIDToken
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return model.ExternalIdentity{}, fmt.Errorf("failed to verify id token: %w", err)
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return model.ExternalIdentity{}, fmt.Errorf("failed to decode id token claims: %w", err)
	}

	if claims.Email == "" || idToken.Subject == "" {
		return model.ExternalIdentity{}, ErrIncompleteIdentity
	}
	if !claims.EmailVerified {
		return model.ExternalIdentity{}, ErrEmailNotVerified
	}

	return model.ExternalIdentity{
		Email:       claims.Email,
		Subject:     idToken.Subject,
		DisplayName: claims.Name,
	}, nil
}
