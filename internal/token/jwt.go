package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.TokenManager = (*JWT)(nil)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// Claims represents JWT claims with token type and account email.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	TokenType string `json:"typ"`
}

// Config holds signing keys and lifetimes for both token kinds.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// JWT implements TokenManager backed by symmetric HMAC.
// Access and refresh tokens are signed with different keys.
type JWT struct {
	config Config
	now    func() time.Time
}

// NewJWT creates a new JWT token manager.
func NewJWT(cfg Config) (*JWT, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, errors.New("token secrets must not be empty")
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, errors.New("access and refresh secrets must differ")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	return &JWT{config: cfg, now: time.Now}, nil
}

// RefreshTTL returns the refresh token lifetime.
func (j *JWT) RefreshTTL() time.Duration {
	return j.config.RefreshTTL
}

// GenerateAccessToken creates a short-lived access token.
func (j *JWT) GenerateAccessToken(claims model.Claims) (string, error) {
	token, err := j.sign(claims, typeAccess, j.config.AccessTTL, j.config.AccessSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, nil
}

// GenerateRefreshToken creates a long-lived refresh token.
func (j *JWT) GenerateRefreshToken(claims model.Claims) (string, error) {
	token, err := j.sign(claims, typeRefresh, j.config.RefreshTTL, j.config.RefreshSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return token, nil
}

// ParseAccessToken validates an access token and returns its claims.
func (j *JWT) ParseAccessToken(tokenString string) (model.Claims, error) {
	claims, err := j.parse(tokenString, typeAccess, j.config.AccessSecret)
	if err != nil {
		return model.Claims{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	return claims, nil
}

// ParseRefreshToken validates a refresh token and returns its claims.
func (j *JWT) ParseRefreshToken(tokenString string) (model.Claims, error) {
	claims, err := j.parse(tokenString, typeRefresh, j.config.RefreshSecret)
	if err != nil {
		return model.Claims{}, fmt.Errorf("failed to parse refresh token: %w", err)
	}
	return claims, nil
}

func (j *JWT) sign(claims model.Claims, tokenType string, ttl time.Duration, secret string) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   claims.AccountID.String(),
			Issuer:    j.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:     claims.Email,
		TokenType: tokenType,
	})

	return token.SignedString([]byte(secret))
}

func (j *JWT) parse(tokenString, tokenType, secret string) (model.Claims, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}
	if j.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return model.Claims{}, err
	}
	if !token.Valid {
		return model.Claims{}, errors.New("token is invalid")
	}
	if claims.TokenType != tokenType {
		return model.Claims{}, fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Claims{}, fmt.Errorf("invalid subject: %w", err)
	}

	return model.Claims{AccountID: accountID, Email: claims.Email}, nil
}
