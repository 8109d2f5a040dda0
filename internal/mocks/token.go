package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/auth-service/internal/model"
)

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func NewTokenManager(t testingT) *TokenManager {
	m := &TokenManager{}
	register(t, &m.Mock)
	return m
}

func (_m *TokenManager) GenerateAccessToken(claims model.Claims) (string, error) {
	ret := _m.Called(claims)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) GenerateRefreshToken(claims model.Claims) (string, error) {
	ret := _m.Called(claims)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenManager) ParseAccessToken(token string) (model.Claims, error) {
	ret := _m.Called(token)
	return ret.Get(0).(model.Claims), ret.Error(1)
}

func (_m *TokenManager) ParseRefreshToken(token string) (model.Claims, error) {
	ret := _m.Called(token)
	return ret.Get(0).(model.Claims), ret.Error(1)
}

// PasswordHasher is a mock of model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func NewPasswordHasher(t testingT) *PasswordHasher {
	m := &PasswordHasher{}
	register(t, &m.Mock)
	return m
}

func (_m *PasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)
	return ret.String(0), ret.Error(1)
}

func (_m *PasswordHasher) Verify(password, encoded string) bool {
	ret := _m.Called(password, encoded)
	return ret.Bool(0)
}

// IdentityProvider is a mock of model.IdentityProvider.
type IdentityProvider struct {
	mock.Mock
}

func NewIdentityProvider(t testingT) *IdentityProvider {
	m := &IdentityProvider{}
	register(t, &m.Mock)
	return m
}

func (_m *IdentityProvider) Exchange(ctx context.Context, code string) (model.ExternalIdentity, error) {
	ret := _m.Called(ctx, code)
	return ret.Get(0).(model.ExternalIdentity), ret.Error(1)
}

func (_m *IdentityProvider) AuthCodeURL(state string) string {
	ret := _m.Called(state)
	return ret.String(0)
}

// TokenService is a mock of the bearer token resolver used by middleware.
type TokenService struct {
	mock.Mock
}

func NewTokenService(t testingT) *TokenService {
	m := &TokenService{}
	register(t, &m.Mock)
	return m
}

func (_m *TokenService) GetAccountID(ctx context.Context, token string) (uuid.UUID, error) {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}
