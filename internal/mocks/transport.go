package mocks

import (
	"context"
	"net"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/auth-service/internal/model"
)

// AuthService is a mock of handler.AuthService.
type AuthService struct {
	mock.Mock
}

func NewAuthService(t testingT) *AuthService {
	m := &AuthService{}
	register(t, &m.Mock)
	return m
}

func (_m *AuthService) SignUp(ctx context.Context, params model.SignUpParams) (model.AuthResult, error) {
	ret := _m.Called(ctx, params)
	return ret.Get(0).(model.AuthResult), ret.Error(1)
}

func (_m *AuthService) LogIn(ctx context.Context, email, password string) (model.AuthResult, error) {
	ret := _m.Called(ctx, email, password)
	return ret.Get(0).(model.AuthResult), ret.Error(1)
}

func (_m *AuthService) Refresh(ctx context.Context, presented string) (model.TokenPair, error) {
	ret := _m.Called(ctx, presented)
	return ret.Get(0).(model.TokenPair), ret.Error(1)
}

func (_m *AuthService) LogOut(ctx context.Context, presented string) error {
	ret := _m.Called(ctx, presented)
	return ret.Error(0)
}

func (_m *AuthService) LoginWithExternalCode(ctx context.Context, code string) (model.AuthResult, error) {
	ret := _m.Called(ctx, code)
	return ret.Get(0).(model.AuthResult), ret.Error(1)
}

func (_m *AuthService) ExternalLoginURL(ctx context.Context, state string) (string, error) {
	ret := _m.Called(ctx, state)
	return ret.String(0), ret.Error(1)
}

func (_m *AuthService) WhoAmI(ctx context.Context, accountID uuid.UUID) (model.AccountView, error) {
	ret := _m.Called(ctx, accountID)
	return ret.Get(0).(model.AccountView), ret.Error(1)
}

// PasswordService is a mock of handler.PasswordService.
type PasswordService struct {
	mock.Mock
}

func NewPasswordService(t testingT) *PasswordService {
	m := &PasswordService{}
	register(t, &m.Mock)
	return m
}

func (_m *PasswordService) RequestReset(ctx context.Context, email string) (model.ResetRequestResult, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(model.ResetRequestResult), ret.Error(1)
}

func (_m *PasswordService) RedeemReset(ctx context.Context, email, secret, newPassword string) (string, error) {
	ret := _m.Called(ctx, email, secret, newPassword)
	return ret.String(0), ret.Error(1)
}

// ContextManager is a mock of model.ContextManager.
type ContextManager struct {
	mock.Mock
}

func NewContextManager(t testingT) *ContextManager {
	m := &ContextManager{}
	register(t, &m.Mock)
	return m
}

func (_m *ContextManager) SetAccountIDToContext(ctx context.Context, accountID uuid.UUID) context.Context {
	ret := _m.Called(ctx, accountID)
	return ret.Get(0).(context.Context)
}

func (_m *ContextManager) GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	ret := _m.Called(ctx)
	return ret.Get(0).(uuid.UUID), ret.Bool(1)
}

// SecurityLayer is a mock of model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

func NewSecurityLayer(t testingT) *SecurityLayer {
	m := &SecurityLayer{}
	register(t, &m.Mock)
	return m
}

func (_m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	ret := _m.Called(protocol, addr)
	ln, _ := ret.Get(0).(net.Listener)
	return ln, ret.Error(1)
}
