package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/auth-service/internal/model"
)

// AccountStore is a mock of model.AccountStore.
type AccountStore struct {
	mock.Mock
}

func NewAccountStore(t testingT) *AccountStore {
	m := &AccountStore{}
	register(t, &m.Mock)
	return m
}

func (_m *AccountStore) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(model.Account), ret.Error(1)
}

func (_m *AccountStore) GetByID(ctx context.Context, id uuid.UUID) (model.Account, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(model.Account), ret.Error(1)
}

func (_m *AccountStore) Create(ctx context.Context, account model.Account) (model.Account, error) {
	ret := _m.Called(ctx, account)
	if rf, ok := ret.Get(0).(func(context.Context, model.Account) model.Account); ok {
		return rf(ctx, account), ret.Error(1)
	}
	return ret.Get(0).(model.Account), ret.Error(1)
}

func (_m *AccountStore) SetRefreshToken(ctx context.Context, id uuid.UUID, tokenHash []byte, expiresAt time.Time) error {
	ret := _m.Called(ctx, id, tokenHash, expiresAt)
	return ret.Error(0)
}

func (_m *AccountStore) ClearRefreshToken(ctx context.Context, tokenHash []byte) error {
	ret := _m.Called(ctx, tokenHash)
	return ret.Error(0)
}

func (_m *AccountStore) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	ret := _m.Called(ctx, email, passwordHash)
	return ret.Error(0)
}

func (_m *AccountStore) LinkExternalIdentity(ctx context.Context, id uuid.UUID, subject string) error {
	ret := _m.Called(ctx, id, subject)
	return ret.Error(0)
}
