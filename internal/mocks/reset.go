package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/auth-service/internal/model"
)

// ResetTokenStore is a mock of model.ResetTokenStore.
type ResetTokenStore struct {
	mock.Mock
}

func NewResetTokenStore(t testingT) *ResetTokenStore {
	m := &ResetTokenStore{}
	register(t, &m.Mock)
	return m
}

func (_m *ResetTokenStore) Create(ctx context.Context, token model.ResetToken) error {
	ret := _m.Called(ctx, token)
	return ret.Error(0)
}

func (_m *ResetTokenStore) Get(ctx context.Context, email string, tokenHash string) (model.ResetToken, error) {
	ret := _m.Called(ctx, email, tokenHash)
	return ret.Get(0).(model.ResetToken), ret.Error(1)
}

func (_m *ResetTokenStore) Delete(ctx context.Context, email string, tokenHash string) error {
	ret := _m.Called(ctx, email, tokenHash)
	return ret.Error(0)
}

// ResetCache is a mock of model.ResetCache.
type ResetCache struct {
	mock.Mock
}

func NewResetCache(t testingT) *ResetCache {
	m := &ResetCache{}
	register(t, &m.Mock)
	return m
}

func (_m *ResetCache) IncrementAttempts(ctx context.Context, email string, window time.Duration) (int64, error) {
	ret := _m.Called(ctx, email, window)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *ResetCache) HasToken(ctx context.Context, email string) (bool, error) {
	ret := _m.Called(ctx, email)
	return ret.Bool(0), ret.Error(1)
}

func (_m *ResetCache) SetToken(ctx context.Context, email string, tokenHash string, ttl time.Duration) error {
	ret := _m.Called(ctx, email, tokenHash, ttl)
	return ret.Error(0)
}

func (_m *ResetCache) ClearToken(ctx context.Context, email string) error {
	ret := _m.Called(ctx, email)
	return ret.Error(0)
}

// Transactor is a mock of model.Transactor.
type Transactor struct {
	mock.Mock
}

func NewTransactor(t testingT) *Transactor {
	m := &Transactor{}
	register(t, &m.Mock)
	return m
}

func (_m *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, stores model.TxStores) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(context.Context, model.TxStores) error) error); ok {
		return rf(ctx, fn)
	}
	return ret.Error(0)
}
