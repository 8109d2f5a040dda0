package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/auth-service/internal/mocks"
	"github.com/dtroode/auth-service/internal/model"
	"github.com/dtroode/auth-service/internal/testutil"
)

func newMockTokenService(t *testing.T, now time.Time) (*TokenService, *mocks.TokenManager, *mocks.AccountStore) {
	t.Helper()
	manager := mocks.NewTokenManager(t)
	accounts := mocks.NewAccountStore(t)
	svc := NewTokenService(manager, accounts, 24*time.Hour, testutil.MakeNoopLogger())
	svc.now = func() time.Time { return now }
	return svc, manager, accounts
}

func TestTokenService_IssuePair(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	claims := model.Claims{AccountID: uuid.New(), Email: "a@b.c"}

	svc, manager, accounts := newMockTokenService(t, now)
	manager.On("GenerateAccessToken", claims).Return("access", nil).Once()
	manager.On("GenerateRefreshToken", claims).Return("refresh", nil).Once()
	accounts.On("SetRefreshToken", ctx, claims.AccountID, hashRefresh("refresh"), now.Add(24*time.Hour)).Return(nil).Once()

	pair, err := svc.IssuePair(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, model.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, pair)
}

func TestTokenService_IssuePair_ManagerError(t *testing.T) {
	claims := model.Claims{AccountID: uuid.New()}
	svc, manager, _ := newMockTokenService(t, time.Now())
	manager.On("GenerateAccessToken", claims).Return("", assert.AnError).Once()

	_, err := svc.IssuePair(context.Background(), claims)
	require.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_IssueRefreshToken_StoreError(t *testing.T) {
	claims := model.Claims{AccountID: uuid.New()}
	svc, manager, accounts := newMockTokenService(t, time.Now())
	manager.On("GenerateRefreshToken", claims).Return("refresh", nil).Once()
	accounts.On("SetRefreshToken", mock.Anything, claims.AccountID, mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := svc.IssueRefreshToken(context.Background(), claims)
	require.ErrorIs(t, err, assert.AnError)
}

func TestTokenService_VerifyRefreshToken(t *testing.T) {
	t.Parallel()

	now := time.Now()
	accountID := uuid.New()
	future := now.Add(time.Hour)
	past := now.Add(-time.Minute)
	presented := "refresh-old"

	active := model.Account{
		ID:                    accountID,
		Email:                 "a@b.c",
		RefreshTokenHash:      hashRefresh(presented),
		RefreshTokenExpiresAt: &future,
	}

	tests := []struct {
		name     string
		parseErr error
		account  model.Account
		getErr   error
		wantErr  error
		internal bool
	}{
		{name: "valid", account: active},
		{name: "bad signature", parseErr: errors.New("signature is invalid"), wantErr: model.ErrInvalidToken},
		{name: "account gone", getErr: model.ErrNotFound, wantErr: model.ErrInvalidToken},
		{name: "store failure", getErr: assert.AnError, internal: true},
		{name: "no active session", account: model.Account{ID: accountID, Email: "a@b.c"}, wantErr: model.ErrInvalidToken},
		{
			name: "rotated away",
			account: model.Account{
				ID: accountID, Email: "a@b.c",
				RefreshTokenHash: hashRefresh("refresh-new"), RefreshTokenExpiresAt: &future,
			},
			wantErr: model.ErrInvalidToken,
		},
		{
			name: "stored session expired",
			account: model.Account{
				ID: accountID, Email: "a@b.c",
				RefreshTokenHash: hashRefresh(presented), RefreshTokenExpiresAt: &past,
			},
			wantErr: model.ErrInvalidToken,
		},
		{
			name: "email reassigned to another account",
			account: model.Account{
				ID: uuid.New(), Email: "a@b.c",
				RefreshTokenHash: hashRefresh(presented), RefreshTokenExpiresAt: &future,
			},
			wantErr: model.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, manager, accounts := newMockTokenService(t, now)
			manager.On("ParseRefreshToken", presented).
				Return(model.Claims{AccountID: accountID, Email: "a@b.c"}, tt.parseErr).Once()
			if tt.parseErr == nil {
				accounts.On("GetByEmail", mock.Anything, "a@b.c").Return(tt.account, tt.getErr).Once()
			}

			claims, err := svc.VerifyRefreshToken(context.Background(), presented)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.internal:
				require.Error(t, err)
				assert.NotErrorIs(t, err, model.ErrInvalidToken)
			default:
				require.NoError(t, err)
				assert.Equal(t, model.Claims{AccountID: accountID, Email: "a@b.c"}, claims)
			}
		})
	}
}

func TestTokenService_InvalidateRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc, _, accounts := newMockTokenService(t, time.Now())
	accounts.On("ClearRefreshToken", ctx, hashRefresh("garbage")).Return(nil).Once()

	require.NoError(t, svc.InvalidateRefreshToken(ctx, "garbage"))
}

func TestTokenService_InvalidateRefreshToken_Error(t *testing.T) {
	ctx := context.Background()
	svc, _, accounts := newMockTokenService(t, time.Now())
	accounts.On("ClearRefreshToken", ctx, mock.Anything).Return(assert.AnError).Once()

	require.ErrorIs(t, svc.InvalidateRefreshToken(ctx, "token"), assert.AnError)
}

func TestTokenService_GetAccountID(t *testing.T) {
	svc, manager, _ := newMockTokenService(t, time.Now())
	id := uuid.New()
	manager.On("ParseAccessToken", "access").Return(model.Claims{AccountID: id}, nil).Once()
	manager.On("ParseAccessToken", "bad").Return(model.Claims{}, errors.New("expired")).Once()

	got, err := svc.GetAccountID(context.Background(), "access")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = svc.GetAccountID(context.Background(), "bad")
	require.ErrorIs(t, err, model.ErrInvalidToken)
}
