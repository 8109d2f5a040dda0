package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/auth-service/internal/metrics"
	"github.com/dtroode/auth-service/internal/mocks"
	"github.com/dtroode/auth-service/internal/model"
	"github.com/dtroode/auth-service/internal/testutil"
)

func signUp(t *testing.T, env *testEnv, email, pass string) model.AuthResult {
	t.Helper()
	res, err := env.auth.SignUp(context.Background(), model.SignUpParams{Email: email, Password: pass, Username: "user1"})
	require.NoError(t, err)
	return res
}

func TestAuth_SignUp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.auth.SignUp(ctx, model.SignUpParams{Email: " New@Example.com ", Password: "secret123", Username: "newbie"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Equal(t, "new@example.com", res.Account.Email)
	assert.Equal(t, "newbie", res.Account.Username)

	stored, err := env.accounts.GetByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RegistrationMethodPassword, stored.RegistrationMethod)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, env.hasher.Verify("secret123", stored.PasswordHash))
	assert.Equal(t, hashRefresh(res.RefreshToken), stored.RefreshTokenHash)

	accountID, err := env.tokens.GetAccountID(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, accountID)
}

func TestAuth_SignUp_DefaultUsername(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.auth.SignUp(context.Background(), model.SignUpParams{Email: "jane.doe@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", res.Account.Username)
}

func TestAuth_SignUp_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	signUp(t, env, "a@b.c", "secret123")

	_, err := env.auth.SignUp(context.Background(), model.SignUpParams{Email: "A@B.C", Password: "other123"})
	require.ErrorIs(t, err, model.ErrAccountAlreadyExists)
}

func TestAuth_LogIn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	first := signUp(t, env, "a@b.c", "secret123")

	_, err := env.auth.LogIn(ctx, "missing@b.c", "secret123")
	require.ErrorIs(t, err, model.ErrAccountNotFound)

	_, err = env.auth.LogIn(ctx, "a@b.c", "wrong-password")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	res, err := env.auth.LogIn(ctx, "A@b.c", "secret123")
	require.NoError(t, err)
	assert.Equal(t, first.Account, res.Account)

	_, err = env.auth.Refresh(ctx, first.RefreshToken)
	require.ErrorIs(t, err, model.ErrInvalidToken, "login supersedes the previous session")

	_, err = env.auth.Refresh(ctx, res.RefreshToken)
	require.NoError(t, err)
}

func TestAuth_Refresh_RotationInvalidatesPrior(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	r1 := signUp(t, env, "a@b.c", "secret123").RefreshToken

	pair, err := env.auth.Refresh(ctx, r1)
	require.NoError(t, err)
	assert.NotEqual(t, r1, pair.RefreshToken)
	assert.NotEmpty(t, pair.AccessToken)

	_, err = env.auth.Refresh(ctx, r1)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = env.auth.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
}

func TestAuth_Refresh_RejectsAccessTokenAndGarbage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	res := signUp(t, env, "a@b.c", "secret123")

	_, err := env.auth.Refresh(ctx, res.AccessToken)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = env.auth.Refresh(ctx, "garbage")
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestAuth_LogOut_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	res := signUp(t, env, "a@b.c", "secret123")

	require.NoError(t, env.auth.LogOut(ctx, res.RefreshToken))
	require.NoError(t, env.auth.LogOut(ctx, res.RefreshToken))
	require.NoError(t, env.auth.LogOut(ctx, "not-a-token"))

	_, err := env.auth.Refresh(ctx, res.RefreshToken)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	stored, err := env.accounts.GetByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Nil(t, stored.RefreshTokenHash)
}

func TestAuth_LoginWithExternalIdentity_CreatesAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.auth.LoginWithExternalIdentity(ctx, model.ExternalIdentity{Email: "G@Example.com", Subject: "sub-1", DisplayName: "Gee"})
	require.NoError(t, err)
	assert.Equal(t, MessageExternalLogin, res.Message)
	assert.Equal(t, "g@example.com", res.Account.Email)
	assert.Equal(t, "Gee", res.Account.Username)

	stored, err := env.accounts.GetByEmail(ctx, "g@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RegistrationMethodExternal, stored.RegistrationMethod)
	require.NotNil(t, stored.ExternalSubject)
	assert.Equal(t, "sub-1", *stored.ExternalSubject)

	_, err = env.auth.LogIn(ctx, "g@example.com", "external:sub-1")
	require.ErrorIs(t, err, model.ErrInvalidCredentials, "placeholder hash never verifies")

	again, err := env.auth.LoginWithExternalIdentity(ctx, model.ExternalIdentity{Email: "g@example.com", Subject: "sub-1"})
	require.NoError(t, err)
	assert.Equal(t, res.Account.ID, again.Account.ID)

	_, err = env.auth.Refresh(ctx, res.RefreshToken)
	require.ErrorIs(t, err, model.ErrInvalidToken)
	_, err = env.auth.Refresh(ctx, again.RefreshToken)
	require.NoError(t, err)
}

func TestAuth_LoginWithExternalIdentity_LinksExistingAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := signUp(t, env, "a@b.c", "secret123")

	res, err := env.auth.LoginWithExternalIdentity(ctx, model.ExternalIdentity{Email: "a@b.c", Subject: "sub-9"})
	require.NoError(t, err)
	assert.Equal(t, created.Account.ID, res.Account.ID)

	stored, err := env.accounts.GetByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, model.RegistrationMethodExternal, stored.RegistrationMethod)
	require.NotNil(t, stored.ExternalSubject)
	assert.Equal(t, "sub-9", *stored.ExternalSubject)

	_, err = env.auth.LogIn(ctx, "a@b.c", "secret123")
	require.NoError(t, err, "password still works after linking")
}

func TestAuth_LoginWithExternalIdentity_RejectsIncompleteIdentity(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.LoginWithExternalIdentity(context.Background(), model.ExternalIdentity{Email: "a@b.c"})
	require.ErrorIs(t, err, model.ErrExternalIdentity)

	_, err = env.auth.LoginWithExternalIdentity(context.Background(), model.ExternalIdentity{Subject: "s"})
	require.ErrorIs(t, err, model.ErrExternalIdentity)
}

func TestAuth_LoginWithExternalCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.LoginWithExternalCode(ctx, "code")
	require.ErrorIs(t, err, model.ErrExternalIdentity, "no provider configured")

	provider := mocks.NewIdentityProvider(t)
	provider.On("Exchange", mock.Anything, "good").Return(model.ExternalIdentity{Email: "x@y.z", Subject: "s"}, nil).Once()
	provider.On("Exchange", mock.Anything, "bad").Return(model.ExternalIdentity{}, assert.AnError).Once()
	env.auth.provider = provider

	res, err := env.auth.LoginWithExternalCode(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "x@y.z", res.Account.Email)

	_, err = env.auth.LoginWithExternalCode(ctx, "bad")
	require.ErrorIs(t, err, model.ErrExternalIdentity)
}

func TestAuth_ExternalLoginURL(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.auth.ExternalLoginURL(ctx, "state-1")
	require.ErrorIs(t, err, model.ErrExternalIdentity, "no provider configured")

	provider := mocks.NewIdentityProvider(t)
	provider.On("AuthCodeURL", "state-1").Return("https://idp.example/auth?state=state-1").Once()
	env.auth.provider = provider

	url, err := env.auth.ExternalLoginURL(ctx, "state-1")
	require.NoError(t, err)
	assert.Equal(t, "https://idp.example/auth?state=state-1", url)
}

func TestAuth_WhoAmI(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	res := signUp(t, env, "a@b.c", "secret123")

	view, err := env.auth.WhoAmI(ctx, res.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Account, view)

	_, err = env.auth.WhoAmI(ctx, uuid.New())
	require.ErrorIs(t, err, model.ErrAccountNotFound)
}

func newMockAuth(t *testing.T) (*Auth, *mocks.AccountStore, *mocks.PasswordHasher, *mocks.TokenManager) {
	t.Helper()
	accounts := mocks.NewAccountStore(t)
	hasher := mocks.NewPasswordHasher(t)
	manager := mocks.NewTokenManager(t)
	log := testutil.MakeNoopLogger()
	m, err := metrics.New(nil)
	require.NoError(t, err)

	tokens := NewTokenService(manager, accounts, 0, log)
	return NewAuth(accounts, hasher, tokens, nil, m, log), accounts, hasher, manager
}

func TestAuth_SignUp_StoreFailureIsInternal(t *testing.T) {
	a, accounts, _, _ := newMockAuth(t)
	accounts.On("GetByEmail", mock.Anything, "a@b.c").Return(model.Account{}, assert.AnError).Once()

	_, err := a.SignUp(context.Background(), model.SignUpParams{Email: "a@b.c", Password: "secret123"})
	require.ErrorIs(t, err, model.ErrInternal)
	assert.NotErrorIs(t, err, assert.AnError)
}

func TestAuth_SignUp_CreateRaceIsAlreadyExists(t *testing.T) {
	a, accounts, hasher, _ := newMockAuth(t)
	accounts.On("GetByEmail", mock.Anything, "a@b.c").Return(model.Account{}, model.ErrNotFound).Once()
	hasher.On("Hash", "secret123").Return("hash", nil).Once()
	accounts.On("Create", mock.Anything, mock.MatchedBy(func(acc model.Account) bool {
		return acc.Email == "a@b.c" && acc.PasswordHash == "hash" && acc.RegistrationMethod == model.RegistrationMethodPassword
	})).Return(model.Account{}, model.ErrAlreadyExists).Once()

	_, err := a.SignUp(context.Background(), model.SignUpParams{Email: "a@b.c", Password: "secret123"})
	require.ErrorIs(t, err, model.ErrAccountAlreadyExists)
}

func TestAuth_LogIn_TokenFailureIsInternal(t *testing.T) {
	a, accounts, hasher, manager := newMockAuth(t)
	account := model.Account{ID: uuid.New(), Email: "a@b.c", PasswordHash: "hash"}
	accounts.On("GetByEmail", mock.Anything, "a@b.c").Return(account, nil).Once()
	hasher.On("Verify", "secret123", "hash").Return(true).Once()
	manager.On("GenerateAccessToken", model.Claims{AccountID: account.ID, Email: "a@b.c"}).Return("", assert.AnError).Once()

	_, err := a.LogIn(context.Background(), "a@b.c", "secret123")
	require.ErrorIs(t, err, model.ErrInternal)
}

func TestAuth_LogOut_StoreFailureIsInternal(t *testing.T) {
	a, accounts, _, _ := newMockAuth(t)
	accounts.On("ClearRefreshToken", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	err := a.LogOut(context.Background(), "token")
	require.ErrorIs(t, err, model.ErrInternal)
	assert.NotErrorIs(t, err, model.ErrInvalidToken)
}
