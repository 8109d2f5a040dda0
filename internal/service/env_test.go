package service

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/auth-service/internal/metrics"
	"github.com/dtroode/auth-service/internal/model"
	"github.com/dtroode/auth-service/internal/password"
	"github.com/dtroode/auth-service/internal/repository/memory"
	redisrepo "github.com/dtroode/auth-service/internal/repository/redis"
	"github.com/dtroode/auth-service/internal/testutil"
	"github.com/dtroode/auth-service/internal/token"
)

// testEnv wires the flow controllers to real collaborators: JWT signing,
// Argon2 with cheap parameters, in-memory stores and an in-process Redis.
type testEnv struct {
	accounts *memory.AccountRepository
	resets   *memory.ResetTokenRepository
	cache    model.ResetCache
	redis    *miniredis.Miniredis
	jwt      *token.JWT
	hasher   *password.Argon2
	tokens   *TokenService
	auth     *Auth
	reset    *PasswordReset
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	jwt, err := token.NewJWT(token.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     20 * time.Minute,
		RefreshTTL:    24 * time.Hour,
		Issuer:        "auth-service-test",
	})
	require.NoError(t, err)

	hasher, err := password.NewArgon2(password.Config{MemoryKiB: 8 * 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	require.NoError(t, err)

	m, err := metrics.New(nil)
	require.NoError(t, err)

	mr, client := testutil.NewRedis(t)
	log := testutil.MakeNoopLogger()

	env := &testEnv{
		accounts: memory.NewAccountRepository(),
		resets:   memory.NewResetTokenRepository(),
		cache:    redisrepo.NewResetCache(client),
		redis:    mr,
		jwt:      jwt,
		hasher:   hasher,
	}
	env.tokens = NewTokenService(jwt, env.accounts, jwt.RefreshTTL(), log)
	env.auth = NewAuth(env.accounts, hasher, env.tokens, nil, m, log)
	env.reset = NewPasswordReset(env.accounts, env.resets, env.cache, hasher, memory.NewTransactor(env.accounts, env.resets), DefaultResetConfig(), m, log)

	return env
}
