//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/auth-service/internal/model"
	repo "github.com/dtroode/auth-service/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "auth_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/auth_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestAccountRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	accounts := repo.NewAccountRepository(conn.DB)
	now := time.Now()
	a := model.Account{
		ID:                 uuid.New(),
		Email:              "user@example.com",
		Username:           "user",
		PasswordHash:       "hash",
		RegistrationMethod: model.RegistrationMethodPassword,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	saved, err := accounts.Create(ctx, a)
	require.NoError(t, err)
	require.Equal(t, a.ID, saved.ID)

	_, err = accounts.Create(ctx, model.Account{ID: uuid.New(), Email: a.Email, Username: "dup", PasswordHash: "x", RegistrationMethod: model.RegistrationMethodPassword, CreatedAt: now, UpdatedAt: now})
	require.ErrorIs(t, err, model.ErrAlreadyExists)

	hash := []byte("digest-1")
	require.NoError(t, accounts.SetRefreshToken(ctx, a.ID, hash, now.Add(time.Hour)))

	byEmail, err := accounts.GetByEmail(ctx, a.Email)
	require.NoError(t, err)
	require.Equal(t, hash, byEmail.RefreshTokenHash)
	require.True(t, byEmail.HasActiveSession(time.Now()))

	require.NoError(t, accounts.ClearRefreshToken(ctx, hash))
	require.NoError(t, accounts.ClearRefreshToken(ctx, hash))

	byID, err := accounts.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.Nil(t, byID.RefreshTokenHash)

	require.NoError(t, accounts.LinkExternalIdentity(ctx, a.ID, "sub-1"))
	require.NoError(t, accounts.SetRefreshToken(ctx, a.ID, hash, now.Add(time.Hour)))
	require.NoError(t, accounts.UpdatePassword(ctx, a.Email, "new-hash"))

	updated, err := accounts.GetByEmail(ctx, a.Email)
	require.NoError(t, err)
	require.Equal(t, "new-hash", updated.PasswordHash)
	require.Equal(t, model.RegistrationMethodExternal, updated.RegistrationMethod)
	require.NotNil(t, updated.ExternalSubject)
	require.Nil(t, updated.RefreshTokenHash)

	_, err = accounts.GetByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestResetTokenRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	tokens := repo.NewResetTokenRepository(conn.DB)
	now := time.Now()

	require.NoError(t, tokens.Create(ctx, model.ResetToken{Email: "r@example.com", TokenHash: "h1", ExpiresAt: now.Add(-time.Minute), CreatedAt: now}))
	require.NoError(t, tokens.Create(ctx, model.ResetToken{Email: "r@example.com", TokenHash: "h2", ExpiresAt: now.Add(time.Minute), CreatedAt: now}))

	_, err = tokens.Get(ctx, "r@example.com", "h1")
	require.ErrorIs(t, err, model.ErrNotFound)

	got, err := tokens.Get(ctx, "r@example.com", "h2")
	require.NoError(t, err)
	require.False(t, got.Expired(time.Now()))

	require.NoError(t, tokens.Delete(ctx, "r@example.com", "h2"))
	_, err = tokens.Get(ctx, "r@example.com", "h2")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestTransactor_ConcurrentRedemption(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	accounts := repo.NewAccountRepository(conn.DB)
	tokens := repo.NewResetTokenRepository(conn.DB)
	tx := repo.NewTransactor(conn.DB)
	now := time.Now()

	_, err = accounts.Create(ctx, model.Account{
		ID:                 uuid.New(),
		Email:              "tx@example.com",
		Username:           "tx",
		PasswordHash:       "old",
		RegistrationMethod: model.RegistrationMethodPassword,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	require.NoError(t, err)
	require.NoError(t, tokens.Create(ctx, model.ResetToken{Email: "tx@example.com", TokenHash: "h", ExpiresAt: now.Add(time.Minute), CreatedAt: now}))

	const workers = 8
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- tx.WithinTx(ctx, func(ctx context.Context, stores model.TxStores) error {
				if err := stores.ResetTokens.Delete(ctx, "tx@example.com", "h"); err != nil {
					return err
				}
				return stores.Accounts.UpdatePassword(ctx, "tx@example.com", "new")
			})
		}()
	}
	wg.Wait()
	close(errs)

	var committed int
	for err := range errs {
		if err == nil {
			committed++
			continue
		}
		require.ErrorIs(t, err, model.ErrNotFound)
	}
	require.Equal(t, 1, committed)

	got, err := accounts.GetByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
	require.Equal(t, "new", got.PasswordHash)
}
