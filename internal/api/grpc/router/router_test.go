package router

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/auth-service/api/proto"

	grpcctx "github.com/dtroode/auth-service/internal/api/grpc/context"
	"github.com/dtroode/auth-service/internal/metrics"
	"github.com/dtroode/auth-service/internal/mocks"
	"github.com/dtroode/auth-service/internal/password"
	"github.com/dtroode/auth-service/internal/repository/memory"
	"github.com/dtroode/auth-service/internal/service"
	"github.com/dtroode/auth-service/internal/testutil"
	"github.com/dtroode/auth-service/internal/token"
)

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := New(mocks.NewAuthService(t), mocks.NewPasswordService(t), mocks.NewTokenService(t),
		mocks.NewContextManager(t), "", testutil.MakeNoopLogger())
	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, "auth.Auth")
	assert.Contains(t, info, "auth.Password")
	assert.Contains(t, info, "auth.Account")
}

type clients struct {
	auth     proto.AuthClient
	password proto.PasswordClient
	account  proto.AccountClient
}

// startServer serves the full stack over an in-memory listener.
func startServer(t *testing.T, internalSecret string) clients {
	t.Helper()

	log := testutil.MakeNoopLogger()
	jwt, err := token.NewJWT(token.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
		Issuer:        "auth-service-test",
	})
	require.NoError(t, err)
	hasher, err := password.NewArgon2(password.Config{MemoryKiB: 8 * 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	require.NoError(t, err)
	m, err := metrics.New(nil)
	require.NoError(t, err)

	accounts := memory.NewAccountRepository()
	resets := memory.NewResetTokenRepository()
	tokens := service.NewTokenService(jwt, accounts, jwt.RefreshTTL(), log)
	authSvc := service.NewAuth(accounts, hasher, tokens, nil, m, log)
	resetSvc := service.NewPasswordReset(accounts, resets, memory.NewResetCache(), hasher,
		memory.NewTransactor(accounts, resets), service.DefaultResetConfig(), m, log)

	s := New(authSvc, resetSvc, tokens, grpcctx.NewManager(), internalSecret, log).Register()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return clients{
		auth:     proto.NewAuthClient(conn),
		password: proto.NewPasswordClient(conn),
		account:  proto.NewAccountClient(conn),
	}
}

func withBearer(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func TestRouter_EndToEnd(t *testing.T) {
	c := startServer(t, "")
	ctx := context.Background()

	signed, err := c.auth.SignUp(ctx, &proto.SignUpRequest{Email: "a@b.c", Password: "secret123", Username: "alice"})
	require.NoError(t, err)
	require.NotNil(t, signed.GetAccount())
	assert.Equal(t, "alice", signed.GetAccount().GetUsername())

	_, err = c.auth.SignUp(ctx, &proto.SignUpRequest{Email: "a@b.c", Password: "secret123"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = c.account.WhoAmI(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	me, err := c.account.WhoAmI(withBearer(ctx, signed.AccessToken), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, signed.GetAccount().GetId(), me.GetId())

	_, err = c.account.WhoAmI(withBearer(ctx, signed.RefreshToken), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err), "refresh token is not an access token")

	pair, err := c.auth.Refresh(ctx, &proto.RefreshRequest{RefreshToken: signed.RefreshToken})
	require.NoError(t, err)

	_, err = c.auth.Refresh(ctx, &proto.RefreshRequest{RefreshToken: signed.RefreshToken})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = c.auth.LogOut(ctx, &proto.LogOutRequest{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	_, err = c.auth.LogOut(ctx, &proto.LogOutRequest{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)

	reset, err := c.password.RequestReset(ctx, &proto.RequestResetRequest{Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), reset.AttemptsRemaining)

	_, err = c.password.RequestReset(ctx, &proto.RequestResetRequest{Email: "a@b.c"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	done, err := c.password.ResetPassword(ctx, &proto.ResetPasswordRequest{Email: "a@b.c", Token: reset.ResetToken, NewPassword: "newsecret456"})
	require.NoError(t, err)
	assert.Equal(t, service.MessageResetRedeemed, done.Message)

	_, err = c.auth.LogIn(ctx, &proto.LogInRequest{Email: "a@b.c", Password: "secret123"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	logged, err := c.auth.LogIn(ctx, &proto.LogInRequest{Email: "a@b.c", Password: "newsecret456"})
	require.NoError(t, err)
	assert.NotEmpty(t, logged.AccessToken)

	_, err = c.auth.ExternalLogin(ctx, &proto.ExternalLoginRequest{Code: "code"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err), "no provider configured")

	_, err = c.auth.ExternalLoginURL(ctx, &proto.ExternalLoginURLRequest{State: "st"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err), "no provider configured")
}

func TestRouter_InternalSecret(t *testing.T) {
	c := startServer(t, "gateway-secret")
	ctx := context.Background()

	_, err := c.password.RequestReset(ctx, &proto.RequestResetRequest{Email: "a@b.c"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	ctx = metadata.AppendToOutgoingContext(ctx, "x-internal-api-secret", "gateway-secret")
	_, err = c.password.RequestReset(ctx, &proto.RequestResetRequest{Email: "a@b.c"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
