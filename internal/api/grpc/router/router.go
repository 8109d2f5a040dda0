package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/dtroode/auth-service/api/proto"
	"github.com/dtroode/auth-service/internal/api/grpc/handler"
	"github.com/dtroode/auth-service/internal/api/grpc/middleware"
	"github.com/dtroode/auth-service/internal/logger"
	"github.com/dtroode/auth-service/internal/model"
)

// bearerServicePrefix selects the services whose methods need an access token.
const bearerServicePrefix = "/auth.Account/"

// AuthService is the auth flow controller as seen by the transport.
type AuthService interface {
	handler.AuthService
	handler.AccountService
}

// Router builds the gRPC server with its interceptors and services.
type Router struct {
	authService     AuthService
	passwordService handler.PasswordService
	tokenService    middleware.TokenService
	contextManager  model.ContextManager
	internalSecret  string
	logger          *logger.Logger
}

// New creates a Router. An empty internalSecret disables the internal secret check.
func New(
	authService AuthService,
	passwordService handler.PasswordService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	internalSecret string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:     authService,
		passwordService: passwordService,
		tokenService:    tokenService,
		contextManager:  contextManager,
		internalSecret:  internalSecret,
		logger:          logger,
	}
}

func requiresBearer(_ context.Context, c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), bearerServicePrefix)
}

// Register returns a gRPC server with all services registered. Extra server
// options are appended after the interceptor chain.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	secret := middleware.NewInternalSecret(r.internalSecret, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	serverOpts := append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(middleware.RecoveryHandler(r.logger))),
			logging.HandleGRPC,
			auth.UnaryServerInterceptor(secret.AuthFunc),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresBearer),
			),
		),
	}, opts...)

	s := grpc.NewServer(serverOpts...)

	proto.RegisterAuthServer(s, handler.NewAuth(r.authService, r.logger))
	proto.RegisterPasswordServer(s, handler.NewPassword(r.passwordService, r.logger))
	proto.RegisterAccountServer(s, handler.NewAccount(r.authService, r.contextManager, r.logger))

	return s
}
