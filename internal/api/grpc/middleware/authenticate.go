package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/auth-service/internal/logger"
	"github.com/dtroode/auth-service/internal/model"
)

var (
	errMissingToken = errors.New("missing authorization token")
	errInvalidToken = errors.New("invalid authorization token")
)

// TokenService resolves the account ID from a bearer access token.
type TokenService interface {
	GetAccountID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the account ID into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// AuthFunc is an auth.AuthFunc for go-grpc-middleware.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	accountID, err := m.authenticate(ctx, bearerToken(ctx))
	if err != nil {
		m.logger.Debug("Authenticate middleware: rejected request", "error", err.Error())
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return m.contextManager.SetAccountIDToContext(ctx, accountID), nil
}

func (m *Authenticate) authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, errMissingToken
	}

	accountID, err := m.tokenService.GetAccountID(ctx, token)
	if err != nil || accountID == uuid.Nil {
		return uuid.Nil, errInvalidToken
	}

	return accountID, nil
}

func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return ""
	}

	scheme, token, found := strings.Cut(strings.TrimSpace(values[0]), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
