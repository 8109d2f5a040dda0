package middleware

import (
	"context"
	"crypto/subtle"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/auth-service/internal/logger"
)

// InternalSecretHeader carries the shared secret of trusted callers such as an API gateway.
const InternalSecretHeader = "x-internal-api-secret"

// InternalSecret rejects calls that do not present the shared internal API secret.
// An empty secret disables the check.
type InternalSecret struct {
	secret []byte
	logger *logger.Logger
}

func NewInternalSecret(secret string, logger *logger.Logger) *InternalSecret {
	return &InternalSecret{secret: []byte(secret), logger: logger}
}

// Enabled reports whether a secret is configured.
func (m *InternalSecret) Enabled() bool {
	return len(m.secret) > 0
}

// AuthFunc is an auth.AuthFunc for go-grpc-middleware.
func (m *InternalSecret) AuthFunc(ctx context.Context) (context.Context, error) {
	if !m.Enabled() {
		return ctx, nil
	}

	var presented string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(InternalSecretHeader); len(values) > 0 {
			presented = values[0]
		}
	}

	if subtle.ConstantTimeCompare([]byte(presented), m.secret) != 1 {
		m.logger.Warn("Internal secret middleware: invalid or missing internal API secret")
		return nil, status.Error(codes.PermissionDenied, "invalid or missing internal API secret")
	}

	return ctx, nil
}
