package context

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/auth-service/internal/model"
)

var _ model.ContextManager = (*Manager)(nil)

// accountIDKey is the incoming metadata key holding the authenticated account ID.
const accountIDKey = "x-account-id"

// Manager stores the authenticated account ID in incoming gRPC metadata.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetAccountIDToContext returns a context whose incoming metadata carries accountID.
// Existing metadata is copied, so the caller's metadata is never mutated.
func (m *Manager) SetAccountIDToContext(ctx context.Context, accountID uuid.UUID) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		md = md.Copy()
	} else {
		md = metadata.MD{}
	}
	md.Set(accountIDKey, accountID.String())

	return metadata.NewIncomingContext(ctx, md)
}

func (m *Manager) GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return uuid.Nil, false
	}

	ids := md.Get(accountIDKey)
	if len(ids) == 0 {
		return uuid.Nil, false
	}

	accountID, err := uuid.Parse(ids[0])
	if err != nil || accountID == uuid.Nil {
		return uuid.Nil, false
	}

	return accountID, true
}
