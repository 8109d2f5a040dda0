package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/auth-service/api/proto"
	"github.com/dtroode/auth-service/internal/logger"
	"github.com/dtroode/auth-service/internal/model"
)

var _ proto.AccountServer = (*Account)(nil)

type AccountService interface {
	WhoAmI(ctx context.Context, accountID uuid.UUID) (model.AccountView, error)
}

// Account handles the auth.Account gRPC service. Every method requires a bearer token.
type Account struct {
	proto.UnimplementedAccountServer
	accountService AccountService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAccount(accountService AccountService, contextManager model.ContextManager, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Account) WhoAmI(ctx context.Context, _ *emptypb.Empty) (*proto.Account, error) {
	accountID, ok := h.contextManager.GetAccountIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "account id not found in context")
	}

	view, err := h.accountService.WhoAmI(ctx, accountID)
	if err != nil {
		h.logger.Error("Account handler: who am i failed",
			"account_id", accountID.String(),
			"error", err.Error())
		return nil, handleError(err)
	}

	return accountMessage(view), nil
}
