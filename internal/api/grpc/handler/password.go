package handler

import (
	"context"
	"strings"

	"github.com/dtroode/auth-service/api/proto"
	"github.com/dtroode/auth-service/internal/logger"
	"github.com/dtroode/auth-service/internal/model"
)

var _ proto.PasswordServer = (*Password)(nil)

// PasswordService defines the password reset operations.
type PasswordService interface {
	RequestReset(ctx context.Context, email string) (model.ResetRequestResult, error)
	RedeemReset(ctx context.Context, email, secret, newPassword string) (string, error)
}

// Password handles the auth.Password gRPC service.
type Password struct {
	proto.UnimplementedPasswordServer
	passwordService PasswordService
	logger          *logger.Logger
}

func NewPassword(passwordService PasswordService, logger *logger.Logger) *Password {
	return &Password{
		passwordService: passwordService,
		logger:          logger,
	}
}

func (h *Password) RequestReset(ctx context.Context, req *proto.RequestResetRequest) (*proto.RequestResetResponse, error) {
	email := strings.TrimSpace(req.Email)
	h.logger.Debug("Password handler: processing reset request", "email", email)

	if err := validateEmail(email); err != nil {
		return nil, err
	}

	result, err := h.passwordService.RequestReset(ctx, email)
	if err != nil {
		h.logger.Error("Password handler: reset request failed",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &proto.RequestResetResponse{
		Message:           result.Message,
		ResetToken:        result.ResetToken,
		AttemptsRemaining: result.AttemptsRemaining,
	}, nil
}

// ResetPassword redeems a reset token. An empty token reaches the flow,
// which reports it as missing.
func (h *Password) ResetPassword(ctx context.Context, req *proto.ResetPasswordRequest) (*proto.ResetPasswordResponse, error) {
	email := strings.TrimSpace(req.Email)
	h.logger.Debug("Password handler: processing reset redemption", "email", email)

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword("new password", req.NewPassword); err != nil {
		return nil, err
	}

	msg, err := h.passwordService.RedeemReset(ctx, email, req.Token, req.NewPassword)
	if err != nil {
		h.logger.Error("Password handler: reset redemption failed",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Password handler: password reset", "email", email)
	return &proto.ResetPasswordResponse{Message: msg}, nil
}
