package handler

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/auth-service/api/proto"
	"github.com/dtroode/auth-service/internal/logger"
	"github.com/dtroode/auth-service/internal/model"
)

var _ proto.AuthServer = (*Auth)(nil)

// AuthService defines sign up, login and session operations.
type AuthService interface {
	SignUp(ctx context.Context, params model.SignUpParams) (model.AuthResult, error)
	LogIn(ctx context.Context, email, password string) (model.AuthResult, error)
	Refresh(ctx context.Context, presented string) (model.TokenPair, error)
	LogOut(ctx context.Context, presented string) error
	LoginWithExternalCode(ctx context.Context, code string) (model.AuthResult, error)
	ExternalLoginURL(ctx context.Context, state string) (string, error)
}

// Auth handles the auth.Auth gRPC service.
type Auth struct {
	proto.UnimplementedAuthServer
	authService AuthService
	logger      *logger.Logger
}

func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

func (h *Auth) SignUp(ctx context.Context, req *proto.SignUpRequest) (*proto.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	h.logger.Debug("Auth handler: processing sign up request", "email", email)

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword("password", req.Password); err != nil {
		return nil, err
	}
	if err := validateUsername(req.Username); err != nil {
		return nil, err
	}

	result, err := h.authService.SignUp(ctx, model.SignUpParams{
		Email:    email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		h.logger.Error("Auth handler: sign up failed",
			"email", email,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: sign up completed", "account_id", result.Account.ID.String())
	return authResponse(result), nil
}

func (h *Auth) LogIn(ctx context.Context, req *proto.LogInRequest) (*proto.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	h.logger.Debug("Auth handler: processing log in request", "email", email)

	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := requireField("password", req.Password); err != nil {
		return nil, err
	}

	result, err := h.authService.LogIn(ctx, email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: log in failed",
			"email", email,
			"error", err.Error())
		if errors.Is(err, model.ErrAccountNotFound) {
			err = model.ErrInvalidCredentials
		}
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: log in completed", "account_id", result.Account.ID.String())
	return authResponse(result), nil
}

func (h *Auth) Refresh(ctx context.Context, req *proto.RefreshRequest) (*proto.TokenPair, error) {
	h.logger.Debug("Auth handler: processing token refresh request")

	if err := requireField("refresh token", req.RefreshToken); err != nil {
		return nil, err
	}

	pair, err := h.authService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed", "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: token refresh successful")
	return &proto.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func (h *Auth) LogOut(ctx context.Context, req *proto.LogOutRequest) (*emptypb.Empty, error) {
	h.logger.Debug("Auth handler: processing log out request")

	if err := requireField("refresh token", req.RefreshToken); err != nil {
		return nil, err
	}

	if err := h.authService.LogOut(ctx, req.RefreshToken); err != nil {
		h.logger.Error("Auth handler: log out failed", "error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

func (h *Auth) ExternalLogin(ctx context.Context, req *proto.ExternalLoginRequest) (*proto.AuthResponse, error) {
	h.logger.Debug("Auth handler: processing external login request")

	if err := requireField("code", req.Code); err != nil {
		return nil, err
	}

	result, err := h.authService.LoginWithExternalCode(ctx, req.Code)
	if err != nil {
		h.logger.Error("Auth handler: external login failed", "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: external login completed", "account_id", result.Account.ID.String())
	return authResponse(result), nil
}

// ExternalLoginURL returns the provider URL a client opens to start an
// external login. state is echoed back by the provider on redirect.
func (h *Auth) ExternalLoginURL(ctx context.Context, req *proto.ExternalLoginURLRequest) (*proto.ExternalLoginURLResponse, error) {
	if err := requireField("state", req.State); err != nil {
		return nil, err
	}

	url, err := h.authService.ExternalLoginURL(ctx, req.State)
	if err != nil {
		h.logger.Error("Auth handler: external login url failed", "error", err.Error())
		return nil, handleError(err)
	}

	return &proto.ExternalLoginURLResponse{Url: url}, nil
}

func authResponse(result model.AuthResult) *proto.AuthResponse {
	return &proto.AuthResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		Account:      accountMessage(result.Account),
		Message:      result.Message,
	}
}

func accountMessage(view model.AccountView) *proto.Account {
	return &proto.Account{
		Id:       view.ID.String(),
		Email:    view.Email,
		Username: view.Username,
	}
}
