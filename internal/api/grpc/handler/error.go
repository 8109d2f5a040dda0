package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/auth-service/internal/model"
)

const msgInvalidLogin = "invalid email or password"

var errorStatuses = []struct {
	err  error
	code codes.Code
	msg  string
}{
	{model.ErrAccountAlreadyExists, codes.AlreadyExists, "account already exists"},
	{model.ErrAccountNotFound, codes.NotFound, "account not found"},
	{model.ErrInvalidCredentials, codes.Unauthenticated, msgInvalidLogin},
	{model.ErrInvalidToken, codes.Unauthenticated, "invalid or expired token"},
	{model.ErrTooManyRequests, codes.ResourceExhausted, "too many reset requests, try again later"},
	{model.ErrResetTokenAlreadyIssued, codes.AlreadyExists, "a reset token has already been issued"},
	{model.ErrNoTokenProvided, codes.InvalidArgument, "reset token is required"},
	{model.ErrTokenExpired, codes.FailedPrecondition, "reset token has expired"},
	{model.ErrExternalIdentity, codes.Unauthenticated, "external authentication failed"},
	{context.Canceled, codes.Canceled, "request canceled"},
	{context.DeadlineExceeded, codes.DeadlineExceeded, "deadline exceeded"},
}

// handleError maps flow errors to gRPC statuses. Status errors pass through.
func handleError(err error) error {
	if st, ok := status.FromError(err); ok {
		return st.Err()
	}

	for _, s := range errorStatuses {
		if errors.Is(err, s.err) {
			return status.Error(s.code, s.msg)
		}
	}

	return status.Error(codes.Internal, "internal server error")
}
