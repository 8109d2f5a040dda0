package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dtroode/auth-service/internal/logger"
	"github.com/dtroode/auth-service/internal/model"
)

var domainErrors = []error{
	model.ErrAccountAlreadyExists,
	model.ErrAccountNotFound,
	model.ErrInvalidCredentials,
	model.ErrInvalidToken,
	model.ErrTooManyRequests,
	model.ErrResetTokenAlreadyIssued,
	model.ErrNoTokenProvided,
	model.ErrTokenExpired,
	model.ErrExternalIdentity,
	model.ErrInternal,
	context.Canceled,
	context.DeadlineExceeded,
}

// boundary passes domain errors through and collapses anything else into
// model.ErrInternal after logging the cause.
func boundary(l *logger.Logger, component, op string, err error) error {
	if err == nil {
		return nil
	}
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return err
		}
	}

	l.Error(component+": "+op+" failed", "error", err.Error())
	return model.ErrInternal
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func defaultUsername(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
