package model

import "errors"

// Storage errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// Flow errors surfaced to callers.
var (
	ErrAccountAlreadyExists    = errors.New("account already exists")
	ErrAccountNotFound         = errors.New("account not found")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidToken            = errors.New("invalid token")
	ErrTooManyRequests         = errors.New("too many requests")
	ErrResetTokenAlreadyIssued = errors.New("reset token already issued")
	ErrNoTokenProvided         = errors.New("no token provided")
	ErrTokenExpired            = errors.New("token expired")
	ErrExternalIdentity        = errors.New("external identity rejected")
	ErrInternal                = errors.New("internal error")
)
