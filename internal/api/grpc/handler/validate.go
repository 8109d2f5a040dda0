package handler

import (
	"net/mail"
	"unicode"
	"unicode/utf8"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 128
	minUsernameLength = 3
	maxUsernameLength = 30
)

func validateEmail(email string) error {
	if email == "" {
		return status.Error(codes.InvalidArgument, "email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return status.Error(codes.InvalidArgument, "email is invalid")
	}
	return nil
}

func validatePassword(field, password string) error {
	if password == "" {
		return status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	n := utf8.RuneCountInString(password)
	if n < minPasswordLength || n > maxPasswordLength {
		return status.Errorf(codes.InvalidArgument, "%s must be between %d and %d characters",
			field, minPasswordLength, maxPasswordLength)
	}
	return nil
}

// validateUsername accepts an empty username; the flow derives one from the email.
func validateUsername(username string) error {
	if username == "" {
		return nil
	}
	n := utf8.RuneCountInString(username)
	if n < minUsernameLength || n > maxUsernameLength {
		return status.Errorf(codes.InvalidArgument, "username must be between %d and %d characters",
			minUsernameLength, maxUsernameLength)
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return status.Error(codes.InvalidArgument, "username must be alphanumeric")
		}
	}
	return nil
}

func requireField(name, value string) error {
	if value == "" {
		return status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	return nil
}
