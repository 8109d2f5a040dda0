package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email   string
		wantErr bool
	}{
		{email: "a@b.c"},
		{email: "first.last+tag@example.co.uk"},
		{email: "", wantErr: true},
		{email: "plainaddress", wantErr: true},
		{email: "Name <a@b.c>", wantErr: true},
		{email: "a@", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()
			err := validateEmail(tt.email)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validatePassword("password", "secret"))
	assert.NoError(t, validatePassword("password", strings.Repeat("x", 128)))

	for _, p := range []string{"", "short", strings.Repeat("x", 129)} {
		err := validatePassword("password", p)
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "password %q", p)
	}
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateUsername(""))
	assert.NoError(t, validateUsername("abc123"))

	for _, u := range []string{"ab", "has space", "dash-name", strings.Repeat("a", 31)} {
		err := validateUsername(u)
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "username %q", u)
	}
}
