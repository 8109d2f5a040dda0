package oauth

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/dtroode/auth-service/internal/model"
)

const (
	testIssuer   = "https://issuer.example.com"
	testClientID = "client-1"
)

type testIdP struct {
	key    *rsa.PrivateKey
	server *httptest.Server
	claims jwt.MapClaims
	noID   bool
}

func newTestIdP(t *testing.T) *testIdP {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	idp := &testIdP{key: key}
	idp.server = httptest.NewServer(http.HandlerFunc(idp.token))
	t.Cleanup(idp.server.Close)
	return idp
}

func (p *testIdP) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil || r.PostForm.Get("code") != "good-code" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
		return
	}

	resp := map[string]any{
		"access_token": "provider-access",
		"token_type":   "Bearer",
		"expires_in":   3600,
	}
	if !p.noID {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, p.claims).SignedString(p.key)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp["id_token"] = signed
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (p *testIdP) provider() *Provider {
	cfg := &oauth2.Config{
		ClientID:     testClientID,
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:   p.server.URL + "/authorize",
			TokenURL:  p.server.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: []string{oidc.ScopeOpenID, "email"},
	}
	keys := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&p.key.PublicKey}}
	return NewWithVerifier(cfg, oidc.NewVerifier(testIssuer, keys, &oidc.Config{ClientID: testClientID}))
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":            testIssuer,
		"aud":            testClientID,
		"sub":            "subject-1",
		"email":          "user@example.com",
		"email_verified": true,
		"name":           "Test User",
		"iat":            now.Unix(),
		"exp":            now.Add(time.Hour).Unix(),
	}
}

func TestProvider_Exchange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    string
		mutate  func(c jwt.MapClaims)
		noID    bool
		want    model.ExternalIdentity
		wantErr error
		anyErr  bool
	}{
		{
			name: "verified identity",
			code: "good-code",
			want: model.ExternalIdentity{Email: "user@example.com", Subject: "subject-1", DisplayName: "Test User"},
		},
		{
			name:   "rejected code",
			code:   "bad-code",
			anyErr: true,
		},
		{
			name:    "missing id token",
			code:    "good-code",
			noID:    true,
			wantErr: ErrNoIDToken,
		},
		{
			name:    "unverified email",
			code:    "good-code",
			mutate:  func(c jwt.MapClaims) { c["email_verified"] = false },
			wantErr: ErrEmailNotVerified,
		},
		{
			name:    "no email",
			code:    "good-code",
			mutate:  func(c jwt.MapClaims) { delete(c, "email") },
			wantErr: ErrIncompleteIdentity,
		},
		{
			name:   "wrong audience",
			code:   "good-code",
			mutate: func(c jwt.MapClaims) { c["aud"] = "someone-else" },
			anyErr: true,
		},
		{
			name:   "expired id token",
			code:   "good-code",
			mutate: func(c jwt.MapClaims) { c["exp"] = time.Now().Add(-time.Hour).Unix() },
			anyErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			idp := newTestIdP(t)
			idp.claims = validClaims()
			if tt.mutate != nil {
				tt.mutate(idp.claims)
			}
			idp.noID = tt.noID

			got, err := idp.provider().Exchange(context.Background(), tt.code)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestProvider_ForeignKeyRejected(t *testing.T) {
	idp := newTestIdP(t)
	idp.claims = validClaims()
	p := idp.provider()

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	idp.key = other

	_, err = p.Exchange(context.Background(), "good-code")
	require.Error(t, err)
}

func TestProvider_AuthCodeURL(t *testing.T) {
	idp := newTestIdP(t)

	u := idp.provider().AuthCodeURL("state-1")
	assert.Contains(t, u, idp.server.URL+"/authorize?")
	assert.Contains(t, u, "state=state-1")
	assert.Contains(t, u, "client_id="+testClientID)
}

func TestNew_RequiresIssuerAndClient(t *testing.T) {
	_, err := New(context.Background(), Config{ClientID: "c"})
	require.Error(t, err)

	_, err = New(context.Background(), Config{Issuer: "https://issuer.example.com"})
	require.Error(t, err)
}
