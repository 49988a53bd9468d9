package token_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hwstore-client/internal/session/app/session"
	"github.com/klwxsrx/hwstore-client/internal/session/infra/token"
)

func TestDecoder_Decode(t *testing.T) {
	issuedAt := time.Unix(1714564800, 0)
	expiresAt := issuedAt.Add(time.Hour)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	unsignedClaims := base64.RawURLEncoding.EncodeToString([]byte(`{"exp":1714568400}`))

	tests := []struct {
		name   string
		token  session.Token
		expect func(t *testing.T, claims session.Claims, err error)
	}{
		{
			name:  "signed_token",
			token: session.Token(signed),
			expect: func(t *testing.T, claims session.Claims, err error) {
				require.NoError(t, err)
				assert.True(t, claims.IssuedAt.Equal(issuedAt))
				assert.True(t, claims.ExpiresAt.Equal(expiresAt))
			},
		},
		{
			name:  "signature_is_not_verified",
			token: session.Token("eyJhbGciOiJIUzI1NiJ9." + unsignedClaims + ".bm90LWEtc2lnbmF0dXJl"),
			expect: func(t *testing.T, claims session.Claims, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(1714568400), claims.ExpiresAt.Unix())
				assert.True(t, claims.IssuedAt.IsZero())
			},
		},
		{
			name:  "error_when_exp_is_missing",
			token: session.Token("eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"u1"}`)) + ".c2ln"),
			expect: func(t *testing.T, _ session.Claims, err error) {
				assert.ErrorIs(t, err, session.ErrTokenDecode)
			},
		},
		{
			name:  "error_when_segments_are_missing",
			token: session.Token("not-a-token"),
			expect: func(t *testing.T, _ session.Claims, err error) {
				assert.ErrorIs(t, err, session.ErrTokenDecode)
			},
		},
		{
			name:  "error_when_payload_is_not_json",
			token: session.Token("eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte("garbage")) + ".c2ln"),
			expect: func(t *testing.T, _ session.Claims, err error) {
				assert.ErrorIs(t, err, session.ErrTokenDecode)
			},
		},
	}

	decoder := token.NewDecoder()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := decoder.Decode(tc.token)
			tc.expect(t, claims, err)
		})
	}
}
