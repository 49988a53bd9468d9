package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hwstore-client/internal/devserver/app/session"
	"github.com/klwxsrx/hwstore-client/internal/devserver/infra/jwt"
	clientsession "github.com/klwxsrx/hwstore-client/internal/session/app/session"
	sessiontoken "github.com/klwxsrx/hwstore-client/internal/session/infra/token"
	"github.com/klwxsrx/hwstore-client/pkg/time/fake"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestIssuer_IssueVerify(t *testing.T) {
	clock := fake.NewClock(now)
	issuer := jwt.NewIssuer([]byte("key"), clock)

	token, err := issuer.Issue("u1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now, token.IssuedAt.UTC())
	assert.Equal(t, now.Add(time.Hour), token.ExpiresAt.UTC())
	assert.NotEmpty(t, token.ID)

	verified, err := issuer.Verify(token.EncodedToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", verified.UserID)
	assert.Equal(t, token.ID, verified.ID)

	claims, err := sessiontoken.NewDecoder().Decode(clientsession.Token(token.EncodedToken))
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), claims.ExpiresAt.UTC())
	assert.Equal(t, now, claims.IssuedAt.UTC())

	clock.Advance(time.Hour + time.Second)
	_, err = issuer.Verify(token.EncodedToken)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestIssuer_VerifyRejects(t *testing.T) {
	clock := fake.NewClock(now)
	issuer := jwt.NewIssuer([]byte("key"), clock)
	other := jwt.NewIssuer([]byte("other-key"), clock)

	token, err := other.Issue("u1", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token session.EncodedToken
	}{
		{name: "foreign_signature", token: token.EncodedToken},
		{name: "malformed", token: "abc"},
		{name: "alg_none", token: session.EncodedToken(strings.Join([]string{
			"eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0",
			"eyJzdWIiOiJ1MSIsImV4cCI6NDEwMjQ0NDgwMH0",
			"",
		}, "."))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := issuer.Verify(tc.token)
			assert.ErrorIs(t, err, session.ErrInvalidToken)
		})
	}
}
