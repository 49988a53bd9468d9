package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hwstore-client/pkg/auth"
)

type principal struct {
	UserID string
}

func TestMustGetPrincipal(t *testing.T) {
	_, err := auth.MustGetPrincipal[principal](context.Background())
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	ctx := auth.WithAuthentication[principal](context.Background(), auth.Auth[principal]{})
	_, err = auth.MustGetPrincipal[principal](ctx)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	ctx = auth.WithAuthentication[principal](context.Background(), auth.Auth[principal]{AuthPrincipal: &principal{UserID: "u1"}})
	p, err := auth.MustGetPrincipal[principal](ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)

	_, err = auth.MustGetPrincipal[string](ctx)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}
