package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/hwstore-client/internal/devserver/infra/password"
)

func TestEncoder(t *testing.T) {
	encoder := password.NewEncoder(bcrypt.MinCost)

	hash, err := encoder.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, encoder.CompareHash(hash, "s3cret"))
	assert.False(t, encoder.CompareHash(hash, "wrong"))
	assert.False(t, encoder.CompareHash("not-a-hash", "s3cret"))
}
