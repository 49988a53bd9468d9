package env_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hwstore-client/pkg/env"
)

func TestParse(t *testing.T) {
	t.Setenv("HWSTORE_TEST_TIMEOUT", "15s")
	t.Setenv("HWSTORE_TEST_BROKEN", "fifteen")

	timeout, err := env.Parse[time.Duration]("HWSTORE_TEST_TIMEOUT")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, timeout)

	_, err = env.Parse[time.Duration]("HWSTORE_TEST_BROKEN")
	assert.Error(t, err)

	_, err = env.Parse[string]("HWSTORE_TEST_MISSING")
	assert.Error(t, err)
}

func TestParseOptional(t *testing.T) {
	t.Setenv("HWSTORE_TEST_BLANK", "  ")

	value, err := env.ParseOptional[string]("HWSTORE_TEST_BLANK")
	require.NoError(t, err)
	assert.Nil(t, value)

	t.Setenv("HWSTORE_TEST_STORAGE", "sqlite")
	value, err = env.ParseOptional[string]("HWSTORE_TEST_STORAGE")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, "sqlite", *value)
}

func TestParseWithDefault(t *testing.T) {
	timeout, err := env.ParseWithDefault("HWSTORE_TEST_UNSET_TIMEOUT", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, timeout)
}

func TestMust_Panics(t *testing.T) {
	assert.Panics(t, func() {
		env.Must(env.Parse[int]("HWSTORE_TEST_MISSING_INT"))
	})
}
