package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hwstore-client/pkg/lazy"
)

func TestLoader_LoadsOnce(t *testing.T) {
	calls := 0
	loader := lazy.New(func() (string, error) {
		calls++
		return "value", nil
	})

	var seen []string
	loader.IfLoaded(func(v string) { seen = append(seen, v) })
	assert.Empty(t, seen)

	assert.Equal(t, "value", loader.MustLoad())
	v, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, calls)

	loader.IfLoaded(func(v string) { seen = append(seen, v) })
	assert.Equal(t, []string{"value"}, seen)
}

func TestLoader_KeepsError(t *testing.T) {
	providerErr := errors.New("no config")
	loader := lazy.New(func() (int, error) {
		return 0, providerErr
	})

	_, err := loader.Load()
	assert.ErrorIs(t, err, providerErr)
	assert.Panics(t, func() { loader.MustLoad() })

	called := false
	loader.IfLoaded(func(int) { called = true })
	assert.False(t, called)
}
