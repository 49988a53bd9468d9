package strings_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hwstore-client/pkg/strings"
)

func TestParseTypedValue_Time(t *testing.T) {
	parsed, err := strings.ParseTypedValue[time.Time]("2024-03-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), parsed)

	parsed, err = strings.ParseTypedValue[time.Time]("1700000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), parsed.Unix())

	_, err = strings.ParseTypedValue[time.Time]("yesterday")
	assert.Error(t, err)
}

func TestParseTypedValue_Scalars(t *testing.T) {
	d, err := strings.ParseTypedValue[time.Duration]("90s")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	u, err := strings.ParseTypedValue[uint]("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), u)

	id := uuid.New()
	parsedID, err := strings.ParseTypedValue[uuid.UUID](id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsedID)

	_, err = strings.ParseTypedValue[bool]("maybe")
	assert.Error(t, err)
}

func TestToScreamingSnakeCase(t *testing.T) {
	assert.Equal(t, "STOREFRONT_SERVICE", strings.ToScreamingSnakeCase("storefront-service"))
}
