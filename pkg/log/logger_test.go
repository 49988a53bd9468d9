package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/hwstore-client/pkg/log"
)

func TestLogger_WritesFieldsAndContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithWriter(&buf, log.LevelDebug)

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "r-1"})
	logger.
		WithField("state", "anonymous").
		WithError(errors.New("boom")).
		Warn(ctx, "session dropped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "session dropped", entry["msg"])
	assert.Equal(t, "anonymous", entry["state"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "r-1", entry["requestID"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithWriter(&buf, log.LevelWarn)

	logger.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	logger.Error(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_DisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithWriter(&buf, log.LevelDisabled)
	logger.Error(context.Background(), "nothing")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	level, ok := log.ParseLevel(" Debug ")
	assert.True(t, ok)
	assert.Equal(t, log.LevelDebug, level)

	_, ok = log.ParseLevel("verbose")
	assert.False(t, ok)
}
