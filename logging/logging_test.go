package logging

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		name  string
		debug bool
		want  zapcore.Level
	}{
		{"release", false, zap.InfoLevel},
		{"debug", true, zap.DebugLevel},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			logger, err := New(c.debug)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(c.want))
			assert.False(t, logger.Core().Enabled(c.want-1))
		})
	}
}

func TestWithRunAddsRunID(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger, id := WithRun(zap.New(core), "level")

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	logger.Info("started")
	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, id, fields["run"])
	assert.Equal(t, "level", fields["run_kind"])

	_, other := WithRun(nil, "level")
	assert.NotEqual(t, id, other)
}
