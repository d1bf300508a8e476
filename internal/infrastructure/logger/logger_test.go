package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).Named("project").WithFields(map[string]interface{}{"project_id": "p1"})

	log.WithError(errors.New("boom")).Warn("commit failed", map[string]interface{}{"op": "approve"})
	log.Debug("loaded", nil)

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "project", entries[0].LoggerName)
		ctx := entries[0].ContextMap()
		assert.Equal(t, "p1", ctx["project_id"])
		assert.Equal(t, "approve", ctx["op"])
		assert.Equal(t, "boom", ctx["error"])
		assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	}
}

func TestNew_Levels(t *testing.T) {
	assert.True(t, New("debug", "json").Core().Enabled(zapcore.DebugLevel))
	assert.False(t, New("warn", "console").Core().Enabled(zapcore.InfoLevel))
	assert.False(t, New("", "json").Core().Enabled(zapcore.DebugLevel))
}

func TestNoOpLogger(t *testing.T) {
	l := NewNoOpLogger()
	l.Info("ignored", map[string]interface{}{"k": 1})
	assert.NoError(t, l.Sync())
}
