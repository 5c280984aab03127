package zap

import (
	"testing"

	"github.com/stretchr/testify/require"
	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/theory-cloud/hourglass/pkg/observability"
)

func newObservedLogger(t *testing.T) (observability.StructuredLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	log, err := NewZapLogger(observability.LoggerConfig{}, WithZapLogger(ubzap.New(core)))
	require.NoError(t, err)
	return log, logs
}

func TestNewZapLogger_RejectsBadConfig(t *testing.T) {
	_, err := NewZapLogger(observability.LoggerConfig{Format: "xml"})
	require.Error(t, err)

	_, err = NewZapLogger(observability.LoggerConfig{Level: "loud"})
	require.Error(t, err)
}

func TestNewZapLogger_DefaultsAreUsable(t *testing.T) {
	log, err := NewZapLogger(observability.LoggerConfig{})
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestLogger_WritesLevelsAndFields(t *testing.T) {
	log, logs := newObservedLogger(t)

	log.Debug("d")
	log.Info("i", map[string]any{"k": "v"})
	log.Warn("w")
	log.Error("e")

	entries := logs.All()
	require.Len(t, entries, 4)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, "i", entries[1].Message)
	require.Equal(t, "v", entries[1].ContextMap()["k"])
	require.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestLogger_WithFieldsBindsContext(t *testing.T) {
	log, logs := newObservedLogger(t)

	derived := log.WithField("component", "config")
	derived.Warn("fallback")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "config", entries[0].ContextMap()["component"])

	// The parent logger is unchanged.
	log.Info("clean")
	require.NotContains(t, logs.All()[1].ContextMap(), "component")
}

func TestFactory_CreatesAllVariants(t *testing.T) {
	f := NewZapLoggerFactory()

	console, err := f.CreateConsoleLogger(observability.LoggerConfig{})
	require.NoError(t, err)
	require.NotNil(t, console)

	require.NotNil(t, f.CreateTestLogger())
	require.NotNil(t, f.CreateNoOpLogger())
}
